package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"kisansetu/internal/models"

	"github.com/google/uuid"
)

// MockListingRepository is an in-memory implementation of ListingRepository.
type MockListingRepository struct {
	listings map[string]models.Listing
	mu       sync.RWMutex
}

// NewMockListingRepository creates a new instance of MockListingRepository.
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{
		listings: make(map[string]models.Listing),
	}
}

// ListActive returns all active listings, newest first.
func (r *MockListingRepository) ListActive() ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if l.Status == models.ListingActive {
			list = append(list, l)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// ListActiveByFarmer returns a farmer's active listings, newest first.
func (r *MockListingRepository) ListActiveByFarmer(farmerID string) ([]models.Listing, error) {
	all, _ := r.ListActive()
	list := make([]models.Listing, 0)
	for _, l := range all {
		if l.FarmerID == farmerID {
			list = append(list, l)
		}
	}
	return list, nil
}

// GetByID returns a listing by its ID.
func (r *MockListingRepository) GetByID(id string) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing with ID %s not found", id)
	}
	return &listing, nil
}

// Create adds a new listing.
func (r *MockListingRepository) Create(listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.Status == "" {
		listing.Status = models.ListingActive
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	r.listings[listing.ID] = *listing
	return nil
}

// Update modifies an existing listing.
func (r *MockListingRepository) Update(listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.listings[listing.ID]
	if !ok {
		return fmt.Errorf("listing with ID %s not found for update", listing.ID)
	}
	r.listings[listing.ID] = *listing
	return nil
}

// UpdateStatus flips a listing's status.
func (r *MockListingRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing with ID %s not found for status update", id)
	}
	listing.Status = status
	r.listings[id] = listing
	return nil
}

// DecrementStock reduces quantity, failing when not enough stock remains.
func (r *MockListingRepository) DecrementStock(id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok || listing.Quantity < qty {
		return fmt.Errorf("insufficient stock for listing %s", id)
	}
	listing.Quantity -= qty
	r.listings[id] = listing
	return nil
}

package repositories

import (
	"sync"

	"kisansetu/internal/models"

	"github.com/google/uuid"
)

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	entries map[string]models.WishlistEntry // keyed by customerID + "/" + target
	mu      sync.Mutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{
		entries: make(map[string]models.WishlistEntry),
	}
}

func wishlistKey(customerID string, listingID, farmerID *string) string {
	if listingID != nil {
		return customerID + "/listing/" + *listingID
	}
	return customerID + "/farmer/" + *farmerID
}

// ListByCustomer returns all wishlist entries for a customer.
func (r *MockWishlistRepository) ListByCustomer(customerID string) ([]models.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]models.WishlistEntry, 0)
	for _, e := range r.entries {
		if e.CustomerID == customerID {
			list = append(list, e)
		}
	}
	return list, nil
}

// Toggle flips membership under a single lock.
func (r *MockWishlistRepository) Toggle(customerID string, listingID, farmerID *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := wishlistKey(customerID, listingID, farmerID)
	if _, ok := r.entries[key]; ok {
		delete(r.entries, key)
		return false, nil
	}
	r.entries[key] = models.WishlistEntry{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ListingID:  listingID,
		FarmerID:   farmerID,
	}
	return true, nil
}

// Contains reports whether a target is currently favorited.
func (r *MockWishlistRepository) Contains(customerID string, listingID, farmerID *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[wishlistKey(customerID, listingID, farmerID)]
	return ok, nil
}

// CountByCustomer returns the number of wishlist entries for a customer.
func (r *MockWishlistRepository) CountByCustomer(customerID string) (int64, error) {
	entries, _ := r.ListByCustomer(customerID)
	return int64(len(entries)), nil
}

package repositories

import (
	"fmt"
	"sync"

	"kisansetu/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	entries map[string]models.CartEntry // keyed by customerID + "/" + listingID
	mu      sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		entries: make(map[string]models.CartEntry),
	}
}

func cartKey(customerID, listingID string) string {
	return customerID + "/" + listingID
}

// ListByCustomer returns a customer's cart entries.
func (r *MockCartRepository) ListByCustomer(customerID string) ([]models.CartEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]models.CartEntry, 0)
	for _, e := range r.entries {
		if e.CustomerID == customerID {
			list = append(list, e)
		}
	}
	return list, nil
}

// AddOrIncrement inserts or bumps the quantity under a single lock.
func (r *MockCartRepository) AddOrIncrement(customerID, listingID string) (*models.CartEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(customerID, listingID)
	entry, ok := r.entries[key]
	if ok {
		entry.Quantity++
	} else {
		entry = models.CartEntry{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			ListingID:  listingID,
			Quantity:   1,
		}
	}
	r.entries[key] = entry
	return &entry, nil
}

// SetQuantity overwrites the quantity, removing the entry at zero or below.
func (r *MockCartRepository) SetQuantity(customerID, listingID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(customerID, listingID)
	entry, ok := r.entries[key]
	if !ok {
		return fmt.Errorf("cart entry for listing %s not found", listingID)
	}
	if quantity <= 0 {
		delete(r.entries, key)
		return nil
	}
	entry.Quantity = quantity
	r.entries[key] = entry
	return nil
}

// Remove deletes a single cart entry.
func (r *MockCartRepository) Remove(customerID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(customerID, listingID)
	if _, ok := r.entries[key]; !ok {
		return fmt.Errorf("cart entry for listing %s not found", listingID)
	}
	delete(r.entries, key)
	return nil
}

// RemoveAll clears a customer's cart.
func (r *MockCartRepository) RemoveAll(customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, e := range r.entries {
		if e.CustomerID == customerID {
			delete(r.entries, key)
		}
	}
	return nil
}

// CountByCustomer returns the number of cart entries for a customer.
func (r *MockCartRepository) CountByCustomer(customerID string) (int64, error) {
	entries, _ := r.ListByCustomer(customerID)
	return int64(len(entries)), nil
}

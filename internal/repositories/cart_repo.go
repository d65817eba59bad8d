package repositories

import (
	"kisansetu/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// ListByCustomer returns a customer's cart entries with listings loaded.
	ListByCustomer(customerID string) ([]models.CartEntry, error)
	// AddOrIncrement inserts a new entry with quantity 1, or bumps the
	// existing entry's quantity by exactly 1, as a single atomic store
	// operation. The read-check-then-insert pattern is deliberately avoided
	// so concurrent adds cannot lose an increment.
	AddOrIncrement(customerID, listingID string) (*models.CartEntry, error)
	// SetQuantity overwrites an entry's quantity. Quantity <= 0 removes the
	// entry; a zero-quantity row is never stored.
	SetQuantity(customerID, listingID string, quantity int) error
	Remove(customerID, listingID string) error
	RemoveAll(customerID string) error
	CountByCustomer(customerID string) (int64, error)
}

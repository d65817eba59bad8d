package repositories

import (
	"kisansetu/internal/models"
)

// WishlistRepository defines the interface for wishlist data access.
// A target is either a listing ID or a farmer ID, never both.
type WishlistRepository interface {
	ListByCustomer(customerID string) ([]models.WishlistEntry, error)
	// Toggle flips membership for the given target in one store operation
	// and reports whether the target is favorited afterwards.
	Toggle(customerID string, listingID, farmerID *string) (bool, error)
	Contains(customerID string, listingID, farmerID *string) (bool, error)
	CountByCustomer(customerID string) (int64, error)
}

package repositories

import (
	"kisansetu/internal/models"
)

// ListingRepository defines the interface for listing data access.
type ListingRepository interface {
	// ListActive returns all active listings, newest first.
	ListActive() ([]models.Listing, error)
	// ListActiveByFarmer returns a farmer's active listings, newest first.
	ListActiveByFarmer(farmerID string) ([]models.Listing, error)
	GetByID(id string) (*models.Listing, error)
	Create(listing *models.Listing) error
	Update(listing *models.Listing) error
	UpdateStatus(id string, status string) error
	// DecrementStock reduces a listing's quantity by qty only when enough
	// stock remains; it fails rather than driving the quantity negative.
	DecrementStock(id string, qty int) error
}

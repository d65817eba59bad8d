package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMListingRepository is a GORM implementation of ListingRepository.
type GORMListingRepository struct {
	db *gorm.DB
}

// NewGORMListingRepository creates a new instance of GORMListingRepository.
func NewGORMListingRepository(db *gorm.DB) *GORMListingRepository {
	return &GORMListingRepository{
		db: db,
	}
}

// ListActive retrieves all active listings ordered newest first.
func (r *GORMListingRepository) ListActive() ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Where("status = ?", models.ListingActive).Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list active listings: %w", err)
	}
	return listings, nil
}

// ListActiveByFarmer retrieves a farmer's active listings ordered newest first.
func (r *GORMListingRepository) ListActiveByFarmer(farmerID string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Where("farmer_id = ? AND status = ?", farmerID, models.ListingActive).
		Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings for farmer %s: %w", farmerID, err)
	}
	return listings, nil
}

// GetByID retrieves a single listing by its ID.
func (r *GORMListingRepository) GetByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("listing with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", id, err)
	}
	return &listing, nil
}

// Create creates a new listing.
func (r *GORMListingRepository) Create(listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.Status == "" {
		listing.Status = models.ListingActive
	}
	if err := r.db.Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// Update updates an existing listing.
func (r *GORMListingRepository) Update(listing *models.Listing) error {
	res := r.db.Save(listing)
	if res.Error != nil {
		return fmt.Errorf("failed to update listing: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("listing with ID %s not found for update", listing.ID)
	}
	return nil
}

// UpdateStatus flips a listing's status. Listings are never hard-deleted.
func (r *GORMListingRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Listing{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update listing status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("listing with ID %s not found for status update", id)
	}
	return nil
}

// DecrementStock conditionally reduces quantity in a single UPDATE so two
// concurrent checkouts cannot drive the stock negative.
func (r *GORMListingRepository) DecrementStock(id string, qty int) error {
	res := r.db.Model(&models.Listing{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for listing %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("insufficient stock for listing %s", id)
	}
	return nil
}

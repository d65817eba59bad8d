package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

func wishlistTarget(db *gorm.DB, customerID string, listingID, farmerID *string) *gorm.DB {
	q := db.Where("customer_id = ?", customerID)
	if listingID != nil {
		return q.Where("listing_id = ?", *listingID)
	}
	return q.Where("farmer_id = ?", *farmerID)
}

// ListByCustomer retrieves all wishlist entries for a customer.
func (r *GORMWishlistRepository) ListByCustomer(customerID string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := r.db.Where("customer_id = ?", customerID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist for customer %s: %w", customerID, err)
	}
	return entries, nil
}

// Toggle inserts or deletes the entry inside a transaction so the
// check-then-write pair cannot race with itself.
func (r *GORMWishlistRepository) Toggle(customerID string, listingID, farmerID *string) (bool, error) {
	var favorited bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := wishlistTarget(tx, customerID, listingID, farmerID).Delete(&models.WishlistEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}
		entry := models.WishlistEntry{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			ListingID:  listingID,
			FarmerID:   farmerID,
		}
		favorited = true
		return tx.Create(&entry).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle wishlist entry: %w", err)
	}
	return favorited, nil
}

// Contains reports whether a target is currently favorited.
func (r *GORMWishlistRepository) Contains(customerID string, listingID, farmerID *string) (bool, error) {
	var count int64
	if err := wishlistTarget(r.db.Model(&models.WishlistEntry{}), customerID, listingID, farmerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}
	return count > 0, nil
}

// CountByCustomer returns the number of wishlist entries for a customer.
func (r *GORMWishlistRepository) CountByCustomer(customerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.WishlistEntry{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count wishlist entries: %w", err)
	}
	return count, nil
}

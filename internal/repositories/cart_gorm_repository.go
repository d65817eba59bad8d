package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// ListByCustomer retrieves a customer's cart entries with listings preloaded.
func (r *GORMCartRepository) ListByCustomer(customerID string) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if err := r.db.Preload("Listing").Where("customer_id = ?", customerID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart for customer %s: %w", customerID, err)
	}
	return entries, nil
}

// AddOrIncrement runs the increment and the insert fallback inside one
// transaction: first a conditional UPDATE quantity = quantity + 1, and only
// when no row matched, an INSERT with quantity 1.
func (r *GORMCartRepository) AddOrIncrement(customerID, listingID string) (*models.CartEntry, error) {
	var entry models.CartEntry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartEntry{}).
			Where("customer_id = ? AND listing_id = ?", customerID, listingID).
			Update("quantity", gorm.Expr("quantity + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			entry = models.CartEntry{
				ID:         uuid.New().String(),
				CustomerID: customerID,
				ListingID:  listingID,
				Quantity:   1,
			}
			return tx.Create(&entry).Error
		}
		return tx.Where("customer_id = ? AND listing_id = ?", customerID, listingID).First(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add listing %s to cart: %w", listingID, err)
	}
	return &entry, nil
}

// SetQuantity overwrites the quantity, deleting the entry when it drops to
// zero or below.
func (r *GORMCartRepository) SetQuantity(customerID, listingID string, quantity int) error {
	if quantity <= 0 {
		return r.Remove(customerID, listingID)
	}
	res := r.db.Model(&models.CartEntry{}).
		Where("customer_id = ? AND listing_id = ?", customerID, listingID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry for listing %s not found", listingID)
	}
	return nil
}

// Remove deletes a single cart entry.
func (r *GORMCartRepository) Remove(customerID, listingID string) error {
	res := r.db.Where("customer_id = ? AND listing_id = ?", customerID, listingID).Delete(&models.CartEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry for listing %s not found", listingID)
	}
	return nil
}

// RemoveAll clears a customer's cart, typically after checkout.
func (r *GORMCartRepository) RemoveAll(customerID string) error {
	if err := r.db.Where("customer_id = ?", customerID).Delete(&models.CartEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for customer %s: %w", customerID, err)
	}
	return nil
}

// CountByCustomer returns the number of cart entries for a customer.
func (r *GORMCartRepository) CountByCustomer(customerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartEntry{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cart entries: %w", err)
	}
	return count, nil
}

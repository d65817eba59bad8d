package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPreferenceRepository is a GORM implementation of PreferenceRepository.
type GORMPreferenceRepository struct {
	db *gorm.DB
}

// NewGORMPreferenceRepository creates a new instance of GORMPreferenceRepository.
func NewGORMPreferenceRepository(db *gorm.DB) *GORMPreferenceRepository {
	return &GORMPreferenceRepository{
		db: db,
	}
}

// Upsert inserts or replaces the snapshot keyed by customer id.
func (r *GORMPreferenceRepository) Upsert(pref *models.CustomerPreference) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_recommendations", "recommendations_updated_at"}),
	}).Create(pref).Error; err != nil {
		return fmt.Errorf("failed to upsert preferences for customer %s: %w", pref.CustomerID, err)
	}
	return nil
}

// GetByCustomer retrieves the stored snapshot for a customer.
func (r *GORMPreferenceRepository) GetByCustomer(customerID string) (*models.CustomerPreference, error) {
	var pref models.CustomerPreference
	if err := r.db.First(&pref, "customer_id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("preferences for customer %s not found", customerID)
		}
		return nil, fmt.Errorf("failed to get preferences for customer %s: %w", customerID, err)
	}
	return &pref, nil
}

package repositories

import "kisansetu/internal/models"

// PreferenceRepository defines the interface for the per-customer
// recommendation snapshot, upserted by customer id.
type PreferenceRepository interface {
	Upsert(pref *models.CustomerPreference) error
	GetByCustomer(customerID string) (*models.CustomerPreference, error)
}

package repositories

import (
	"kisansetu/internal/geo"
	"kisansetu/internal/models"
)

// MerchantRepository defines the interface for the merchant directory
// consulted by the disease alert fan-out.
type MerchantRepository interface {
	// FindWithinRadius returns merchants within radiusKm of the point.
	// Merchants without coordinates on file are always included.
	FindWithinRadius(point geo.Point, radiusKm float64) ([]models.Merchant, error)
}

package repositories

import (
	"fmt"

	"kisansetu/internal/geo"
	"kisansetu/internal/models"

	"gorm.io/gorm"
)

// GORMMerchantRepository is a GORM implementation of MerchantRepository.
// The directory is small, so the haversine filter runs in process rather
// than pushing trigonometry into SQL.
type GORMMerchantRepository struct {
	db *gorm.DB
}

// NewGORMMerchantRepository creates a new instance of GORMMerchantRepository.
func NewGORMMerchantRepository(db *gorm.DB) *GORMMerchantRepository {
	return &GORMMerchantRepository{
		db: db,
	}
}

// FindWithinRadius loads the directory and filters by great-circle distance.
func (r *GORMMerchantRepository) FindWithinRadius(point geo.Point, radiusKm float64) ([]models.Merchant, error) {
	var merchants []models.Merchant
	if err := r.db.Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to load merchant directory: %w", err)
	}
	return filterByRadius(merchants, point, radiusKm), nil
}

func filterByRadius(merchants []models.Merchant, point geo.Point, radiusKm float64) []models.Merchant {
	nearby := make([]models.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if m.Lat == nil || m.Lon == nil {
			nearby = append(nearby, m) // No location data, include anyway
			continue
		}
		if geo.Distance(point, geo.Point{Lat: *m.Lat, Lon: *m.Lon}) <= radiusKm {
			nearby = append(nearby, m)
		}
	}
	return nearby
}

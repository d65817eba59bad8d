package repositories

import (
	"kisansetu/internal/geo"
	"kisansetu/internal/models"
)

// FixtureMerchantRepository serves a static merchant list. It stands in
// for a real directory in local mode and in tests.
type FixtureMerchantRepository struct {
	merchants []models.Merchant
}

// NewFixtureMerchantRepository creates a repository over a fixed list.
func NewFixtureMerchantRepository(merchants []models.Merchant) *FixtureMerchantRepository {
	return &FixtureMerchantRepository{
		merchants: merchants,
	}
}

func ptr(f float64) *float64 { return &f }

// DefaultMerchantFixture returns a small directory clustered around the
// given point, a few hundred meters to a couple of kilometers away.
func DefaultMerchantFixture(near geo.Point) []models.Merchant {
	return []models.Merchant{
		{
			ID:       "1",
			Name:     "Kisan Agro Center",
			Email:    "kisan@agro.com",
			Phone:    "+91 98765 43210",
			Address:  "Near bus stand",
			Lat:      ptr(near.Lat + 0.005),
			Lon:      ptr(near.Lon + 0.005),
			Category: "Agricultural Supplies",
		},
		{
			ID:       "2",
			Name:     "Green Seeds & Fertilizers",
			Email:    "green@seeds.com",
			Phone:    "+91 98765 43211",
			Address:  "Main market",
			Lat:      ptr(near.Lat + 0.01),
			Lon:      ptr(near.Lon - 0.01),
			Category: "Seed Store",
		},
		{
			ID:       "3",
			Name:     "Farm Tech Equipment",
			Email:    "farmtech@equipment.com",
			Phone:    "+91 98765 43212",
			Address:  "Industrial area",
			Lat:      ptr(near.Lat - 0.02),
			Lon:      ptr(near.Lon + 0.02),
			Category: "Farm Equipment",
		},
	}
}

// FindWithinRadius filters the fixed list by great-circle distance.
func (r *FixtureMerchantRepository) FindWithinRadius(point geo.Point, radiusKm float64) ([]models.Merchant, error) {
	return filterByRadius(r.merchants, point, radiusKm), nil
}

package repositories

import "kisansetu/internal/models"

// RatingRepository defines the interface for farmer rating data access.
// Ratings are append-only.
type RatingRepository interface {
	Create(rating *models.Rating) error
	ListByFarmer(farmerID string) ([]models.Rating, error)
	RecentByFarmer(farmerID string, limit int) ([]models.Rating, error)
}

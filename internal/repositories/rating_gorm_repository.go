package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Create appends a new rating.
func (r *GORMRatingRepository) Create(rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// ListByFarmer retrieves all ratings for a farmer.
func (r *GORMRatingRepository) ListByFarmer(farmerID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("farmer_id = ?", farmerID).Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings for farmer %s: %w", farmerID, err)
	}
	return ratings, nil
}

// RecentByFarmer retrieves up to limit most recent ratings for a farmer.
func (r *GORMRatingRepository) RecentByFarmer(farmerID string, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").Limit(limit).Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent ratings for farmer %s: %w", farmerID, err)
	}
	return ratings, nil
}

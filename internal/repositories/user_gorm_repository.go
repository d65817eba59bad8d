package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new profile in the database.
func (r *GORMUserRepository) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.ThemeMode == "" {
		profile.ThemeMode = models.ThemeDark
	}
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByEmail retrieves a profile by email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get profile by email %s: %w", email, err)
	}
	return &profile, nil
}

// GetByID retrieves a profile by its ID.
func (r *GORMUserRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get profile by ID %s: %w", id, err)
	}
	return &profile, nil
}

// UpdateTheme persists the profile's theme mode.
func (r *GORMUserRepository) UpdateTheme(id string, mode string) error {
	res := r.db.Model(&models.Profile{}).Where("id = ?", id).Update("theme_mode", mode)
	if res.Error != nil {
		return fmt.Errorf("failed to update theme for profile %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile with ID %s not found", id)
	}
	return nil
}

package services

import (
	"math"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
)

// FarmerPublicProfile is the aggregate shown on a farmer's public page.
// The underlying queries run independently with no transactional
// consistency between them; a rating inserted mid-aggregation may or may
// not be reflected.
type FarmerPublicProfile struct {
	FarmerID     string           `json:"farmer_id"`
	FullName     string           `json:"full_name"`
	City         string           `json:"city,omitempty"`
	State        string           `json:"state,omitempty"`
	TotalSales   int64            `json:"total_sales"`
	AvgRating    float64          `json:"avg_rating"`
	TotalReviews int              `json:"total_reviews"`
	CropsGrown   []string         `json:"crops_grown"`
	Listings     []models.Listing `json:"listings"`
	Reviews      []models.Rating  `json:"reviews"`
}

// ProfileService aggregates public farmer profiles at view time.
type ProfileService struct {
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
	ratingRepo  repositories.RatingRepository
	listingRepo repositories.ListingRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	ratingRepo repositories.RatingRepository,
	listingRepo repositories.ListingRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		ratingRepo:  ratingRepo,
		listingRepo: listingRepo,
	}
}

// FarmerProfile derives a farmer's rating average, sales count, and grown
// crop set from independent queries. No caching; every call recomputes.
func (s *ProfileService) FarmerProfile(farmerID string) (*FarmerPublicProfile, error) {
	profile, err := s.userRepo.GetByID(farmerID)
	if err != nil {
		return nil, err
	}

	salesCount, err := s.orderRepo.CountDeliveredByFarmer(farmerID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByFarmer(farmerID)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.ListActiveByFarmer(farmerID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.ratingRepo.RecentByFarmer(farmerID, 10)
	if err != nil {
		return nil, err
	}

	return &FarmerPublicProfile{
		FarmerID:     profile.ID,
		FullName:     profile.FullName,
		City:         profile.City,
		State:        profile.State,
		TotalSales:   salesCount,
		AvgRating:    AverageRating(ratings),
		TotalReviews: len(ratings),
		CropsGrown:   distinctCategories(listings),
		Listings:     listings,
		Reviews:      reviews,
	}, nil
}

// AverageRating returns the arithmetic mean of the ratings rounded to one
// decimal, or 0 when there are none.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

func distinctCategories(listings []models.Listing) []string {
	seen := make(map[string]bool)
	crops := make([]string, 0)
	for _, l := range listings {
		if !seen[l.Category] {
			seen[l.Category] = true
			crops = append(crops, l.Category)
		}
	}
	return crops
}

// RateFarmer appends a customer's rating of a farmer.
func (s *ProfileService) RateFarmer(rating *models.Rating) error {
	return s.ratingRepo.Create(rating)
}

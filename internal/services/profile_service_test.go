package services_test

import (
	"testing"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRatingRepository is a mock implementation of repositories.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ListByFarmer(farmerID string) ([]models.Rating, error) {
	args := m.Called(farmerID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) RecentByFarmer(farmerID string, limit int) ([]models.Rating, error) {
	args := m.Called(farmerID, limit)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func ratingsOf(values ...int) []models.Rating {
	ratings := make([]models.Rating, 0, len(values))
	for i, v := range values {
		ratings = append(ratings, models.Rating{
			ID:         string(rune('a' + i)),
			FarmerID:   "farmer-1",
			CustomerID: "cust-1",
			Rating:     v,
		})
	}
	return ratings
}

func TestAverageRating(t *testing.T) {
	// No ratings yields 0, never NaN
	assert.Equal(t, 0.0, services.AverageRating(nil))
	assert.Equal(t, 0.0, services.AverageRating([]models.Rating{}))

	assert.Equal(t, 5.0, services.AverageRating(ratingsOf(5)))
	assert.Equal(t, 4.5, services.AverageRating(ratingsOf(4, 5)))
	// 13/3 = 4.333... rounds to one decimal
	assert.Equal(t, 4.3, services.AverageRating(ratingsOf(4, 4, 5)))
	// 14/3 = 4.666... rounds up
	assert.Equal(t, 4.7, services.AverageRating(ratingsOf(4, 5, 5)))
}

func TestProfileService_FarmerProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	ratingRepo := new(MockRatingRepository)
	orderRepo := repositories.NewMockOrderRepository()
	listingRepo := repositories.NewMockListingRepository()
	profileService := services.NewProfileService(userRepo, orderRepo, ratingRepo, listingRepo)

	userRepo.On("GetByID", "farmer-1").Return(&models.Profile{
		ID:       "farmer-1",
		FullName: "Ramesh Kumar",
		Role:     models.RoleFarmer,
		City:     "Nashik",
		State:    "Maharashtra",
	}, nil)

	allRatings := ratingsOf(5, 4, 4)
	ratingRepo.On("ListByFarmer", "farmer-1").Return(allRatings, nil)
	ratingRepo.On("RecentByFarmer", "farmer-1", 10).Return(allRatings[:2], nil)

	for _, status := range []string{models.OrderDelivered, models.OrderDelivered, models.OrderPending} {
		order := models.Order{CustomerID: "cust-1", FarmerID: "farmer-1", Status: status}
		assert.NoError(t, orderRepo.Create(&order))
	}

	seedListings := []models.Listing{
		{ID: "l-1", FarmerID: "farmer-1", Title: "Organic Tomatoes", Category: "Vegetables", Unit: "kg"},
		{ID: "l-2", FarmerID: "farmer-1", Title: "Fresh Spinach", Category: "Vegetables", Unit: "kg"},
		{ID: "l-3", FarmerID: "farmer-1", Title: "Basmati Rice", Category: "Grains", Unit: "kg"},
	}
	for i := range seedListings {
		assert.NoError(t, listingRepo.Create(&seedListings[i]))
	}

	profile, err := profileService.FarmerProfile("farmer-1")
	assert.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", profile.FullName)
	assert.Equal(t, "Nashik", profile.City)

	// Only delivered orders count as sales
	assert.Equal(t, int64(2), profile.TotalSales)

	// 13/3 rounded to one decimal
	assert.Equal(t, 4.3, profile.AvgRating)
	assert.Equal(t, 3, profile.TotalReviews)
	assert.Len(t, profile.Reviews, 2)

	// Crops are the distinct active listing categories
	assert.ElementsMatch(t, []string{"Vegetables", "Grains"}, profile.CropsGrown)
	assert.Len(t, profile.Listings, 3)

	userRepo.AssertExpectations(t)
	ratingRepo.AssertExpectations(t)
}

func TestProfileService_FarmerProfileNoRatings(t *testing.T) {
	userRepo := new(MockUserRepository)
	ratingRepo := new(MockRatingRepository)
	profileService := services.NewProfileService(
		userRepo,
		repositories.NewMockOrderRepository(),
		ratingRepo,
		repositories.NewMockListingRepository(),
	)

	userRepo.On("GetByID", "farmer-1").Return(&models.Profile{ID: "farmer-1", FullName: "New Farmer"}, nil)
	ratingRepo.On("ListByFarmer", "farmer-1").Return([]models.Rating{}, nil)
	ratingRepo.On("RecentByFarmer", "farmer-1", 10).Return([]models.Rating{}, nil)

	profile, err := profileService.FarmerProfile("farmer-1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, profile.AvgRating)
	assert.Equal(t, 0, profile.TotalReviews)
	assert.Equal(t, int64(0), profile.TotalSales)
	assert.Empty(t, profile.CropsGrown)
}

func TestProfileService_RateFarmer(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	profileService := services.NewProfileService(
		new(MockUserRepository),
		repositories.NewMockOrderRepository(),
		ratingRepo,
		repositories.NewMockListingRepository(),
	)

	rating := &models.Rating{FarmerID: "farmer-1", CustomerID: "cust-1", Rating: 5, Review: "Great produce"}
	ratingRepo.On("Create", rating).Return(nil).Once()

	assert.NoError(t, profileService.RateFarmer(rating))
	ratingRepo.AssertExpectations(t)
}

package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"kisansetu/internal/models"
	"kisansetu/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.Profile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserRepository) UpdateTheme(id string, mode string) error {
	args := m.Called(id, mode)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	profile := &models.Profile{
		FullName: "Test Farmer",
		Email:    "farmer@example.com",
		Password: "password123",
		Role:     models.RoleFarmer,
	}

	mockRepo.On("GetByEmail", profile.Email).Return(nil, fmt.Errorf("profile with email %s not found", profile.Email)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Profile")).Return(nil).Once()

	err := authService.Register(profile)
	assert.NoError(t, err)
	// Password must be stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.Profile{ID: "u-1", Email: "taken@example.com"}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil).Once()

	err := authService.Register(&models.Profile{
		FullName: "Another User",
		Email:    "taken@example.com",
		Password: "password123",
		Role:     models.RoleCustomer,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	err := authService.Register(&models.Profile{
		FullName: "Bad Role",
		Email:    "bad@example.com",
		Password: "password123",
		Role:     "admin",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	profile := &models.Profile{
		ID:       "u-1",
		Email:    "customer@example.com",
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}

	// Successful login returns a token carrying id and role
	mockRepo.On("GetByEmail", profile.Email).Return(profile, nil).Once()
	token, err := authService.Login(profile.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, models.RoleCustomer, claims["role"])

	// Wrong password
	mockRepo.On("GetByEmail", profile.Email).Return(profile, nil).Once()
	_, err = authService.Login(profile.Email, "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown email does not reveal existence
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("profile with email nobody@example.com not found")).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"role":    models.RoleCustomer,
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
	})
	tokenString, _ := expired.SignedString([]byte("test_jwt_secret"))

	_, err := authService.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestAuthService_SetTheme(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("UpdateTheme", "u-1", models.ThemeLight).Return(nil).Once()
	assert.NoError(t, authService.SetTheme("u-1", models.ThemeLight))

	err := authService.SetTheme("u-1", "sepia")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme mode")
	mockRepo.AssertExpectations(t)
}

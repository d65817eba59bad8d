package services

import (
	"fmt"
	"log"
	"time"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Register registers a new profile, hashes the password, and saves it.
func (s *AuthService) Register(profile *models.Profile) error {
	switch profile.Role {
	case models.RoleFarmer, models.RoleMerchant, models.RoleCustomer:
	default:
		return fmt.Errorf("invalid role: %s", profile.Role)
	}

	if existing, err := s.userRepo.GetByEmail(profile.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", profile.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	profile.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(profile); err != nil {
		return fmt.Errorf("failed to register profile: %w", err)
	}
	return nil
}

// Login authenticates a profile by email and returns a JWT token.
func (s *AuthService) Login(email, password string) (string, error) {
	profile, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": profile.ID,
		"role":    profile.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GetProfile fetches a profile by id.
func (s *AuthService) GetProfile(id string) (*models.Profile, error) {
	return s.userRepo.GetByID(id)
}

// SetTheme persists the profile's theme mode.
func (s *AuthService) SetTheme(id, mode string) error {
	if mode != models.ThemeLight && mode != models.ThemeDark {
		return fmt.Errorf("invalid theme mode: %s", mode)
	}
	return s.userRepo.UpdateTheme(id, mode)
}

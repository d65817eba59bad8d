package services

import (
	"fmt"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
)

// WishlistService handles business logic for customer wishlists. A
// wishlist target is either a single listing or a whole farmer.
type WishlistService struct {
	repo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{
		repo: repo,
	}
}

// List returns a customer's wishlist entries.
func (s *WishlistService) List(customerID string) ([]models.WishlistEntry, error) {
	return s.repo.ListByCustomer(customerID)
}

// Toggle flips membership for the target and reports whether it is
// favorited afterwards. Exactly one of listingID/farmerID must be set.
func (s *WishlistService) Toggle(customerID, listingID, farmerID string) (bool, error) {
	listing, farmer, err := wishlistTargetIDs(listingID, farmerID)
	if err != nil {
		return false, err
	}
	return s.repo.Toggle(customerID, listing, farmer)
}

// IsFavorited reports whether a target is currently on the wishlist.
func (s *WishlistService) IsFavorited(customerID, listingID, farmerID string) (bool, error) {
	listing, farmer, err := wishlistTargetIDs(listingID, farmerID)
	if err != nil {
		return false, err
	}
	return s.repo.Contains(customerID, listing, farmer)
}

func wishlistTargetIDs(listingID, farmerID string) (*string, *string, error) {
	if (listingID == "") == (farmerID == "") {
		return nil, nil, fmt.Errorf("exactly one of listing_id or farmer_id must be set")
	}
	if listingID != "" {
		return &listingID, nil, nil
	}
	return nil, &farmerID, nil
}

package services

import (
	"fmt"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
)

// CartService handles business logic for customer carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	listingRepo repositories.ListingRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, listingRepo repositories.ListingRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
	}
}

// GetCart returns a customer's cart entries.
func (s *CartService) GetCart(customerID string) ([]models.CartEntry, error) {
	return s.cartRepo.ListByCustomer(customerID)
}

// Add puts a listing in the cart, incrementing the quantity by exactly 1
// when the listing is already carted. The repository performs the
// insert-or-increment atomically.
func (s *CartService) Add(customerID, listingID string) (*models.CartEntry, error) {
	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingActive {
		return nil, fmt.Errorf("listing %s is not available", listingID)
	}
	return s.cartRepo.AddOrIncrement(customerID, listingID)
}

// UpdateQuantity sets an entry's quantity. A quantity of zero or below
// removes the entry; a cart never holds a zero-quantity row.
func (s *CartService) UpdateQuantity(customerID, listingID string, quantity int) error {
	return s.cartRepo.SetQuantity(customerID, listingID, quantity)
}

// Remove deletes a single entry from the cart.
func (s *CartService) Remove(customerID, listingID string) error {
	return s.cartRepo.Remove(customerID, listingID)
}

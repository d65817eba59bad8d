package services

import (
	"fmt"
	"sort"
	"strings"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
)

// Sort keys accepted by the marketplace catalog.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CategoryAll is the wildcard category filter.
const CategoryAll = "All"

// CatalogService handles business logic for marketplace listings.
type CatalogService struct {
	repo repositories.ListingRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ListingRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Browse returns the active listings after applying the marketplace search,
// category, and sort parameters. The store returns the set newest first;
// filtering and sorting happen in process.
func (s *CatalogService) Browse(searchTerm, category, sortKey string) ([]models.Listing, error) {
	listings, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return ApplyFilters(listings, searchTerm, category, sortKey), nil
}

// ApplyFilters filters and sorts a listing set. The search term matches
// case-insensitively against title, description, category, and location;
// the category filter is exact-match, with "All" (or empty) as wildcard;
// sorting is stable and either a no-op (input order, newest first) or by
// ascending/descending price. The input slice is not modified.
func ApplyFilters(listings []models.Listing, searchTerm, category, sortKey string) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	for _, l := range listings {
		if term != "" && !matchesSearch(l, term) {
			continue
		}
		if category != "" && category != CategoryAll && l.Category != category {
			continue
		}
		filtered = append(filtered, l)
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	default:
		// SortNewest: store order is already newest first
	}

	return filtered
}

func matchesSearch(l models.Listing, term string) bool {
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.Category), term) ||
		strings.Contains(strings.ToLower(l.Location), term)
}

// GetListing retrieves a single listing by its ID.
func (s *CatalogService) GetListing(id string) (*models.Listing, error) {
	return s.repo.GetByID(id)
}

// ListByFarmer returns a farmer's active listings.
func (s *CatalogService) ListByFarmer(farmerID string) ([]models.Listing, error) {
	return s.repo.ListActiveByFarmer(farmerID)
}

// CreateListing publishes a new listing for a farmer.
func (s *CatalogService) CreateListing(listing *models.Listing) error {
	return s.repo.Create(listing)
}

// UpdateListing updates a listing after checking ownership.
func (s *CatalogService) UpdateListing(farmerID string, listing *models.Listing) error {
	existing, err := s.repo.GetByID(listing.ID)
	if err != nil {
		return err
	}
	if existing.FarmerID != farmerID {
		return fmt.Errorf("listing %s does not belong to farmer %s", listing.ID, farmerID)
	}
	listing.FarmerID = existing.FarmerID
	return s.repo.Update(listing)
}

// SetStatus flips a listing's status after checking ownership. Listings
// are deactivated this way, never hard-deleted.
func (s *CatalogService) SetStatus(farmerID, listingID, status string) error {
	switch status {
	case models.ListingActive, models.ListingInactive, models.ListingSoldOut:
	default:
		return fmt.Errorf("invalid listing status: %s", status)
	}
	existing, err := s.repo.GetByID(listingID)
	if err != nil {
		return err
	}
	if existing.FarmerID != farmerID {
		return fmt.Errorf("listing %s does not belong to farmer %s", listingID, farmerID)
	}
	return s.repo.UpdateStatus(listingID, status)
}

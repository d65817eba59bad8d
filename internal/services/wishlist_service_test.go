package services_test

import (
	"testing"

	"kisansetu/internal/repositories"
	"kisansetu/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestWishlistService_ToggleTwiceRestoresState(t *testing.T) {
	wishlistService := services.NewWishlistService(repositories.NewMockWishlistRepository())

	favorited, err := wishlistService.Toggle("cust-1", "l-1", "")
	assert.NoError(t, err)
	assert.True(t, favorited)

	on, err := wishlistService.IsFavorited("cust-1", "l-1", "")
	assert.NoError(t, err)
	assert.True(t, on)

	favorited, err = wishlistService.Toggle("cust-1", "l-1", "")
	assert.NoError(t, err)
	assert.False(t, favorited)

	on, err = wishlistService.IsFavorited("cust-1", "l-1", "")
	assert.NoError(t, err)
	assert.False(t, on)

	entries, err := wishlistService.List("cust-1")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWishlistService_ListingAndFarmerTargetsAreDistinct(t *testing.T) {
	wishlistService := services.NewWishlistService(repositories.NewMockWishlistRepository())

	_, err := wishlistService.Toggle("cust-1", "abc", "")
	assert.NoError(t, err)
	_, err = wishlistService.Toggle("cust-1", "", "abc")
	assert.NoError(t, err)

	// Same raw id, different target kinds: both entries exist
	entries, err := wishlistService.List("cust-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Removing the farmer favorite leaves the listing favorite alone
	favorited, err := wishlistService.Toggle("cust-1", "", "abc")
	assert.NoError(t, err)
	assert.False(t, favorited)

	on, err := wishlistService.IsFavorited("cust-1", "abc", "")
	assert.NoError(t, err)
	assert.True(t, on)
}

func TestWishlistService_RejectsAmbiguousTarget(t *testing.T) {
	wishlistService := services.NewWishlistService(repositories.NewMockWishlistRepository())

	_, err := wishlistService.Toggle("cust-1", "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of")

	_, err = wishlistService.Toggle("cust-1", "l-1", "farmer-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of")

	_, err = wishlistService.IsFavorited("cust-1", "", "")
	assert.Error(t, err)
}

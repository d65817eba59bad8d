package services_test

import (
	"testing"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/internal/services"

	"github.com/stretchr/testify/assert"
)

type orderFixture struct {
	orderService *services.OrderService
	orderRepo    *repositories.MockOrderRepository
	cartRepo     *repositories.MockCartRepository
	listingRepo  *repositories.MockListingRepository
	wishlistRepo *repositories.MockWishlistRepository
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orderRepo:    repositories.NewMockOrderRepository(),
		cartRepo:     repositories.NewMockCartRepository(),
		listingRepo:  repositories.NewMockListingRepository(),
		wishlistRepo: repositories.NewMockWishlistRepository(),
	}
	f.orderService = services.NewOrderService(f.orderRepo, f.cartRepo, f.listingRepo, f.wishlistRepo, nil)

	tomatoes := models.Listing{
		ID:       "l-1",
		FarmerID: "farmer-1",
		Title:    "Organic Tomatoes",
		Category: "Vegetables",
		Price:    40,
		Quantity: 10,
		Unit:     "kg",
	}
	mangoes := models.Listing{
		ID:       "l-2",
		FarmerID: "farmer-2",
		Title:    "Alphonso Mangoes",
		Category: "Fruits",
		Price:    120,
		Quantity: 3,
		Unit:     "dozen",
	}
	assert.NoError(t, f.listingRepo.Create(&tomatoes))
	assert.NoError(t, f.listingRepo.Create(&mangoes))
	return f
}

func TestOrderService_Checkout(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.cartRepo.AddOrIncrement("cust-1", "l-1")
	assert.NoError(t, err)
	_, err = f.cartRepo.AddOrIncrement("cust-1", "l-1")
	assert.NoError(t, err)
	_, err = f.cartRepo.AddOrIncrement("cust-1", "l-2")
	assert.NoError(t, err)

	orders, err := f.orderService.Checkout("cust-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	byListing := make(map[string]models.Order)
	for _, o := range orders {
		byListing[o.ListingID] = o
		assert.Equal(t, models.OrderPending, o.Status)
		assert.Equal(t, "cust-1", o.CustomerID)
	}

	// Price and title are snapshotted, totals follow quantity
	tomatoOrder := byListing["l-1"]
	assert.Equal(t, "Organic Tomatoes", tomatoOrder.Title)
	assert.Equal(t, "farmer-1", tomatoOrder.FarmerID)
	assert.Equal(t, 2, tomatoOrder.Quantity)
	assert.Equal(t, 40.0, tomatoOrder.UnitPrice)
	assert.Equal(t, 80.0, tomatoOrder.Total)

	// Stock came down by the ordered quantity
	tomatoes, err := f.listingRepo.GetByID("l-1")
	assert.NoError(t, err)
	assert.Equal(t, 8, tomatoes.Quantity)

	// The cart is cleared after checkout
	entries, err := f.cartRepo.ListByCustomer("cust-1")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orderService.Checkout("cust-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestOrderService_CheckoutInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.cartRepo.AddOrIncrement("cust-1", "l-2")
	assert.NoError(t, err)
	assert.NoError(t, f.cartRepo.SetQuantity("cust-1", "l-2", 5))

	_, err = f.orderService.Checkout("cust-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")

	// Stock is untouched and the cart keeps its entry
	mangoes, err := f.listingRepo.GetByID("l-2")
	assert.NoError(t, err)
	assert.Equal(t, 3, mangoes.Quantity)

	entries, err := f.cartRepo.ListByCustomer("cust-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newOrderFixture(t)

	order := models.Order{ID: "o-1", CustomerID: "cust-1", FarmerID: "farmer-1", Status: models.OrderPending}
	assert.NoError(t, f.orderRepo.Create(&order))

	assert.Error(t, f.orderService.UpdateStatus("o-1", "teleported"))
	assert.NoError(t, f.orderService.UpdateStatus("o-1", models.OrderShipped))

	updated, err := f.orderService.GetOrderByID("o-1")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderShipped, updated.Status)
}

func TestOrderService_Stats(t *testing.T) {
	f := newOrderFixture(t)

	// No orders at all: everything zero, rate included
	stats, err := f.orderService.Stats("cust-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.Equal(t, 0, stats.CompletedOrders)
	assert.Equal(t, 0, stats.CompletionRate)

	seed := []models.Order{
		{ID: "o-1", CustomerID: "cust-1", Status: models.OrderPending},
		{ID: "o-2", CustomerID: "cust-1", Status: models.OrderShipped},
		{ID: "o-3", CustomerID: "cust-1", Status: models.OrderDelivered},
		{ID: "o-4", CustomerID: "cust-1", Status: models.OrderDelivered},
		{ID: "o-5", CustomerID: "cust-1", Status: models.OrderCancelled},
		{ID: "o-6", CustomerID: "cust-2", Status: models.OrderPending},
	}
	for i := range seed {
		assert.NoError(t, f.orderRepo.Create(&seed[i]))
	}

	_, err = f.cartRepo.AddOrIncrement("cust-1", "l-1")
	assert.NoError(t, err)
	_, err = f.wishlistRepo.Toggle("cust-1", strPtr("l-2"), nil)
	assert.NoError(t, err)

	stats, err = f.orderService.Stats("cust-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.CartItems)
	assert.Equal(t, int64(1), stats.WishlistItems)
	// Cancelled orders count toward neither bucket
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 50, stats.CompletionRate)
}

func strPtr(s string) *string { return &s }

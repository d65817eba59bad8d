package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/pkg/rabbitmq"

	"github.com/google/uuid"
)

// DashboardStats are the customer dashboard numbers.
type DashboardStats struct {
	CartItems       int64 `json:"cart_items"`
	WishlistItems   int64 `json:"wishlist_items"`
	PendingOrders   int   `json:"pending_orders"`
	CompletedOrders int   `json:"completed_orders"`
	CompletionRate  int   `json:"completion_rate"` // percent, 0 when no orders
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	cartRepo     repositories.CartRepository
	listingRepo  repositories.ListingRepository
	wishlistRepo repositories.WishlistRepository
	mqClient     *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	listingRepo repositories.ListingRepository,
	wishlistRepo repositories.WishlistRepository,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		listingRepo:  listingRepo,
		wishlistRepo: wishlistRepo,
		mqClient:     mqClient,
	}
}

// Checkout turns the customer's cart into orders, one per cart entry,
// snapshotting the listing price and title at order time. Stock is
// decremented with a conditional update so a checkout can never drive a
// listing's quantity negative. The cart is cleared on success.
func (s *OrderService) Checkout(customerID string) ([]models.Order, error) {
	entries, err := s.cartRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("cart for customer %s is empty", customerID)
	}

	orders := make([]models.Order, 0, len(entries))
	for _, entry := range entries {
		listing, err := s.listingRepo.GetByID(entry.ListingID)
		if err != nil {
			return nil, fmt.Errorf("listing %s not found: %w", entry.ListingID, err)
		}
		if listing.Quantity < entry.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s (requested: %d, available: %d)",
				listing.Title, entry.Quantity, listing.Quantity)
		}

		if err := s.listingRepo.DecrementStock(listing.ID, entry.Quantity); err != nil {
			return nil, err
		}

		order := models.Order{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			FarmerID:   listing.FarmerID,
			ListingID:  listing.ID,
			Title:      listing.Title,
			Category:   listing.Category,
			Quantity:   entry.Quantity,
			UnitPrice:  listing.Price, // Price at the time of order creation
			Total:      listing.Price * float64(entry.Quantity),
			Status:     models.OrderPending,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := s.orderRepo.Create(&order); err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := s.cartRepo.RemoveAll(customerID); err != nil {
		log.Printf("Warning: failed to clear cart for customer %s after checkout: %v", customerID, err)
	}

	// Publish an order-created event per order, best effort
	if s.mqClient != nil {
		for _, order := range orders {
			event := map[string]interface{}{
				"orderID":  order.ID,
				"customer": order.CustomerID,
				"farmer":   order.FarmerID,
				"status":   order.Status,
				"total":    order.Total,
			}
			if err := s.mqClient.PublishJSON(rabbitmq.OrderQueue, event); err != nil {
				log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
			}
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping order event publication.")
	}

	return orders, nil
}

// ListByCustomer retrieves a customer's orders.
func (s *OrderService) ListByCustomer(customerID string) ([]models.Order, error) {
	return s.orderRepo.ListByCustomer(customerID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateStatus updates the status of an existing order. Transitions are
// owned by the farmer/merchant side.
func (s *OrderService) UpdateStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderPending:   true,
		models.OrderConfirmed: true,
		models.OrderShipped:   true,
		models.OrderDelivered: true,
		models.OrderCancelled: true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// Stats computes the customer dashboard numbers. Pending counts every
// order that is neither delivered nor cancelled; completed counts
// delivered orders; the completion rate is 0 when there are no orders.
func (s *OrderService) Stats(customerID string) (*DashboardStats, error) {
	cartCount, err := s.cartRepo.CountByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	wishlistCount, err := s.wishlistRepo.CountByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		CartItems:     cartCount,
		WishlistItems: wishlistCount,
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderDelivered:
			stats.CompletedOrders++
		case models.OrderCancelled:
			// Cancelled orders count toward neither bucket
		default:
			stats.PendingOrders++
		}
	}
	total := stats.PendingOrders + stats.CompletedOrders
	if total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedOrders) / float64(total) * 100))
	}
	return stats, nil
}

package repositories

import (
	"kisansetu/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// ListByCustomer returns a customer's orders, newest first.
	ListByCustomer(customerID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
	// CountDeliveredByFarmer counts a farmer's delivered orders (sales).
	CountDeliveredByFarmer(farmerID string) (int64, error)
	// RecentDeliveredByCustomer returns up to limit most recent delivered
	// orders, the purchase history fed to the recommendation prompt.
	RecentDeliveredByCustomer(customerID string, limit int) ([]models.Order, error)
}

package repositories

import (
	"fmt"

	"kisansetu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListByCustomer retrieves a customer's orders, newest first.
func (r *GORMOrderRepository) ListByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	return nil
}

// CountDeliveredByFarmer counts delivered orders for a farmer.
func (r *GORMOrderRepository) CountDeliveredByFarmer(farmerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).
		Where("farmer_id = ? AND status = ?", farmerID, models.OrderDelivered).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count delivered orders for farmer %s: %w", farmerID, err)
	}
	return count, nil
}

// RecentDeliveredByCustomer returns up to limit most recent delivered orders.
func (r *GORMOrderRepository) RecentDeliveredByCustomer(customerID string, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("customer_id = ? AND status = ?", customerID, models.OrderDelivered).
		Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list delivered orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"kisansetu/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (r *MockOrderRepository) ListByCustomer(customerID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// CountDeliveredByFarmer counts delivered orders for a farmer.
func (r *MockOrderRepository) CountDeliveredByFarmer(farmerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, o := range r.orders {
		if o.FarmerID == farmerID && o.Status == models.OrderDelivered {
			count++
		}
	}
	return count, nil
}

// RecentDeliveredByCustomer returns up to limit most recent delivered orders.
func (r *MockOrderRepository) RecentDeliveredByCustomer(customerID string, limit int) ([]models.Order, error) {
	all, _ := r.ListByCustomer(customerID)
	list := make([]models.Order, 0, limit)
	for _, o := range all {
		if o.Status == models.OrderDelivered {
			list = append(list, o)
			if len(list) == limit {
				break
			}
		}
	}
	return list, nil
}

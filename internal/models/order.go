package models

import "time"

// Order statuses. Transitions are owned by the farmer/merchant side; the
// customer view is read-only.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order represents a single listing purchased by a customer. Title,
// category and unit price are snapshotted at checkout time so later
// listing edits do not rewrite order history.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string    `json:"customer_id" gorm:"index;type:varchar(36)"`
	FarmerID   string    `json:"farmer_id" gorm:"index;type:varchar(36)"`
	ListingID  string    `json:"listing_id" gorm:"type:varchar(36)"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"` // Price at the time of order
	Total      float64   `json:"total"`
	Status     string    `json:"status" gorm:"type:varchar(20);index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package models

import "time"

// Rating is an append-only review of a farmer left by a customer.
// Averages are computed at read time, never stored.
type Rating struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FarmerID   string    `json:"farmer_id" gorm:"index;type:varchar(36)" validate:"required"`
	CustomerID string    `json:"customer_id" gorm:"type:varchar(36)" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Review     string    `json:"review,omitempty" validate:"omitempty,max=500"`
	CreatedAt  time.Time `json:"created_at"`
}

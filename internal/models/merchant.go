package models

import "gorm.io/gorm"

// Merchant is an agri-supply business that can receive disease alerts.
// Coordinates are optional; a merchant without them is assumed reachable
// regardless of radius.
type Merchant struct {
	ID       string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Category string   `json:"category,omitempty"`
	gorm.Model
}

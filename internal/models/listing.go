package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing statuses. Listings are never hard-deleted; deactivation flips
// the status to inactive.
const (
	ListingActive   = "active"
	ListingInactive = "inactive"
	ListingSoldOut  = "sold_out"
)

// Listing represents a produce listing published by a farmer.
type Listing struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FarmerID      string     `json:"farmer_id" gorm:"index;type:varchar(36)" validate:"required"`
	Title         string     `json:"title" validate:"required,min=3,max=100"`
	Description   string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Category      string     `json:"category" validate:"required,max=50"`
	Price         float64    `json:"price" validate:"gte=0"`
	Quantity      int        `json:"quantity" validate:"gte=0"`
	Unit          string     `json:"unit" validate:"required,max=20"`
	ImageURL      string     `json:"image_url,omitempty"`
	Location      string     `json:"location,omitempty" gorm:"type:varchar(100)"`
	Variety       string     `json:"variety,omitempty" gorm:"type:varchar(100)"`
	FarmingMethod string     `json:"farming_method,omitempty" validate:"omitempty,oneof=organic conventional hydroponic"`
	HarvestDate   *time.Time `json:"harvest_date,omitempty"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:active;index"`
	gorm.Model
}

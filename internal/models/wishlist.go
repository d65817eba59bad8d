package models

import "gorm.io/gorm"

// WishlistEntry marks either a single listing or a whole farmer as
// favorited by a customer. Exactly one of ListingID/FarmerID is set;
// the pair (customer, target) is unique.
type WishlistEntry struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string  `json:"customer_id" gorm:"index;type:varchar(36)" validate:"required"`
	ListingID  *string `json:"listing_id,omitempty" gorm:"type:varchar(36)"`
	FarmerID   *string `json:"farmer_id,omitempty" gorm:"type:varchar(36)"`
	gorm.Model
}

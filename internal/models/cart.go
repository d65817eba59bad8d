package models

import "gorm.io/gorm"

// CartEntry represents a listing held in a customer's cart. An entry is
// unique per (customer, listing); adding an already-carted listing
// increments the quantity instead of creating a second row. Quantity is
// always >= 1; dropping to zero removes the entry.
type CartEntry struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string  `json:"customer_id" gorm:"uniqueIndex:idx_cart_customer_listing;type:varchar(36)" validate:"required"`
	ListingID  string  `json:"listing_id" gorm:"uniqueIndex:idx_cart_customer_listing;type:varchar(36)" validate:"required"`
	Quantity   int     `json:"quantity" validate:"gte=1"`
	Listing    Listing `json:"listing" gorm:"foreignKey:ListingID;references:ID"`
	gorm.Model
}

package models

import "gorm.io/gorm"

// Roles a profile can hold. A profile is created with exactly one role
// and keeps it for its lifetime.
const (
	RoleFarmer   = "farmer"
	RoleMerchant = "merchant"
	RoleCustomer = "customer"
)

// Theme modes persisted per profile.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Profile represents a user of the marketplace.
type Profile struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FullName   string `json:"full_name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20)" validate:"required,oneof=farmer merchant customer"`
	City       string `json:"city,omitempty" gorm:"type:varchar(100)"`
	State      string `json:"state,omitempty" gorm:"type:varchar(100)"`
	ThemeMode  string `json:"theme_mode" gorm:"type:varchar(10);default:dark"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

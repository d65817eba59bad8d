package models

import "time"

// Recommendation priorities returned by the AI gateway.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a single crop suggestion for a customer.
type Recommendation struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Reason    string `json:"reason"`
	ListingID string `json:"listing_id,omitempty"`
	Priority  string `json:"priority"`
}

// RecommendationSet is the structured reply produced per customer.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	SeasonalTip     string           `json:"seasonal_tip"`
}

// CustomerPreference stores the last recommendation set generated for a
// customer, upserted by customer id. The set is serialized to JSON so
// the schema can evolve without migrations.
type CustomerPreference struct {
	CustomerID               string    `json:"customer_id" gorm:"primaryKey;type:varchar(36)"`
	LastRecommendations      string    `json:"last_recommendations" gorm:"type:text"`
	RecommendationsUpdatedAt time.Time `json:"recommendations_updated_at"`
}

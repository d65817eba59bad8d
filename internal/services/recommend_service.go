package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/pkg/aigateway"
)

const (
	recommendHistoryLimit  = 20
	recommendListingsLimit = 50

	recommendSystemPrompt = "You are an agricultural recommendation assistant. " +
		"Provide personalized crop recommendations based on customer history, " +
		"seasonality, and availability. Return structured recommendations."
)

// GatewayClient is the slice of the AI gateway the recommendation flow
// needs; satisfied by *aigateway.Client.
type GatewayClient interface {
	ToolCall(ctx context.Context, systemPrompt, userPrompt string, tool aigateway.Tool) (json.RawMessage, error)
}

// RecommendService builds per-customer crop recommendations by forwarding
// purchase history and active listings to an external model.
type RecommendService struct {
	orderRepo   repositories.OrderRepository
	listingRepo repositories.ListingRepository
	prefRepo    repositories.PreferenceRepository
	gateway     GatewayClient
}

// NewRecommendService creates a new RecommendService.
func NewRecommendService(
	orderRepo repositories.OrderRepository,
	listingRepo repositories.ListingRepository,
	prefRepo repositories.PreferenceRepository,
	gateway GatewayClient,
) *RecommendService {
	return &RecommendService{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		prefRepo:    prefRepo,
		gateway:     gateway,
	}
}

// recommendationTool is the schema-constrained reply requested from the model.
func recommendationTool() aigateway.Tool {
	return aigateway.Tool{
		Name:        "provide_recommendations",
		Description: "Return personalized crop recommendations",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"recommendations": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"title":      map[string]interface{}{"type": "string"},
							"category":   map[string]interface{}{"type": "string"},
							"reason":     map[string]interface{}{"type": "string"},
							"listing_id": map[string]interface{}{"type": "string"},
							"priority": map[string]interface{}{
								"type": "string",
								"enum": []string{models.PriorityHigh, models.PriorityMedium, models.PriorityLow},
							},
						},
						"required": []string{"title", "category", "reason", "priority"},
					},
				},
				"seasonal_tip": map[string]interface{}{"type": "string"},
			},
			"required": []string{"recommendations", "seasonal_tip"},
		},
	}
}

// Recommend gathers the customer's delivered purchase history and the
// current active listings, asks the model for up to 5 recommendations,
// and persists the result keyed by customer id. A malformed model reply
// degrades to an empty recommendation set instead of failing the request;
// gateway rate-limit and payment errors pass through to the caller.
func (s *RecommendService) Recommend(ctx context.Context, customerID string) (*models.RecommendationSet, error) {
	history, err := s.orderRepo.RecentDeliveredByCustomer(customerID, recommendHistoryLimit)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.ListActive()
	if err != nil {
		return nil, err
	}
	if len(listings) > recommendListingsLimit {
		listings = listings[:recommendListingsLimit]
	}

	prompt := BuildRecommendationPrompt(history, listings, time.Now().Month().String())

	args, err := s.gateway.ToolCall(ctx, recommendSystemPrompt, prompt, recommendationTool())
	if err != nil {
		return nil, err
	}

	result := &models.RecommendationSet{Recommendations: []models.Recommendation{}}
	if unmarshalErr := json.Unmarshal(args, result); unmarshalErr != nil {
		log.Printf("Failed to parse AI response for customer %s: %v", customerID, unmarshalErr)
		result = &models.RecommendationSet{Recommendations: []models.Recommendation{}}
	}
	if result.Recommendations == nil {
		result.Recommendations = []models.Recommendation{}
	}

	if err := s.savePreferences(customerID, result); err != nil {
		log.Printf("Warning: failed to save recommendations for customer %s: %v", customerID, err)
	}

	return result, nil
}

func (s *RecommendService) savePreferences(customerID string, set *models.RecommendationSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	return s.prefRepo.Upsert(&models.CustomerPreference{
		CustomerID:               customerID,
		LastRecommendations:      string(payload),
		RecommendationsUpdatedAt: time.Now(),
	})
}

// Latest returns the stored recommendation snapshot for a customer.
func (s *RecommendService) Latest(customerID string) (*models.RecommendationSet, error) {
	pref, err := s.prefRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	set := &models.RecommendationSet{Recommendations: []models.Recommendation{}}
	if err := json.Unmarshal([]byte(pref.LastRecommendations), set); err != nil {
		return nil, fmt.Errorf("stored recommendations for customer %s are corrupt: %w", customerID, err)
	}
	return set, nil
}

// BuildRecommendationPrompt embeds the distinct purchased categories, up
// to 10 distinct purchased titles, the current month, and the available
// listings into the natural-language prompt sent to the model.
func BuildRecommendationPrompt(history []models.Order, listings []models.Listing, month string) string {
	categories := distinctStrings(history, func(o models.Order) string { return o.Category })
	titles := distinctStrings(history, func(o models.Order) string { return o.Title })
	if len(titles) > 10 {
		titles = titles[:10]
	}

	var lines []string
	for _, l := range listings {
		method := l.FarmingMethod
		if method == "" {
			method = "conventional"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s, ₹%g/%s, %s)", l.Title, l.Category, l.Price, l.Unit, method))
	}

	return fmt.Sprintf(`Based on the following customer purchase history and current available produce, suggest 5 personalized crop recommendations.

Customer Purchase History:
- Categories bought: %s
- Items purchased: %s
- Current month: %s (consider seasonal availability)

Available listings:
%s

Provide recommendations that:
1. Match customer preferences based on history
2. Consider seasonal availability for %s
3. Include a mix of their favorites and new discoveries
4. Prioritize organic/sustainable options when available`,
		joinOrNone(categories), joinOrNone(titles), month, joinLinesOrNone(lines), month)
}

func distinctStrings(orders []models.Order, key func(models.Order) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, o := range orders {
		v := key(o)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None yet"
	}
	return strings.Join(values, ", ")
}

func joinLinesOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "\n")
}

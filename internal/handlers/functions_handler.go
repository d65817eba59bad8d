package handlers

import (
	"errors"
	"fmt"
	"log"

	"kisansetu/internal/geo"
	"kisansetu/internal/services"
	"kisansetu/pkg/aigateway"

	"github.com/gofiber/fiber/v2"
)

// FunctionsHandler serves the two standalone function endpoints outside
// the /api/v1 surface. Both reproduce the permissive CORS contract of
// the hosted functions they replace.
type FunctionsHandler struct {
	notifyService    *services.NotifyService
	recommendService *services.RecommendService
}

// NewFunctionsHandler creates a new FunctionsHandler.
func NewFunctionsHandler(notifyService *services.NotifyService, recommendService *services.RecommendService) *FunctionsHandler {
	return &FunctionsHandler{
		notifyService:    notifyService,
		recommendService: recommendService,
	}
}

// RegisterRoutes mounts the function endpoints on the app root. All
// methods are accepted so the handlers themselves can answer OPTIONS
// preflights and reject non-POST with 405.
func (h *FunctionsHandler) RegisterRoutes(app *fiber.App) {
	app.All("/notify-nearby-merchants", h.HandleNotifyNearbyMerchants)
	app.All("/ai-recommendations", h.HandleAIRecommendations)
}

// RegisterCustomerRoutes registers the authenticated recommendation
// snapshot route, gated to the customer role by the caller.
func (h *FunctionsHandler) RegisterCustomerRoutes(router fiber.Router) {
	router.Get("/recommendations/latest", h.HandleLatestRecommendations)
}

// HandleLatestRecommendations returns the stored last recommendation set
// for the caller.
func (h *FunctionsHandler) HandleLatestRecommendations(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	set, err := h.recommendService.Latest(customerID)
	if err != nil {
		log.Printf("Error fetching latest recommendations for customer %s: %v", customerID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No recommendations generated yet",
		})
	}
	return c.JSON(set)
}

func setCORSHeaders(c *fiber.Ctx) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
}

// notifyRequest uses pointers so absent coordinates are distinguishable
// from zero values.
type notifyRequest struct {
	DiseaseName          string `json:"diseaseName"`
	DiseaseDescription   string `json:"diseaseDescription"`
	RecommendedTreatment string `json:"recommendedTreatment"`
	FarmerLocation       *struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"farmerLocation"`
}

// HandleNotifyNearbyMerchants fans a disease report out to merchants
// within radius. Once validation passes the response is always 200 with
// success=true and the number of merchants actually notified.
func (h *FunctionsHandler) HandleNotifyNearbyMerchants(c *fiber.Ctx) error {
	setCORSHeaders(c)

	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in notify-nearby-merchants: %v", r)
			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success":       false,
				"error":         "Internal server error",
				"notifiedCount": 0,
			})
		}
	}()

	var req notifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON body",
		})
	}
	if req.DiseaseName == "" || req.FarmerLocation == nil || req.FarmerLocation.Lat == nil || req.FarmerLocation.Lon == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: diseaseName and farmerLocation with lat/lon",
		})
	}

	alert := services.DiseaseAlert{
		DiseaseName:          req.DiseaseName,
		DiseaseDescription:   req.DiseaseDescription,
		RecommendedTreatment: req.RecommendedTreatment,
		FarmerLocation:       geo.Point{Lat: *req.FarmerLocation.Lat, Lon: *req.FarmerLocation.Lon},
	}

	notified, err := h.notifyService.NotifyNearby(c.Context(), alert)
	if err != nil {
		log.Printf("Error in notify-nearby-merchants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":       false,
			"error":         "Internal server error",
			"notifiedCount": 0,
		})
	}

	message := fmt.Sprintf("Successfully notified %d nearby merchants", notified)
	if notified == 0 {
		message = "No nearby merchants found"
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"notifiedCount": notified,
		"message":       message,
	})
}

// HandleAIRecommendations forwards the customer's purchase context to
// the external model and returns the structured recommendations.
// Gateway rate-limit and payment failures surface verbatim as 429/402;
// everything else is a 500 with the error message.
func (h *FunctionsHandler) HandleAIRecommendations(c *fiber.Ctx) error {
	setCORSHeaders(c)

	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	var req struct {
		CustomerID string `json:"customer_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.CustomerID == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "customer_id is required",
		})
	}

	set, err := h.recommendService.Recommend(c.Context(), req.CustomerID)
	if err != nil {
		log.Printf("Error in ai-recommendations: %v", err)
		if errors.Is(err, aigateway.ErrRateLimited) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded, please try again later.",
			})
		}
		if errors.Is(err, aigateway.ErrPaymentRequired) {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error": "Payment required.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(set)
}

package handlers

import (
	"fmt"
	"log"
	"strings"

	"kisansetu/internal/models"
	"kisansetu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for public farmer profiles and
// ratings.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the farmer profile routes.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/farmers/:id/profile", h.HandleFarmerProfile)
}

// RegisterCustomerRoutes registers the rating route, gated to the
// customer role by the caller.
func (h *ProfileHandler) RegisterCustomerRoutes(router fiber.Router) {
	router.Post("/farmers/:id/ratings", h.HandleRateFarmer)
}

// HandleFarmerProfile returns the aggregated public profile of a farmer.
func (h *ProfileHandler) HandleFarmerProfile(c *fiber.Ctx) error {
	farmerID := c.Params("id")
	profile, err := h.service.FarmerProfile(farmerID)
	if err != nil {
		log.Printf("Error aggregating profile for farmer %s: %v", farmerID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Farmer with ID %s not found", farmerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve farmer profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(profile)
}

// HandleRateFarmer appends a rating of a farmer by the caller.
func (h *ProfileHandler) HandleRateFarmer(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)

	var rating models.Rating
	if err := c.BodyParser(&rating); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	rating.FarmerID = c.Params("id")
	rating.CustomerID = customerID

	if err := h.validate.Struct(rating); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.RateFarmer(&rating); err != nil {
		log.Printf("Error rating farmer %s: %v", rating.FarmerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save rating",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

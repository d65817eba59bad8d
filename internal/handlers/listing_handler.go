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

// ListingHandler handles HTTP requests for marketplace listings.
type ListingHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.CatalogService) *ListingHandler {
	return &ListingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the read-only catalog routes.
func (h *ListingHandler) RegisterRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Get("/", h.HandleBrowse)
	listingRoutes.Get("/:id", h.HandleGetListing)
}

// RegisterFarmerRoutes registers the listing mutation routes, gated to
// the farmer role by the caller.
func (h *ListingHandler) RegisterFarmerRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Post("/", h.HandleCreateListing)
	listingRoutes.Put("/:id", h.HandleUpdateListing)
	listingRoutes.Patch("/:id/status", h.HandleUpdateStatus)
	router.Get("/my-listings", h.HandleMyListings)
}

// HandleBrowse returns the active listings filtered by the marketplace
// query parameters: search, category, sort.
func (h *ListingHandler) HandleBrowse(c *fiber.Ctx) error {
	listings, err := h.service.Browse(c.Query("search"), c.Query("category"), c.Query("sort"))
	if err != nil {
		log.Printf("Error browsing listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listings",
			"error":   err.Error(),
		})
	}
	return c.JSON(listings)
}

// HandleGetListing retrieves a single listing by its ID.
func (h *ListingHandler) HandleGetListing(c *fiber.Ctx) error {
	listingID := c.Params("id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		log.Printf("Error getting listing %s: %v", listingID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Listing with ID %s not found", listingID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listing",
			"error":   err.Error(),
		})
	}
	return c.JSON(listing)
}

// HandleMyListings returns the calling farmer's active listings.
func (h *ListingHandler) HandleMyListings(c *fiber.Ctx) error {
	farmerID, _ := c.Locals("user_id").(string)
	listings, err := h.service.ListByFarmer(farmerID)
	if err != nil {
		log.Printf("Error listing listings for farmer %s: %v", farmerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listings",
			"error":   err.Error(),
		})
	}
	return c.JSON(listings)
}

// HandleCreateListing publishes a new listing owned by the caller.
func (h *ListingHandler) HandleCreateListing(c *fiber.Ctx) error {
	farmerID, _ := c.Locals("user_id").(string)

	var listing models.Listing
	if err := c.BodyParser(&listing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	listing.FarmerID = farmerID

	if err := h.validate.Struct(listing); err != nil {
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

	if err := h.service.CreateListing(&listing); err != nil {
		log.Printf("Error creating listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create listing",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// HandleUpdateListing updates a listing the caller owns.
func (h *ListingHandler) HandleUpdateListing(c *fiber.Ctx) error {
	farmerID, _ := c.Locals("user_id").(string)

	var listing models.Listing
	if err := c.BodyParser(&listing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	listing.ID = c.Params("id")

	if err := h.service.UpdateListing(farmerID, &listing); err != nil {
		log.Printf("Error updating listing %s: %v", listing.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Listing with ID %s not found", listing.ID),
			})
		}
		if strings.Contains(err.Error(), "does not belong") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Listing belongs to another farmer",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update listing",
			"error":   err.Error(),
		})
	}
	return c.JSON(listing)
}

// HandleUpdateStatus flips a listing's status (the soft-delete path).
func (h *ListingHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	farmerID, _ := c.Locals("user_id").(string)
	listingID := c.Params("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetStatus(farmerID, listingID, req.Status); err != nil {
		log.Printf("Error updating listing %s status: %v", listingID, err)
		if strings.Contains(err.Error(), "invalid listing status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Listing with ID %s not found", listingID),
			})
		}
		if strings.Contains(err.Error(), "does not belong") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Listing belongs to another farmer",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update listing status",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Listing %s status updated to %s", listingID, req.Status),
	})
}

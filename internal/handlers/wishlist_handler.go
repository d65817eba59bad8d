package handlers

import (
	"log"
	"strings"

	"kisansetu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the customer wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes, gated to the customer
// role by the caller.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleList)
	wishlistRoutes.Post("/toggle", h.HandleToggle)
}

// HandleList returns the caller's wishlist entries.
func (h *WishlistHandler) HandleList(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	entries, err := h.service.List(customerID)
	if err != nil {
		log.Printf("Error listing wishlist for customer %s: %v", customerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleToggle flips wishlist membership for a listing or a farmer and
// returns the resulting state.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)

	var req struct {
		ListingID string `json:"listing_id"`
		FarmerID  string `json:"farmer_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	favorited, err := h.service.Toggle(customerID, req.ListingID, req.FarmerID)
	if err != nil {
		log.Printf("Error toggling wishlist for customer %s: %v", customerID, err)
		if strings.Contains(err.Error(), "exactly one of") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not toggle wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"favorited": favorited})
}

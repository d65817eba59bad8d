package handlers

import (
	"log"
	"strings"

	"kisansetu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the customer cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes, gated to the customer role by
// the caller.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAdd)
	cartRoutes.Put("/:listingID", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:listingID", h.HandleRemove)
}

// HandleGetCart returns the caller's cart entries.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	entries, err := h.service.GetCart(customerID)
	if err != nil {
		log.Printf("Error getting cart for customer %s: %v", customerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleAdd puts a listing in the cart; adding the same listing again
// increments the quantity of the single existing entry.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)

	var req struct {
		ListingID string `json:"listing_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ListingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "listing_id is required",
		})
	}

	entry, err := h.service.Add(customerID, req.ListingID)
	if err != nil {
		log.Printf("Error adding listing %s to cart: %v", req.ListingID, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "not available") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Listing is not available",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleUpdateQuantity sets an entry's quantity; zero removes the entry.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	listingID := c.Params("listingID")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateQuantity(customerID, listingID, req.Quantity); err != nil {
		log.Printf("Error updating cart quantity for listing %s: %v", listingID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

// HandleRemove deletes a single entry from the cart.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	listingID := c.Params("listingID")

	if err := h.service.Remove(customerID, listingID); err != nil {
		log.Printf("Error removing listing %s from cart: %v", listingID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Removed from cart"})
}

package handlers

import (
	"fmt"
	"log"
	"strings"

	"kisansetu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterCustomerRoutes registers the customer-side order routes.
func (h *OrderHandler) RegisterCustomerRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/stats", h.HandleStats)
	orderRoutes.Post("/checkout", h.HandleCheckout)
}

// RegisterSellerRoutes registers the status-transition route owned by the
// farmer/merchant side.
func (h *OrderHandler) RegisterSellerRoutes(router fiber.Router) {
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves the caller's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	orders, err := h.service.ListByCustomer(customerID)
	if err != nil {
		log.Printf("Error getting orders for customer %s: %v", customerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleStats returns the customer dashboard numbers.
func (h *OrderHandler) HandleStats(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	stats, err := h.service.Stats(customerID)
	if err != nil {
		log.Printf("Error computing stats for customer %s: %v", customerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// HandleCheckout converts the caller's cart into orders.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	customerID, _ := c.Locals("user_id").(string)
	orders, err := h.service.Checkout(customerID)
	if err != nil {
		log.Printf("Error during checkout for customer %s: %v", customerID, err)
		if strings.Contains(err.Error(), "insufficient stock") || strings.Contains(err.Error(), "is empty") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Checkout failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(orders)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.service.UpdateStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

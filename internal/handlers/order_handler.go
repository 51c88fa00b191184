package handlers

import (
	"fmt"

	"watchstore/internal/middleware"
	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer order routes behind auth.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", h.HandleGetMyOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetMyOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
}

// RegisterAdminRoutes registers order management routes on the admin group.
func (h *OrderHandler) RegisterAdminRoutes(admin fiber.Router) {
	orderRoutes := admin.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetMyOrders lists the signed-in user's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetUserOrders(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return failWith(c, err, "retrieve orders")
	}
	return respond(c, fiber.StatusOK, orders)
}

// HandleGetMyOrder returns one of the signed-in user's orders.
func (h *OrderHandler) HandleGetMyOrder(c *fiber.Ctx) error {
	order, err := h.service.GetUserOrder(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return failWith(c, err, "retrieve order")
	}
	return respond(c, fiber.StatusOK, order)
}

// HandleCreateOrder checks out the signed-in user's cart.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.PlaceOrder(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return failWith(c, err, "create order")
	}
	return respond(c, fiber.StatusCreated, order)
}

// HandleCancelOrder cancels a pending or processing order.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	order, err := h.service.CancelOrder(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return failWith(c, err, "cancel order")
	}
	return respond(c, fiber.StatusOK, order)
}

// HandleDeleteOrder deletes a pending order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOrder(c.UserContext(), middleware.UserID(c), id); err != nil {
		return failWith(c, err, "delete order")
	}
	return respond(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Order %s deleted successfully", id),
	})
}

// HandleGetOrders retrieves all orders for the admin dashboard.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.UserContext())
	if err != nil {
		return failWith(c, err, "retrieve orders")
	}
	return respond(c, fiber.StatusOK, orders)
}

// HandleGetOrderByID retrieves any order for the admin dashboard.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err, "retrieve order")
	}
	return respond(c, fiber.StatusOK, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus moves an order along its fulfillment states.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return failWith(c, err, "update order status")
	}
	return respond(c, fiber.StatusOK, order)
}

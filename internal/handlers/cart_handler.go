package handlers

import (
	"watchstore/internal/middleware"
	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the signed-in user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the cart routes behind auth.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Get("/summary", h.HandleSummary)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,max=99"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

// HandleGetCart lists the cart lines.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.service.GetCart(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return failWith(c, err, "retrieve cart")
	}
	return respond(c, fiber.StatusOK, items)
}

// HandleSummary prices the cart for ?shipping=standard|express (standard by default).
func (h *CartHandler) HandleSummary(c *fiber.Ctx) error {
	tier := models.ShippingType(c.Query("shipping", string(models.ShippingStandard)))
	summary, err := h.service.Summary(c.UserContext(), middleware.UserID(c), tier)
	if err != nil {
		return failWith(c, err, "price cart")
	}
	return respond(c, fiber.StatusOK, summary)
}

// HandleAddItem adds a product to the cart; a missing quantity means one.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req addCartItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.service.AddItem(c.UserContext(), middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return failWith(c, err, "add item to cart")
	}
	return respond(c, fiber.StatusCreated, item)
}

// HandleUpdateItem sets a line's quantity. The quantity is required; zero or less removes
// the line and the response data is null.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req updateCartItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.UpdateQuantity(c.UserContext(), middleware.UserID(c), c.Params("id"), *req.Quantity)
	if err != nil {
		return failWith(c, err, "update cart item")
	}
	return respond(c, fiber.StatusOK, item)
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return failWith(c, err, "remove cart item")
	}
	return respond(c, fiber.StatusOK, fiber.Map{"message": "Item removed from cart"})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(c.UserContext(), middleware.UserID(c)); err != nil {
		return failWith(c, err, "clear cart")
	}
	return respond(c, fiber.StatusOK, fiber.Map{"message": "Cart cleared"})
}

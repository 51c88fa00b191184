package handlers

import (
	"watchstore/internal/middleware"
	"watchstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the signed-in user's wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes registers the wishlist routes behind auth.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	wishlistRoutes := router.Group("/wishlist", auth)
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddItem)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveItem)
	wishlistRoutes.Post("/:productId/move-to-cart", h.HandleMoveToCart)
}

// HandleGetWishlist lists the saved products.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.GetWishlist(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return failWith(c, err, "retrieve wishlist")
	}
	return respond(c, fiber.StatusOK, items)
}

// HandleAddItem saves a product. Saving it again is not an error.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	item, err := h.service.AddItem(c.UserContext(), middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return failWith(c, err, "add to wishlist")
	}
	return respond(c, fiber.StatusCreated, item)
}

// HandleRemoveItem drops a product from the wishlist.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.UserContext(), middleware.UserID(c), c.Params("productId")); err != nil {
		return failWith(c, err, "remove from wishlist")
	}
	return respond(c, fiber.StatusOK, fiber.Map{"message": "Removed from wishlist"})
}

// HandleMoveToCart moves a saved product into the cart.
func (h *WishlistHandler) HandleMoveToCart(c *fiber.Ctx) error {
	item, err := h.service.MoveToCart(c.UserContext(), middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return failWith(c, err, "move wishlist item to cart")
	}
	return respond(c, fiber.StatusOK, item)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"watchstore/internal/models"
	"watchstore/internal/pricing"
	"watchstore/internal/repositories"
)

// CartService manages a user's cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// CartSummary is the cart with its checkout totals for one shipping tier.
type CartSummary struct {
	Items        []models.CartItem   `json:"items"`
	ShippingType models.ShippingType `json:"shipping_type"`
	Totals       pricing.Totals      `json:"totals"`
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart lists the user's cart.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

// AddItem puts quantity units of a product in the cart. A product already in the cart
// has its quantity increased; a new line snapshots the product's current price.
// No line may exceed models.MaxCartQuantity.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 || quantity > models.MaxCartQuantity {
		return nil, ErrInvalidQuantity
	}

	existing, err := s.cartRepo.GetByProduct(ctx, userID, productID)
	switch {
	case err == nil:
		if quantity > models.MaxCartQuantity-existing.Quantity {
			return nil, ErrInvalidQuantity
		}
		existing.Quantity += quantity
		if err := s.cartRepo.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return existing, nil
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Brand:     product.Brand,
		Model:     product.Model,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity changes a line's quantity. A quantity of zero or less removes the line
// and returns a nil item.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, s.cartRepo.Delete(ctx, userID, itemID)
	}
	if quantity > models.MaxCartQuantity {
		return nil, ErrInvalidQuantity
	}
	if err := s.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(ctx, userID, itemID)
}

// RemoveItem deletes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	return s.cartRepo.Delete(ctx, userID, itemID)
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.ClearByUser(ctx, userID)
}

// Summary prices the cart for a shipping tier.
func (s *CartService) Summary(ctx context.Context, userID string, tier models.ShippingType) (*CartSummary, error) {
	if tier != models.ShippingStandard && tier != models.ShippingExpress {
		return nil, fmt.Errorf("%w: unknown shipping type %q", ErrValidation, tier)
	}
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CartSummary{
		Items:        items,
		ShippingType: tier,
		Totals:       pricing.Calculate(pricing.CartLines(items), tier),
	}, nil
}

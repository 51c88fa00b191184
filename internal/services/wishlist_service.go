package services

import (
	"context"
	"errors"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// WishlistService manages the products a user saved for later.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
	carts        *CartService
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository, carts *CartService) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo, carts: carts}
}

// GetWishlist lists the user's saved products.
func (s *WishlistService) GetWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(ctx, userID)
}

// AddItem saves a product. Saving a product twice returns the existing entry.
func (s *WishlistService) AddItem(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	existing, err := s.wishlistRepo.Get(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: product.ID,
		Brand:     product.Brand,
		Model:     product.Model,
		Price:     product.Price,
		Image:     product.Image,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem drops a product from the wishlist.
func (s *WishlistService) RemoveItem(ctx context.Context, userID, productID string) error {
	return s.wishlistRepo.Delete(ctx, userID, productID)
}

// MoveToCart adds one unit of a saved product to the cart and drops it from the wishlist.
func (s *WishlistService) MoveToCart(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	if _, err := s.wishlistRepo.Get(ctx, userID, productID); err != nil {
		return nil, err
	}
	item, err := s.carts.AddItem(ctx, userID, productID, 1)
	if err != nil {
		return nil, err
	}
	if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
		return nil, err
	}
	return item, nil
}

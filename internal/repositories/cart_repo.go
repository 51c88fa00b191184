package repositories

import (
	"context"

	"watchstore/internal/models"
)

// CartRepository defines the interface for cart data access. Every operation is
// scoped to the owning user.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	GetByID(ctx context.Context, userID, id string) (*models.CartItem, error)
	GetByProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, id string, quantity int) error
	Delete(ctx context.Context, userID, id string) error
	ClearByUser(ctx context.Context, userID string) error
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"watchstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// ListByUser returns the user's cart in the order items were added.
func (r *GORMCartRepository) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByID retrieves a cart line owned by userID.
func (r *GORMCartRepository) GetByID(ctx context.Context, userID, id string) (*models.CartItem, error) {
	return r.first(ctx, "id = ? AND user_id = ?", id, userID)
}

// GetByProduct retrieves the user's cart line for a product.
func (r *GORMCartRepository) GetByProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	return r.first(ctx, "user_id = ? AND product_id = ?", userID, productID)
}

func (r *GORMCartRepository) first(ctx context.Context, query string, args ...interface{}) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).Where(query, args...).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &item, nil
}

// Create adds a line to the cart.
func (r *GORMCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of a cart line. Callers remove the line instead of
// writing a quantity below one.
func (r *GORMCartRepository) UpdateQuantity(ctx context.Context, userID, id string, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s for update: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes one line from the cart.
func (r *GORMCartRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// ClearByUser empties the user's cart. Clearing an empty cart is not an error.
func (r *GORMCartRepository) ClearByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}

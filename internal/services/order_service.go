package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"watchstore/internal/models"
	"watchstore/internal/pricing"
	"watchstore/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CheckoutRequest carries the shipping and payment choices made at checkout.
type CheckoutRequest struct {
	models.ShippingInfo
	PaymentMethod string              `json:"payment_method" validate:"required"`
	ShippingType  models.ShippingType `json:"shipping_type" validate:"required,oneof=standard express"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	ranking   repositories.BestSellerRanking
	publisher EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewOrderService creates a new OrderService. ranking and publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, ranking repositories.BestSellerRanking, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		ranking:   ranking,
		publisher: publisher,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// PlaceOrder turns the user's cart into a pending order and empties the cart.
// Nothing is written unless the request is complete and the cart has items.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req CheckoutRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	cart, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart))
	for _, c := range cart {
		items = append(items, c.OrderItem())
	}
	totals := pricing.Calculate(pricing.CartLines(cart), req.ShippingType)

	now := s.now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		ShippingFee:     totals.Shipping,
		TotalAmount:     totals.Total,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.Address,
		City:            req.City,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
		ShippingType:    req.ShippingType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.CreateFromCart(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if s.ranking != nil {
		if err := s.ranking.Record(ctx, order.Items); err != nil {
			log.Printf("Warning: failed to record best sellers for order %s: %v", order.ID, err)
		}
	}
	publishOrderEvent(s.publisher, EventOrderCreated, order, now)

	return order, nil
}

// GetUserOrders returns the user's order history.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetUserOrder returns one of the user's orders. Orders of other users are reported as
// not found.
func (s *OrderService) GetUserOrder(ctx context.Context, userID, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return order, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// UpdateOrderStatus moves an order to a new status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid order status: %s", ErrValidation, status)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, order, status); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder cancels one of the user's orders while it is still pending or processing.
func (s *OrderService) CancelOrder(ctx context.Context, userID, id string) (*models.Order, error) {
	order, err := s.GetUserOrder(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("order %s is %s: %w", id, order.Status, ErrOrderNotCancellable)
	}
	if err := s.transition(ctx, order, models.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes one of the user's orders while it is pending.
func (s *OrderService) DeleteOrder(ctx context.Context, userID, id string) error {
	order, err := s.GetUserOrder(ctx, userID, id)
	if err != nil {
		return err
	}
	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("order %s is %s: %w", id, order.Status, ErrOrderNotDeletable)
	}
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) transition(ctx context.Context, order *models.Order, next models.OrderStatus) error {
	if !order.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	now := s.now()
	switch next {
	case models.OrderStatusShipped:
		order.ShippedAt = &now
	case models.OrderStatusDelivered:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
		order.DeliveredAt = &now
	}
	order.Status = next
	order.UpdatedAt = now

	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", order.ID, err)
	}

	publishOrderEvent(s.publisher, EventOrderStatusUpdated, order, now)
	return nil
}

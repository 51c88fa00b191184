package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// OrderMailer sends order e-mails to customers.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, to string, order models.Order) error
	SendOrderStatusUpdate(ctx context.Context, to string, order models.Order) error
}

// NotificationService reacts to order events by e-mailing the customer.
type NotificationService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	mailer    OrderMailer
}

// NewNotificationService creates a new NotificationService. A nil mailer disables e-mails.
func NewNotificationService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, mailer OrderMailer) *NotificationService {
	return &NotificationService{orderRepo: orderRepo, userRepo: userRepo, mailer: mailer}
}

// HandleOrderEvent processes one message from the order queue. Malformed messages are
// rejected with an error; events for orders that no longer exist are dropped.
func (s *NotificationService) HandleOrderEvent(ctx context.Context, body []byte) error {
	var event OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode order event: %w", err)
	}
	if s.mailer == nil {
		log.Printf("Mailer is not configured. Skipping %s notification for order %s.", event.Event, event.OrderID)
		return nil
	}

	order, err := s.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		log.Printf("Dropping %s event for order %s: %v", event.Event, event.OrderID, err)
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		log.Printf("Dropping %s event for order %s: %v", event.Event, event.OrderID, err)
		return nil
	}

	switch event.Event {
	case EventOrderCreated:
		return s.mailer.SendOrderConfirmation(ctx, user.Email, *order)
	case EventOrderStatusUpdated:
		return s.mailer.SendOrderStatusUpdate(ctx, user.Email, *order)
	default:
		log.Printf("Ignoring unknown order event %q", event.Event)
		return nil
	}
}

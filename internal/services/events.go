package services

import (
	"encoding/json"
	"log"
	"time"

	"watchstore/internal/models"
)

const (
	OrderExchange           = "orders"
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// EventPublisher sends a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderEvent is the message published when an order is placed or changes status.
type OrderEvent struct {
	Event      string             `json:"event"`
	OrderID    string             `json:"order_id"`
	UserID     string             `json:"user_id"`
	Status     models.OrderStatus `json:"status"`
	Total      float64            `json:"total"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// publishOrderEvent is best-effort: a broker failure never fails the request.
func publishOrderEvent(publisher EventPublisher, event string, order *models.Order, at time.Time) {
	if publisher == nil {
		log.Printf("Event publisher is not configured. Skipping %s for order %s.", event, order.ID)
		return
	}

	body, err := json.Marshal(OrderEvent{
		Event:      event,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		Total:      order.TotalAmount,
		OccurredAt: at,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", event, order.ID, err)
		return
	}

	if err := publisher.Publish(OrderExchange, event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", event, order.ID, err)
		return
	}
	log.Printf("Published %s event for order %s", event, order.ID)
}

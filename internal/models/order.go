package models

import "time"

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// ShippingType selects the delivery tier used for pricing.
type ShippingType string

const (
	ShippingStandard ShippingType = "standard"
	ShippingExpress  ShippingType = "express"
)

// fulfillmentRank orders the forward chain. Statuses off the chain have no rank.
var fulfillmentRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusRefunded
}

// Cancellable reports whether a customer may still cancel an order in status s.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// CanTransition reports whether an order may move from s to next.
// The fulfillment chain only moves forward; cancellation is allowed until the order ships
// and a refund from any non-terminal state.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() || s == next {
		return false
	}
	switch next {
	case OrderStatusCancelled:
		return s.Cancellable()
	case OrderStatusRefunded:
		return true
	}
	from, ok := fulfillmentRank[s]
	if !ok {
		return false
	}
	return fulfillmentRank[next] > from
}

// OrderItem is a snapshot of a purchased product taken at checkout.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	ImageURL  string  `json:"image_url"`
	Price     float64 `json:"price"` // Price at the time of order
	Quantity  int     `json:"quantity"`
}

// ShippingInfo holds the delivery details collected at checkout.
type ShippingInfo struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

// Order represents a customer order.
type Order struct {
	ID              string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string       `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem  `json:"items" gorm:"type:text;serializer:json"`
	Subtotal        float64      `json:"subtotal"`
	Tax             float64      `json:"tax"`
	ShippingFee     float64      `json:"shipping_fee"`
	TotalAmount     float64      `json:"total_amount"`
	Status          OrderStatus  `json:"status" gorm:"index;type:varchar(20)"`
	ShippingAddress string       `json:"shipping_address"`
	City            string       `json:"city"`
	PostalCode      string       `json:"postal_code"`
	Country         string       `json:"country"`
	Phone           string       `json:"phone"`
	PaymentMethod   string       `json:"payment_method"`
	ShippingType    ShippingType `json:"shipping_type" gorm:"type:varchar(20)"`
	ShippedAt       *time.Time   `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time   `json:"delivered_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

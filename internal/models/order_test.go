package models_test

import (
	"testing"

	"watchstore/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		allowed  bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusPending, models.OrderStatusShipped, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{models.OrderStatusShipped, models.OrderStatusRefunded, true},
		{models.OrderStatusPending, models.OrderStatusRefunded, true},

		{models.OrderStatusShipped, models.OrderStatusProcessing, false},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusRefunded, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusRefunded, models.OrderStatusProcessing, false},
		{models.OrderStatusPending, models.OrderStatusPending, false},
		{models.OrderStatusPending, models.OrderStatus("lost"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Cancellable(t *testing.T) {
	assert.True(t, models.OrderStatusPending.Cancellable())
	assert.True(t, models.OrderStatusProcessing.Cancellable())
	assert.False(t, models.OrderStatusShipped.Cancellable())
	assert.False(t, models.OrderStatusDelivered.Cancellable())
}

func TestCartItem_OrderItem(t *testing.T) {
	item := models.CartItem{ProductID: "p1", Brand: "Rolex", Model: "Submariner", Price: 9100, Image: "sub.jpg", Quantity: 2}
	snap := item.OrderItem()

	assert.Equal(t, "Rolex Submariner", snap.Name)
	assert.Equal(t, "sub.jpg", snap.ImageURL)
	assert.Equal(t, 9100.0, snap.Price)
	assert.Equal(t, 2, snap.Quantity)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPlaced, OrderStatusInPrep))
	assert.True(t, CanTransition(OrderStatusPlaced, OrderStatusCancelled))
	assert.True(t, CanTransition(OrderStatusInPrep, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusInPrep, OrderStatusCancelled))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusCompleted))

	// Cancellation closes once the food is staged.
	assert.False(t, CanTransition(OrderStatusReady, OrderStatusCancelled))

	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		assert.Empty(t, NextStatuses(terminal))
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPlaced, OrderStatusInPrep, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus(OrderStatus("SHIPPED")))
	assert.False(t, ValidOrderStatus(OrderStatus("placed")))
}

func TestStatusViews(t *testing.T) {
	assert.Equal(t, "in_prep", OrderStatusInPrep.CustomerView())
	assert.Equal(t, "pending", DeliveryStatusPending.DriverView())
}

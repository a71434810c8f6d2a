package domain

import (
	"strings"
	"time"
)

// OrderStatus enumerates canonical order states.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusInPrep    OrderStatus = "IN_PREP"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderType distinguishes dine-in from delivery orders. Set once at checkout
// from whether a delivery address was supplied, immutable afterwards.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Order is the aggregate for a placed customer order.
type Order struct {
	ID              string
	ReferenceKey    string
	RestaurantID    string
	CustomerID      string
	Type            OrderType
	Status          OrderStatus
	DeliveryAddress *string
	TotalAmount     float64
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a priced line item, snapshotted at checkout.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	UnitPrice  float64
	Quantity   int
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusInPrep, OrderStatusCancelled},
	OrderStatusInPrep:    {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// ValidOrderStatus reports whether the value belongs to the canonical vocabulary.
func ValidOrderStatus(status OrderStatus) bool {
	_, ok := orderTransitions[status]
	return ok
}

// CanTransition reports whether an order may move from current to next.
// Cancellation is only reachable before the food is staged.
func CanTransition(current, next OrderStatus) bool {
	for _, candidate := range orderTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal successors of a status.
func NextStatuses(current OrderStatus) []OrderStatus {
	return append([]OrderStatus{}, orderTransitions[current]...)
}

// CustomerView projects the canonical status into the customer-facing shape.
func (s OrderStatus) CustomerView() string {
	return strings.ToLower(string(s))
}

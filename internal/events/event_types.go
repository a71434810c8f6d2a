package events

import (
	"time"

	"github.com/smartbite/servesoft/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced        EventType = "order_placed"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventDeliveryPending    EventType = "delivery_pending"
	EventDeliveryClaimed    EventType = "delivery_claimed"
	EventDeliveryCompleted  EventType = "delivery_completed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	CustomerID *string `json:"customer_id,omitempty"`
	StaffID    *string `json:"staff_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	RestaurantID string           `json:"restaurant_id"`
	OrderType    domain.OrderType `json:"order_type"`
	TotalAmount  float64          `json:"total_amount"`
	ItemCount    int              `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// DeliveryPendingPayload payload.
type DeliveryPendingPayload struct {
	DeliveryID string `json:"delivery_id"`
	Address    string `json:"address"`
}

// DeliveryClaimedPayload payload.
type DeliveryClaimedPayload struct {
	DeliveryID   string `json:"delivery_id"`
	AgentStaffID string `json:"agent_staff_id"`
}

// DeliveryCompletedPayload payload.
type DeliveryCompletedPayload struct {
	DeliveryID   string `json:"delivery_id"`
	AgentStaffID string `json:"agent_staff_id"`
}

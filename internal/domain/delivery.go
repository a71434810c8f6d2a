package domain

import (
	"strings"
	"time"
)

// DeliveryStatus enumerates canonical delivery states.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusAccepted  DeliveryStatus = "ACCEPTED"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
)

// Delivery exists only for DELIVERY orders, at most one per order. It is
// owned by no agent until the claim succeeds, then stays bound to the
// accepting agent's staff id for its remaining lifetime.
type Delivery struct {
	ID           string
	OrderID      string
	Status       DeliveryStatus
	AgentStaffID *string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DriverView projects the canonical status into the driver-facing shape.
func (s DeliveryStatus) DriverView() string {
	return strings.ToLower(string(s))
}

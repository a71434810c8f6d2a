package domain

import "time"

// StaffStatus controls whether a staff row participates in role resolution.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "Active"
	StaffStatusInactive StaffStatus = "Inactive"
)

// StaffProfile ties a user to a restaurant. A staff row may be refined into
// at most one specialization (manager or delivery agent); without one it
// resolves as plain staff carrying its declared title.
type StaffProfile struct {
	ID           string
	UserID       string
	RestaurantID string
	Title        string
	Status       StaffStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ManagerRole is the manager specialization of a staff row.
type ManagerRole struct {
	ID      string
	StaffID string
}

// DeliveryAgent is the delivery specialization of a staff row.
type DeliveryAgent struct {
	ID      string
	StaffID string
}

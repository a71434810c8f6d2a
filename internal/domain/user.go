package domain

import "time"

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the single identity row shared by every persona.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerProfile marks a user as a customer.
type CustomerProfile struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// AdminProfile marks a user as a platform administrator.
type AdminProfile struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

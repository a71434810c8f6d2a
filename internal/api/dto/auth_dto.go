package dto

import (
	"time"

	"github.com/smartbite/servesoft/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public user shape.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// RoleGrantResponse is one derived capability.
type RoleGrantResponse struct {
	Kind         domain.RoleKind `json:"kind"`
	RoleID       string          `json:"role_id"`
	StaffID      string          `json:"staff_id,omitempty"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	StaffTitle   string          `json:"staff_title,omitempty"`
}

// NewUserResponse maps a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

// NewRoleGrantResponses maps a grant set.
func NewRoleGrantResponses(grants domain.GrantSet) []RoleGrantResponse {
	result := make([]RoleGrantResponse, 0, len(grants))
	for _, grant := range grants {
		result = append(result, RoleGrantResponse{
			Kind:         grant.Kind,
			RoleID:       grant.RoleID,
			StaffID:      grant.StaffID,
			RestaurantID: grant.RestaurantID,
			StaffTitle:   grant.StaffTitle,
		})
	}
	return result
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/service"
)

// AdminHandler exposes the platform oversight surface.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// ListUsers GET /admin/users: every account with its resolved role kinds.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit := parseIntQuery(c, "limit", 100)
	offset := parseIntQuery(c, "offset", 0)

	users, err := h.admin.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	type adminUserResponse struct {
		User  dto.UserResponse  `json:"user"`
		Roles []domain.RoleKind `json:"roles"`
	}

	result := make([]adminUserResponse, 0, len(users))
	for i := range users {
		result = append(result, adminUserResponse{
			User:  dto.NewUserResponse(&users[i].User),
			Roles: users[i].Kinds,
		})
	}
	return c.JSON(fiber.Map{"data": result})
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/auth"
	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	"github.com/smartbite/servesoft/internal/service"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// ManagerHandler exposes the restaurant-side order board. All routes sit
// behind the manager gate; the grant pins the manager to one restaurant.
type ManagerHandler struct {
	orders *service.OrderService
}

// NewManagerHandler constructs handler.
func NewManagerHandler(orderService *service.OrderService) *ManagerHandler {
	return &ManagerHandler{orders: orderService}
}

// ListOrders GET /manager/orders: orders for the manager's restaurant,
// optionally filtered by status and type.
func (h *ManagerHandler) ListOrders(c *fiber.Ctx) error {
	grant, err := managerGrantFromContext(c)
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !domain.ValidOrderStatus(status) {
			return apperrors.NewValidationError("unknown order status", map[string]any{"status": raw})
		}
		filter.Statuses = []domain.OrderStatus{status}
	}
	if raw := c.Query("type"); raw != "" {
		orderType := domain.OrderType(raw)
		filter.Type = &orderType
	}

	orders, err := h.orders.ListRestaurantOrders(c.Context(), grant.RestaurantID, filter)
	if err != nil {
		return err
	}

	result := make([]dto.ManagerOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, dto.NewManagerOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// UpdateOrderStatus PATCH /manager/orders/:id/status: drives the order state
// machine. Flipping a DELIVERY order to READY also creates its PENDING
// delivery task.
func (h *ManagerHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.UpdateOrderStatus(c.Context(), grants, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewManagerOrderResponse(order)})
}

func managerGrantFromContext(c *fiber.Ctx) (domain.RoleGrant, error) {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return domain.RoleGrant{}, apperrors.NewUnauthenticated("authentication required")
	}
	grant, ok := grants.Find(domain.RoleManager)
	if !ok {
		return domain.RoleGrant{}, apperrors.NewForbidden("manager role required", map[string]any{
			"required": domain.RoleManager,
			"held":     grants.Kinds(),
		})
	}
	return grant, nil
}

func parseIntQuery(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

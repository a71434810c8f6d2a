package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/auth"
	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	"github.com/smartbite/servesoft/internal/service"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// DriverHandler exposes the delivery agent surface: the unclaimed pool, the
// agent's own tasks, and the accept/complete transitions.
type DriverHandler struct {
	deliveries *service.DeliveryService
}

// NewDriverHandler constructs handler.
func NewDriverHandler(deliveryService *service.DeliveryService) *DriverHandler {
	return &DriverHandler{deliveries: deliveryService}
}

// ListPending GET /driver/deliveries/pending: the shared unclaimed pool.
func (h *DriverHandler) ListPending(c *fiber.Ctx) error {
	if _, err := driverGrantFromContext(c); err != nil {
		return err
	}

	var restaurantID *string
	if raw := c.Query("restaurant_id"); raw != "" {
		restaurantID = &raw
	}

	summaries, err := h.deliveries.ListPending(c.Context(), restaurantID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": deliveryResponses(summaries)})
}

// ListMine GET /driver/deliveries: tasks assigned to the caller.
func (h *DriverHandler) ListMine(c *fiber.Ctx) error {
	grant, err := driverGrantFromContext(c)
	if err != nil {
		return err
	}

	summaries, err := h.deliveries.ListForAgent(c.Context(), grant.StaffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": deliveryResponses(summaries)})
}

// Accept POST /driver/deliveries/:id/accept: claims a pending task. Exactly
// one concurrent caller wins; the rest get ALREADY_CLAIMED.
func (h *DriverHandler) Accept(c *fiber.Ctx) error {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	delivery, err := h.deliveries.Accept(c.Context(), grants, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDeliveryResponse(delivery)})
}

// Complete POST /driver/deliveries/:id/complete.
func (h *DriverHandler) Complete(c *fiber.Ctx) error {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	delivery, err := h.deliveries.Complete(c.Context(), grants, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDeliveryResponse(delivery)})
}

func driverGrantFromContext(c *fiber.Ctx) (domain.RoleGrant, error) {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return domain.RoleGrant{}, apperrors.NewUnauthenticated("authentication required")
	}
	grant, ok := grants.Find(domain.RoleDriver)
	if !ok {
		return domain.RoleGrant{}, apperrors.NewForbidden("driver role required", map[string]any{
			"required": domain.RoleDriver,
			"held":     grants.Kinds(),
		})
	}
	return grant, nil
}

func deliveryResponses(summaries []repository.DeliverySummary) []dto.DeliveryResponse {
	result := make([]dto.DeliveryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, dto.NewDeliverySummaryResponse(summary))
	}
	return result
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/auth"
	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/service"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// CartHandler exposes the customer cart surface. Every route sits behind the
// customer gate, so the grant carries the customer profile id.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{carts: cartService}
}

// List GET /cart.
func (h *CartHandler) List(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}
	items, err := h.carts.ListItems(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCartResponse(items)})
}

// AddItem POST /cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.MenuItemID == "" {
		return apperrors.NewValidationError("menu_item_id required", nil)
	}

	item, err := h.carts.AddItem(c.Context(), customerID, req.MenuItemID, req.Quantity)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CartItemResponse{
		ID:         item.ID,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		UnitPrice:  item.UnitPrice,
		Quantity:   item.Quantity,
	}})
}

// RemoveItem DELETE /cart/items/:id.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}
	if err := h.carts.RemoveItem(c.Context(), customerID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Clear DELETE /cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}
	if err := h.carts.Clear(c.Context(), customerID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// customerIDFromContext pulls the customer profile id from the grant stored by
// the role gate.
func customerIDFromContext(c *fiber.Ctx) (string, error) {
	grants, ok := auth.GrantsFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthenticated("authentication required")
	}
	grant, ok := grants.Find(domain.RoleCustomer)
	if !ok {
		return "", apperrors.NewForbidden("customer role required", map[string]any{
			"required": domain.RoleCustomer,
			"held":     grants.Kinds(),
		})
	}
	return grant.RoleID, nil
}

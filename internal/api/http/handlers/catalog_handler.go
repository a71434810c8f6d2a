package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/service"
)

// CatalogHandler serves the read-only restaurant/table/menu passthrough.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Bootstrap GET /catalog/bootstrap: the one-shot bulk read.
func (h *CatalogHandler) Bootstrap(c *fiber.Ctx) error {
	snapshot, err := h.catalog.Snapshot(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BootstrapResponse{
		Restaurants: dto.NewRestaurantResponses(snapshot.Restaurants),
		Tables:      dto.NewTableResponses(snapshot.Tables),
		MenuItems:   dto.NewMenuItemResponses(snapshot.MenuItems),
	}})
}

// Menu GET /catalog/restaurants/:id/menu.
func (h *CatalogHandler) Menu(c *fiber.Ctx) error {
	items, err := h.catalog.Menu(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMenuItemResponses(items)})
}

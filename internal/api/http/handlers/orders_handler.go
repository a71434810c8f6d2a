package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/dto"
	"github.com/smartbite/servesoft/internal/service"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// OrdersHandler exposes the customer order surface: checkout and history.
type OrdersHandler struct {
	carts  *service.CartService
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(cartService *service.CartService, orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{carts: cartService, orders: orderService}
}

// Checkout POST /orders: commits the cart into a PLACED order. Order type is
// derived from the payload, never sent by the client: a non-blank delivery
// address means DELIVERY, anything else is DINE_IN.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.RestaurantID == "" {
		return apperrors.NewValidationError("restaurant_id required", nil)
	}

	order, err := h.carts.Checkout(c.Context(), customerID, req.RestaurantID, req.DeliveryAddress)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCustomerOrderResponse(order)})
}

// List GET /orders: the caller's own order history.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListCustomerOrders(c.Context(), customerID)
	if err != nil {
		return err
	}

	result := make([]dto.CustomerOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, dto.NewCustomerOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/events"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// CartService assembles a customer's pending selections into a priced order.
type CartService struct {
	carts      repository.CartRepository
	catalog    repository.CatalogRepository
	dispatcher events.Dispatcher
}

// NewCartService constructs the service.
func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository, dispatcher events.Dispatcher) *CartService {
	return &CartService{carts: carts, catalog: catalog, dispatcher: dispatcher}
}

// ListItems returns the customer's current cart.
func (s *CartService) ListItems(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	items, err := s.carts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return items, nil
}

// AddItem puts a menu item into the cart, merging quantity with any existing
// row for the same item.
func (s *CartService) AddItem(ctx context.Context, customerID, menuItemID string, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.NewValidationError("quantity must be at least 1", map[string]any{
			"quantity": quantity,
		})
	}

	menuItem, err := s.getMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !menuItem.Available {
		return nil, apperrors.NewValidationError("menu item is not available", map[string]any{
			"menu_item_id": menuItemID,
		})
	}

	item := &domain.CartItem{
		CustomerID: customerID,
		MenuItemID: menuItemID,
		Name:       menuItem.Name,
		UnitPrice:  menuItem.Price,
		Quantity:   quantity,
	}
	if err := s.carts.AddItem(ctx, item); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return item, nil
}

// RemoveItem drops one cart row. Removing an already-removed item succeeds.
func (s *CartService) RemoveItem(ctx context.Context, customerID, cartItemID string) error {
	if err := s.carts.RemoveItem(ctx, customerID, cartItemID); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}

// Clear empties the cart. Clearing an already-empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	if err := s.carts.Clear(ctx, customerID); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}

// Checkout converts the cart into a PLACED order as one logical unit: the
// order is created and the cart cleared inside a single transaction, so a
// failure leaves both untouched. Line items snapshot the live menu price at
// commit time.
func (s *CartService) Checkout(ctx context.Context, customerID, restaurantID string, deliveryAddress *string) (*domain.Order, error) {
	cartItems, err := s.carts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if len(cartItems) == 0 {
		return nil, apperrors.NewEmptyCart()
	}

	orderType := domain.OrderTypeDineIn
	if deliveryAddress != nil && strings.TrimSpace(*deliveryAddress) != "" {
		orderType = domain.OrderTypeDelivery
	} else {
		deliveryAddress = nil
	}

	order := &domain.Order{
		ReferenceKey:    generateOrderKey(),
		RestaurantID:    restaurantID,
		CustomerID:      customerID,
		Type:            orderType,
		Status:          domain.OrderStatusPlaced,
		DeliveryAddress: deliveryAddress,
	}

	for _, cartItem := range cartItems {
		menuItem, err := s.getMenuItem(ctx, cartItem.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem.RestaurantID != restaurantID {
			return nil, apperrors.NewValidationError("cart contains items from another restaurant", map[string]any{
				"menu_item_id": menuItem.ID,
			})
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   cartItem.Quantity,
		})
		order.TotalAmount += menuItem.Price * float64(cartItem.Quantity)
	}

	if err := s.carts.Checkout(ctx, order); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	publishWithDefaults(ctx, s.dispatcher, events.Event{
		Type:    events.EventOrderPlaced,
		OrderID: order.ID,
		Actor:   customerActor(customerID),
		Payload: events.OrderPlacedPayload{
			RestaurantID: restaurantID,
			OrderType:    orderType,
			TotalAmount:  order.TotalAmount,
			ItemCount:    len(order.Items),
		},
	})
	return order, nil
}

func (s *CartService) getMenuItem(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	menuItem, err := s.catalog.GetMenuItem(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("menu item", map[string]any{"menu_item_id": menuItemID})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return menuItem, nil
}

func generateOrderKey() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

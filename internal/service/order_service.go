package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/events"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// OrderService owns the order status vocabulary and all transition rules.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// ListCustomerOrders returns the customer's order history, newest first.
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return orders, nil
}

// ListRestaurantOrders returns orders for the manager's restaurant.
func (s *OrderService) ListRestaurantOrders(ctx context.Context, restaurantID string, filter repository.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orders.ListByRestaurant(ctx, restaurantID, filter)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return orders, nil
}

// UpdateOrderStatus applies a manager-initiated transition. The caller must
// hold a manager grant for the order's restaurant. When the order reaches
// READY and is a delivery order, the PENDING delivery is created in the same
// transaction as the status flip.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, grants domain.GrantSet, orderID string, requested domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(requested) {
		return nil, apperrors.NewValidationError("unknown order status", map[string]any{
			"requested": requested,
		})
	}

	manager, ok := grants.Find(domain.RoleManager)
	if !ok {
		return nil, apperrors.NewForbidden("manager role required", map[string]any{
			"required": domain.RoleManager,
			"held":     grants.Kinds(),
		})
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != manager.RestaurantID {
		return nil, apperrors.NewForbidden("order belongs to another restaurant", map[string]any{
			"required": domain.RoleManager,
			"held":     grants.Kinds(),
		})
	}
	if !domain.CanTransition(order.Status, requested) {
		return nil, apperrors.NewInvalidTransition(string(order.Status), string(requested))
	}

	previous := order.Status
	if requested == domain.OrderStatusReady && order.Type == domain.OrderTypeDelivery {
		address := ""
		if order.DeliveryAddress != nil {
			address = *order.DeliveryAddress
		}
		delivery, applied, err := s.orders.UpdateStatusWithDelivery(ctx, order.ID, previous, requested, address)
		if err != nil {
			return nil, apperrors.NewStoreUnavailable(err)
		}
		if !applied {
			return nil, s.transitionConflict(ctx, order.ID, requested)
		}
		s.publish(ctx, events.Event{
			Type:    events.EventDeliveryPending,
			OrderID: order.ID,
			Actor:   staffActor(manager.StaffID),
			Payload: events.DeliveryPendingPayload{DeliveryID: delivery.ID, Address: address},
		})
	} else {
		applied, err := s.orders.UpdateStatus(ctx, order.ID, previous, requested)
		if err != nil {
			return nil, apperrors.NewStoreUnavailable(err)
		}
		if !applied {
			return nil, s.transitionConflict(ctx, order.ID, requested)
		}
	}

	order.Status = requested
	s.publish(ctx, events.Event{
		Type:    events.EventOrderStatusChanged,
		OrderID: order.ID,
		Actor:   staffActor(manager.StaffID),
		Payload: events.OrderStatusChangedPayload{OldStatus: previous, NewStatus: requested},
	})
	return order, nil
}

func (s *OrderService) getOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return order, nil
}

// transitionConflict re-reads the order after a failed conditional update so
// the rejection names the status that actually won.
func (s *OrderService) transitionConflict(ctx context.Context, orderID string, requested domain.OrderStatus) error {
	current, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return apperrors.NewInvalidTransition(string(current.Status), string(requested))
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	publishWithDefaults(ctx, s.dispatcher, event)
}

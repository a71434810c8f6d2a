package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/events"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

func managerGrants(restaurantID string) domain.GrantSet {
	return domain.GrantSet{{
		Kind:         domain.RoleManager,
		RoleID:       "mgr-1",
		StaffID:      "staff-1",
		RestaurantID: restaurantID,
	}}
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	newOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{
			ID:           "order-1",
			RestaurantID: "rest-1",
			CustomerID:   "cust-1",
			Type:         domain.OrderTypeDineIn,
			Status:       status,
		}
	}

	t.Run("legal transitions succeed", func(t *testing.T) {
		steps := []struct {
			from domain.OrderStatus
			to   domain.OrderStatus
		}{
			{domain.OrderStatusPlaced, domain.OrderStatusInPrep},
			{domain.OrderStatusPlaced, domain.OrderStatusCancelled},
			{domain.OrderStatusInPrep, domain.OrderStatusReady},
			{domain.OrderStatusInPrep, domain.OrderStatusCancelled},
			{domain.OrderStatusReady, domain.OrderStatusCompleted},
		}
		for _, step := range steps {
			repo := newFakeOrderRepo(newOrder(step.from))
			svc := NewOrderService(repo, events.NewInMemoryDispatcher())

			order, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, order.Status)
		}
	})

	t.Run("illegal transitions are rejected", func(t *testing.T) {
		steps := []struct {
			from domain.OrderStatus
			to   domain.OrderStatus
		}{
			{domain.OrderStatusPlaced, domain.OrderStatusReady},
			{domain.OrderStatusPlaced, domain.OrderStatusCompleted},
			{domain.OrderStatusInPrep, domain.OrderStatusPlaced},
			{domain.OrderStatusInPrep, domain.OrderStatusCompleted},
			{domain.OrderStatusReady, domain.OrderStatusCancelled},
			{domain.OrderStatusReady, domain.OrderStatusInPrep},
		}
		for _, step := range steps {
			repo := newFakeOrderRepo(newOrder(step.from))
			svc := NewOrderService(repo, events.NewInMemoryDispatcher())

			_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", step.to)
			require.Error(t, err, "%s -> %s", step.from, step.to)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		for _, terminal := range []domain.OrderStatus{domain.OrderStatusCompleted, domain.OrderStatusCancelled} {
			for _, requested := range []domain.OrderStatus{
				domain.OrderStatusPlaced, domain.OrderStatusInPrep,
				domain.OrderStatusReady, domain.OrderStatusCompleted, domain.OrderStatusCancelled,
			} {
				repo := newFakeOrderRepo(newOrder(terminal))
				svc := NewOrderService(repo, events.NewInMemoryDispatcher())

				_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", requested)
				require.Error(t, err, "%s -> %s", terminal, requested)
				assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
			}
		}
	})

	t.Run("unknown status is a validation failure", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(newOrder(domain.OrderStatusPlaced)), events.NewInMemoryDispatcher())

		_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", domain.OrderStatus("SHIPPED"))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})

	t.Run("non-manager is forbidden", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(newOrder(domain.OrderStatusPlaced)), events.NewInMemoryDispatcher())
		grants := domain.GrantSet{{Kind: domain.RoleCustomer, RoleID: "cust-1"}}

		_, err := svc.UpdateOrderStatus(ctx, grants, "order-1", domain.OrderStatusInPrep)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
	})

	t.Run("manager of another restaurant is forbidden", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(newOrder(domain.OrderStatusPlaced)), events.NewInMemoryDispatcher())

		_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-2"), "order-1", domain.OrderStatusInPrep)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(), events.NewInMemoryDispatcher())

		_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "missing", domain.OrderStatusInPrep)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})

	t.Run("ready delivery order spawns a pending delivery", func(t *testing.T) {
		address := "12 Harbor Lane"
		order := newOrder(domain.OrderStatusInPrep)
		order.Type = domain.OrderTypeDelivery
		order.DeliveryAddress = &address
		repo := newFakeOrderRepo(order)

		dispatcher := events.NewInMemoryDispatcher()
		var pending []events.Event
		dispatcher.Subscribe(events.EventDeliveryPending, func(_ context.Context, event events.Event) error {
			pending = append(pending, event)
			return nil
		})
		svc := NewOrderService(repo, dispatcher)

		updated, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", domain.OrderStatusReady)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusReady, updated.Status)
		require.Len(t, pending, 1)
		payload, ok := pending[0].Payload.(events.DeliveryPendingPayload)
		require.True(t, ok)
		assert.Equal(t, address, payload.Address)
		assert.NotEmpty(t, payload.DeliveryID)
	})

	t.Run("ready dine-in order spawns nothing", func(t *testing.T) {
		repo := newFakeOrderRepo(newOrder(domain.OrderStatusInPrep))
		dispatcher := events.NewInMemoryDispatcher()
		var pending []events.Event
		dispatcher.Subscribe(events.EventDeliveryPending, func(_ context.Context, event events.Event) error {
			pending = append(pending, event)
			return nil
		})
		svc := NewOrderService(repo, dispatcher)

		_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", domain.OrderStatusReady)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("status change event carries old and new status", func(t *testing.T) {
		repo := newFakeOrderRepo(newOrder(domain.OrderStatusPlaced))
		dispatcher := events.NewInMemoryDispatcher()
		var changes []events.Event
		dispatcher.Subscribe(events.EventOrderStatusChanged, func(_ context.Context, event events.Event) error {
			changes = append(changes, event)
			return nil
		})
		svc := NewOrderService(repo, dispatcher)

		_, err := svc.UpdateOrderStatus(ctx, managerGrants("rest-1"), "order-1", domain.OrderStatusInPrep)
		require.NoError(t, err)
		require.Len(t, changes, 1)
		payload, ok := changes[0].Payload.(events.OrderStatusChangedPayload)
		require.True(t, ok)
		assert.Equal(t, domain.OrderStatusPlaced, payload.OldStatus)
		assert.Equal(t, domain.OrderStatusInPrep, payload.NewStatus)
	})
}

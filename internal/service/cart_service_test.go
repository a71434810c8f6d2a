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

func testMenu() *fakeCatalogRepo {
	return newFakeCatalogRepo(
		&domain.MenuItem{ID: "menu-1", RestaurantID: "rest-1", Name: "Margherita", Price: 9.50, Available: true},
		&domain.MenuItem{ID: "menu-2", RestaurantID: "rest-1", Name: "Lemonade", Price: 3.25, Available: true},
		&domain.MenuItem{ID: "menu-3", RestaurantID: "rest-2", Name: "Ramen", Price: 12.00, Available: true},
		&domain.MenuItem{ID: "menu-4", RestaurantID: "rest-1", Name: "Tiramisu", Price: 6.00, Available: false},
	)
}

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds an available item", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		item, err := svc.AddItem(ctx, "cust-1", "menu-1", 2)
		require.NoError(t, err)
		assert.Equal(t, "Margherita", item.Name)
		assert.Equal(t, 9.50, item.UnitPrice)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("merges quantity for a repeated item", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)
		item, err := svc.AddItem(ctx, "cust-1", "menu-1", 2)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)

		items, err := svc.ListItems(ctx, "cust-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		svc := NewCartService(&fakeCartRepo{}, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 0)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		svc := NewCartService(&fakeCartRepo{}, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-4", 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		svc := NewCartService(&fakeCartRepo{}, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "missing", 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("remove is idempotent", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		item, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveItem(ctx, "cust-1", item.ID))
		require.NoError(t, svc.RemoveItem(ctx, "cust-1", item.ID))

		items, err := svc.ListItems(ctx, "cust-1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "cust-1", "menu-2", 1)
		require.NoError(t, err)

		require.NoError(t, svc.Clear(ctx, "cust-1"))
		require.NoError(t, svc.Clear(ctx, "cust-1"))

		items, err := svc.ListItems(ctx, "cust-1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestCartCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart cannot check out", func(t *testing.T) {
		svc := NewCartService(&fakeCartRepo{}, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.Checkout(ctx, "cust-1", "rest-1", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyCart))
	})

	t.Run("no address derives a dine-in order", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 2)
		require.NoError(t, err)

		order, err := svc.Checkout(ctx, "cust-1", "rest-1", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderTypeDineIn, order.Type)
		assert.Nil(t, order.DeliveryAddress)
		assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	})

	t.Run("blank address also derives dine-in", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)

		blank := "   "
		order, err := svc.Checkout(ctx, "cust-1", "rest-1", &blank)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderTypeDineIn, order.Type)
		assert.Nil(t, order.DeliveryAddress)
	})

	t.Run("address derives a delivery order", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)

		address := "12 Harbor Lane"
		order, err := svc.Checkout(ctx, "cust-1", "rest-1", &address)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderTypeDelivery, order.Type)
		require.NotNil(t, order.DeliveryAddress)
		assert.Equal(t, address, *order.DeliveryAddress)
	})

	t.Run("checkout prices lines and empties the cart", func(t *testing.T) {
		carts := &fakeCartRepo{}
		dispatcher := events.NewInMemoryDispatcher()
		var placed []events.Event
		dispatcher.Subscribe(events.EventOrderPlaced, func(_ context.Context, event events.Event) error {
			placed = append(placed, event)
			return nil
		})
		svc := NewCartService(carts, testMenu(), dispatcher)

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 2)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "cust-1", "menu-2", 3)
		require.NoError(t, err)

		order, err := svc.Checkout(ctx, "cust-1", "rest-1", nil)
		require.NoError(t, err)
		require.Len(t, order.Items, 2)
		assert.InDelta(t, 2*9.50+3*3.25, order.TotalAmount, 0.001)
		assert.NotEmpty(t, order.ReferenceKey)

		items, err := svc.ListItems(ctx, "cust-1")
		require.NoError(t, err)
		assert.Empty(t, items)

		require.Len(t, placed, 1)
		payload, ok := placed[0].Payload.(events.OrderPlacedPayload)
		require.True(t, ok)
		assert.Equal(t, 2, payload.ItemCount)
	})

	t.Run("cross-restaurant cart is rejected whole", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "cust-1", "menu-3", 1)
		require.NoError(t, err)

		_, err = svc.Checkout(ctx, "cust-1", "rest-1", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

		items, err := svc.ListItems(ctx, "cust-1")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("another customer's cart is untouched", func(t *testing.T) {
		carts := &fakeCartRepo{}
		svc := NewCartService(carts, testMenu(), events.NewInMemoryDispatcher())

		_, err := svc.AddItem(ctx, "cust-1", "menu-1", 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "cust-2", "menu-2", 1)
		require.NoError(t, err)

		_, err = svc.Checkout(ctx, "cust-1", "rest-1", nil)
		require.NoError(t, err)

		items, err := svc.ListItems(ctx, "cust-2")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

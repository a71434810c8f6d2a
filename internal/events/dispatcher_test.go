package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventOrderPlaced, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})
	dispatcher.Subscribe(EventDeliveryClaimed, func(_ context.Context, event Event) error {
		t.Fatal("handler for another event type must not fire")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventOrderPlaced, OrderID: "order-1"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "order-1", seen[0].OrderID)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventOrderStatusChanged, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	called := false
	dispatcher.Subscribe(EventOrderStatusChanged, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventOrderStatusChanged})
	require.NoError(t, err)
	assert.True(t, called)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartbite/servesoft/internal/events"
)

// publishWithDefaults fills in event identity and timing before dispatch.
// Dispatch failures are deliberately ignored; events are advisory.
func publishWithDefaults(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func staffActor(staffID string) events.Actor {
	return events.Actor{StaffID: &staffID}
}

func customerActor(customerID string) events.Actor {
	return events.Actor{CustomerID: &customerID}
}

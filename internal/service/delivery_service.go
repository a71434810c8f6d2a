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

// DeliveryService mediates the driver-facing delivery lifecycle.
type DeliveryService struct {
	deliveries repository.DeliveryRepository
	dispatcher events.Dispatcher
}

// NewDeliveryService constructs the service.
func NewDeliveryService(deliveries repository.DeliveryRepository, dispatcher events.Dispatcher) *DeliveryService {
	return &DeliveryService{deliveries: deliveries, dispatcher: dispatcher}
}

// ListPending returns the unclaimed delivery board, oldest first.
func (s *DeliveryService) ListPending(ctx context.Context, restaurantID *string) ([]repository.DeliverySummary, error) {
	summaries, err := s.deliveries.ListPending(ctx, restaurantID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return summaries, nil
}

// ListForAgent returns every delivery claimed by the driver.
func (s *DeliveryService) ListForAgent(ctx context.Context, agentStaffID string) ([]repository.DeliverySummary, error) {
	summaries, err := s.deliveries.ListByAgent(ctx, agentStaffID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return summaries, nil
}

// Accept claims a pending delivery for the driver. The claim succeeds for
// exactly one concurrent caller; every other attempt observes AlreadyClaimed
// and should refresh its delivery list.
func (s *DeliveryService) Accept(ctx context.Context, grants domain.GrantSet, deliveryID string) (*domain.Delivery, error) {
	driver, ok := grants.Find(domain.RoleDriver)
	if !ok {
		return nil, apperrors.NewForbidden("driver role required", map[string]any{
			"required": domain.RoleDriver,
			"held":     grants.Kinds(),
		})
	}

	if _, err := s.getDelivery(ctx, deliveryID); err != nil {
		return nil, err
	}

	claimed, err := s.deliveries.Claim(ctx, deliveryID, driver.StaffID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if !claimed {
		return nil, apperrors.NewAlreadyClaimed(deliveryID)
	}

	delivery, err := s.getDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	s.publishClaim(ctx, events.EventDeliveryClaimed, delivery, driver.StaffID)
	return delivery, nil
}

// Complete finishes a delivery. Only the assigned agent may complete it;
// anyone else is rejected outright.
func (s *DeliveryService) Complete(ctx context.Context, grants domain.GrantSet, deliveryID string) (*domain.Delivery, error) {
	driver, ok := grants.Find(domain.RoleDriver)
	if !ok {
		return nil, apperrors.NewForbidden("driver role required", map[string]any{
			"required": domain.RoleDriver,
			"held":     grants.Kinds(),
		})
	}

	delivery, err := s.getDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.AgentStaffID == nil || *delivery.AgentStaffID != driver.StaffID {
		return nil, apperrors.NewForbidden("delivery assigned to another agent", map[string]any{
			"required": domain.RoleDriver,
			"held":     grants.Kinds(),
		})
	}

	completed, err := s.deliveries.Complete(ctx, deliveryID, driver.StaffID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if !completed {
		// Assigned agent but the guard did not match, so the delivery is no
		// longer ACCEPTED.
		current, err := s.getDelivery(ctx, deliveryID)
		if err != nil {
			return nil, err
		}
		return nil, apperrors.NewInvalidTransition(string(current.Status), string(domain.DeliveryStatusCompleted))
	}

	delivery.Status = domain.DeliveryStatusCompleted
	s.publishClaim(ctx, events.EventDeliveryCompleted, delivery, driver.StaffID)
	return delivery, nil
}

func (s *DeliveryService) getDelivery(ctx context.Context, deliveryID string) (*domain.Delivery, error) {
	delivery, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("delivery", map[string]any{"delivery_id": deliveryID})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return delivery, nil
}

func (s *DeliveryService) publishClaim(ctx context.Context, eventType events.EventType, delivery *domain.Delivery, staffID string) {
	if s.dispatcher == nil {
		return
	}
	payload := interface{}(events.DeliveryClaimedPayload{DeliveryID: delivery.ID, AgentStaffID: staffID})
	if eventType == events.EventDeliveryCompleted {
		payload = events.DeliveryCompletedPayload{DeliveryID: delivery.ID, AgentStaffID: staffID}
	}
	event := events.Event{
		Type:    eventType,
		OrderID: delivery.OrderID,
		Actor:   staffActor(staffID),
		Payload: payload,
	}
	publishWithDefaults(ctx, s.dispatcher, event)
}

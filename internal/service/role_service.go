package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// RoleService derives the complete set of capabilities a user currently
// holds by walking the identity profile rows. Grants are computed fresh on
// every call; nothing is cached, so status flips take effect immediately.
type RoleService struct {
	identity repository.IdentityRepository
	logger   *zap.Logger
}

// NewRoleService builds the service.
func NewRoleService(identity repository.IdentityRepository, logger *zap.Logger) *RoleService {
	return &RoleService{identity: identity, logger: logger}
}

// ResolveRoles returns every grant for the user. The only failure mode is
// identity store unavailability; absent profile rows simply emit nothing.
func (s *RoleService) ResolveRoles(ctx context.Context, userID string) (domain.GrantSet, error) {
	grants := domain.GrantSet{}

	customer, err := s.identity.GetCustomerByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if customer != nil {
		grants = append(grants, domain.RoleGrant{Kind: domain.RoleCustomer, RoleID: customer.ID})
	}

	admin, err := s.identity.GetAdminByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if admin != nil {
		grants = append(grants, domain.RoleGrant{Kind: domain.RoleAdmin, RoleID: admin.ID})
	}

	staffGrant, err := s.resolveStaffGrant(ctx, userID)
	if err != nil {
		return nil, err
	}
	if staffGrant != nil {
		grants = append(grants, *staffGrant)
	}

	return grants, nil
}

// resolveStaffGrant finds the single Active staff row and refines it into a
// manager, driver or plain staff grant. Inactive rows never emit anything.
func (s *RoleService) resolveStaffGrant(ctx context.Context, userID string) (*domain.RoleGrant, error) {
	staffRows, err := s.identity.ListActiveStaffByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if len(staffRows) == 0 {
		return nil, nil
	}
	if len(staffRows) > 1 {
		// Policy assumes at most one Active staff row per user; extras are a
		// data-integrity problem, not a request failure.
		s.logger.Warn("multiple active staff rows for user",
			zap.String("user_id", userID),
			zap.Int("count", len(staffRows)))
	}
	staff := staffRows[0]

	manager, err := s.identity.GetManagerByStaffID(ctx, staff.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if manager != nil {
		// Manager wins over a stray driver specialization on the same staff
		// row; the driver lookup is skipped entirely.
		return &domain.RoleGrant{
			Kind:         domain.RoleManager,
			RoleID:       manager.ID,
			StaffID:      staff.ID,
			RestaurantID: staff.RestaurantID,
		}, nil
	}

	agent, err := s.identity.GetDeliveryAgentByStaffID(ctx, staff.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if agent != nil {
		return &domain.RoleGrant{
			Kind:         domain.RoleDriver,
			RoleID:       agent.ID,
			StaffID:      staff.ID,
			RestaurantID: staff.RestaurantID,
		}, nil
	}

	return &domain.RoleGrant{
		Kind:         domain.RoleStaff,
		RoleID:       staff.ID,
		StaffID:      staff.ID,
		RestaurantID: staff.RestaurantID,
		StaffTitle:   staff.Title,
	}, nil
}

package service

import (
	"context"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// UserWithRoles pairs a user with the role kinds it currently resolves to.
type UserWithRoles struct {
	User  domain.User
	Kinds []domain.RoleKind
}

// AdminService backs the administrator views.
type AdminService struct {
	users repository.UserRepository
	roles *RoleService
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, roles *RoleService) *AdminService {
	return &AdminService{users: users, roles: roles}
}

// ListUsers returns users with their resolved role kinds.
func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]UserWithRoles, error) {
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	result := make([]UserWithRoles, 0, len(users))
	for _, user := range users {
		grants, err := s.roles.ResolveRoles(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, UserWithRoles{User: user, Kinds: grants.Kinds()})
	}
	return result, nil
}

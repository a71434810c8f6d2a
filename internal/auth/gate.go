package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/domain"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

// RoleResolver derives the full grant set for a user. Implemented by the
// role service; declared here so the gate stays decoupled from it.
type RoleResolver interface {
	ResolveRoles(ctx context.Context, userID string) (domain.GrantSet, error)
}

// RequireAuthenticated ensures a principal was loaded by the middleware.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		return c.Next()
	}
}

// RequireRole resolves the caller's grants and rejects the request unless a
// grant of the required kind is held. On success the full set is stored in
// locals, so handlers read StaffID/RestaurantID without a second resolution.
func RequireRole(resolver RoleResolver, required domain.RoleKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}

		grants, err := resolver.ResolveRoles(c.Context(), principal.User.ID)
		if err != nil {
			return err
		}
		if !grants.Has(required) {
			return apperrors.NewForbidden("insufficient permissions", map[string]any{
				"required": required,
				"held":     grants.Kinds(),
			})
		}

		c.Locals(grantsKey, grants)
		return c.Next()
	}
}

// GrantsFromContext retrieves the grant set stored by RequireRole.
func GrantsFromContext(c *fiber.Ctx) (domain.GrantSet, bool) {
	val := c.Locals(grantsKey)
	if val == nil {
		return nil, false
	}
	grants, ok := val.(domain.GrantSet)
	return grants, ok
}

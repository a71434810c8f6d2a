package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/smartbite/servesoft/internal/domain"
	"github.com/smartbite/servesoft/internal/repository"
	apperrors "github.com/smartbite/servesoft/pkg/util"
)

const (
	principalKey = "auth_principal"
	grantsKey    = "auth_grants"
)

// Principal represents the authenticated caller. Grants are not part of the
// principal; they are resolved per request by the role gate.
type Principal struct {
	User *domain.User
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	blacklist Blacklist
	users     repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, blacklist Blacklist, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, blacklist: blacklist, users: users}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid token")
	}

	if m.blacklist != nil {
		revoked, err := m.blacklist.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return apperrors.NewStoreUnavailable(err)
		}
		if revoked {
			return apperrors.NewUnauthenticated("token revoked")
		}
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthenticated("user not found")
		}
		return apperrors.NewStoreUnavailable(err)
	}
	if user.Status != domain.UserStatusActive {
		return apperrors.NewUnauthenticated("account suspended")
	}

	c.Locals(principalKey, &Principal{User: user})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/animal-catalog/internal/domain"
	apperrors "github.com/spec-kit/animal-catalog/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as recorded in its token.
type Principal struct {
	Identity  domain.Identity
	ExpiresAt int64
}

// AuthMiddleware validates bearer tokens and loads principals.
// Validity is decided by signature and expiry alone; no store is consulted.
type AuthMiddleware struct {
	tokens *TokenIssuer
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, ErrSigningUnavailable) {
			return apperrors.NewConfigurationError("Missing JWT_SECRET on server", err)
		}
		return apperrors.NewUnauthorized("invalid token")
	}

	switch claims.Role {
	case domain.RoleCustomer, domain.RoleAdmin:
	default:
		return apperrors.NewUnauthorized("unknown role")
	}

	principal := &Principal{
		Identity: domain.Identity{
			ID:       claims.Subject,
			Username: claims.Username,
			Role:     claims.Role,
		},
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Unix()
	}

	c.Locals(principalKey, principal)
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

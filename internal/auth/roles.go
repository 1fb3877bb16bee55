package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// AuthError is the typed result of a capability check.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

// Authorize checks that the principal holds the required role. Handlers call
// this at the top before touching any state.
func Authorize(c *fiber.Ctx, role domain.Role) (*Principal, *AuthError) {
	principal, ok := PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, &AuthError{Reason: "authentication required"}
	}
	if principal.User.Role != role {
		return nil, &AuthError{Reason: "insufficient role"}
	}
	return principal, nil
}

// RequireTenant ensures a tenant is authenticated.
func RequireTenant() fiber.Handler {
	return requireRole(domain.RoleTenant)
}

// RequireLandlord ensures a landlord is authenticated.
func RequireLandlord() fiber.Handler {
	return requireRole(domain.RoleLandlord)
}

func requireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.User.Role != role {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the caller is authenticated.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/farmchain/backend/internal/pkg/jwt"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
)

// ContextUserKey is the echo context key the resolved user is stored
// under by the auth guard.
const ContextUserKey = "auth_user"

// UserResolver loads a user from its role partition. Implemented by
// the users repository; mocked in tests.
type UserResolver interface {
	GetByID(ctx context.Context, role models.Role, id string) (*models.User, error)
}

// AuthMiddleware validates the bearer token and re-resolves the user
// from the role partition named in the claims on every request, so a
// deleted or demoted account is rejected even while its token is still
// within expiry. When allowedRoles is non-empty the resolved role must
// be one of them.
func AuthMiddleware(resolver UserResolver, cfg models.JWTConfig, allowedRoles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}
			role := models.Role(roleStr)
			if !role.Valid() {
				return utils.UnauthorizedResponse(c, fmt.Sprintf("Invalid token: unknown role %q", roleStr))
			}

			user, err := resolver.GetByID(c.Request().Context(), role, userID)
			if err != nil || user == nil {
				return utils.UnauthorizedResponse(c, "User not found")
			}

			if len(allowedRoles) > 0 {
				permitted := false
				for _, allowed := range allowedRoles {
					if user.Role == allowed {
						permitted = true
						break
					}
				}
				if !permitted {
					return utils.ForbiddenResponse(c, "Insufficient permissions")
				}
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user resolved by AuthMiddleware
func UserFromContext(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextUserKey).(*models.User)
	return user, ok
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// IdentityResolver is the function the middleware calls to validate a token
// and resolve its subject to an existing user. Satisfied by wrapping the auth
// service's CheckToken.
type IdentityResolver func(c echo.Context, token string) (*domain.Identity, error)

// Auth validates the bearer token, resolves the account it belongs to, and
// injects the identity into the request context. Resolution goes through the
// user store, so a token for a deleted account is rejected even if unexpired.
func Auth(resolve IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := resolve(c, parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrInvalidToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials or expired token")
				}
				return err
			}

			c.Set("user_id", identity.ID)
			c.Set("email", identity.Email)
			c.Set("role", string(identity.Role))

			return next(c)
		}
	}
}

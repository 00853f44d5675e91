package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// SessionResolver is the slice of the session service the guard needs.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*ports.Session, error)
}

// Guard resolves the bearer session and injects the principal into context.
// Unauthenticated requests are rejected; there is no retry, one resolution
// pass per request.
func Guard(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No authentication token found")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := sessions.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrSessionExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "No authentication token found")
				}
				return err
			}

			c.Set("session", sess)
			c.Set("token", sess.Token)
			c.Set("principal", sess.Principal)
			c.Set("role", string(sess.Principal.Role))

			return next(c)
		}
	}
}

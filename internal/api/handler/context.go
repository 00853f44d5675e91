package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// ctxSession extracts the session injected by the Guard middleware and
// fast-fails before any service call: a missing session means the
// middleware did not run on this route.
func ctxSession(c echo.Context) (*ports.Session, error) {
	sess, _ := c.Get("session").(*ports.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No authentication token found")
	}
	return sess, nil
}

// ctxPrincipal is ctxSession plus the principal projection.
func ctxPrincipal(c echo.Context) (*ports.Session, domain.Principal, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return nil, domain.Principal{}, err
	}
	return sess, sess.Principal, nil
}

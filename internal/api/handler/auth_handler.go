package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
	"github.com/expofair/exhibitor-portal/internal/core/service"
)

// AuthHandler owns the session lifecycle routes.
type AuthHandler struct {
	sessions ports.SessionService
	browsers *service.Browsers
}

func NewAuthHandler(sessions ports.SessionService, browsers *service.Browsers) *AuthHandler {
	return &AuthHandler{sessions: sessions, browsers: browsers}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=exhibitor visitor"`
}

type loginResponse struct {
	SessionToken string           `json:"session_token"`
	User         domain.Principal `json:"user"`
}

// Login exchanges credentials for a portal session.
//
// @Summary      Log in as exhibitor or visitor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), domain.Role(req.Role), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		SessionToken: sess.ID,
		User:         sess.Principal,
	})
}

// Logout clears the session record unconditionally.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	h.browsers.Drop(sess.ID)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated principal's full upstream record.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	principal, err := h.sessions.WhoAmI(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principal)
}

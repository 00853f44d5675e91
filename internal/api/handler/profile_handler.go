package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// ProfileHandler exposes the principal's own record: profile edits and
// password changes.
type ProfileHandler struct {
	profile  ports.ProfileService
	sessions ports.SessionService
}

func NewProfileHandler(profile ports.ProfileService, sessions ports.SessionService) *ProfileHandler {
	return &ProfileHandler{profile: profile, sessions: sessions}
}

type updateProfileRequest struct {
	Name        string `form:"name"   validate:"required"`
	Email       string `form:"email"  validate:"required,email"`
	Mobile      string `form:"mobile" validate:"required"`
	CompanyName string `form:"company_name"`
	Designation string `form:"designation"`
	About       string `form:"about"`

	ExistingProfileImage string `form:"existing_profile_image"`
	ExistingCoverImage   string `form:"existing_cover_image"`
	ExistingCompanyLogo  string `form:"existing_company_logo"`
}

// Update applies a profile edit and refreshes the QR badge. On success the
// cached session principal is replaced, making this flow the sole writer of
// session identity after login.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProfileResult
// @Failure      422  {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	sess, principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.ProfileUpdate{
		ID:          principal.ID,
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		CompanyName: req.CompanyName,
		Designation: req.Designation,
		About:       req.About,

		ExistingProfileImage: req.ExistingProfileImage,
		ExistingCoverImage:   req.ExistingCoverImage,
		ExistingCompanyLogo:  req.ExistingCompanyLogo,
	}

	for field, dst := range map[string]**ports.FileUpload{
		"profile_image": &in.ProfileImage,
		"cover_image":   &in.CoverImage,
		"company_logo":  &in.CompanyLogo,
	} {
		f, err := formFile(c, field)
		if err != nil {
			return err
		}
		*dst = f
	}

	result, err := h.profile.Update(c.Request().Context(), sess.Token, principal.Role, in)
	if err != nil {
		return err
	}

	if err := h.sessions.SetPrincipal(c.Request().Context(), sess.ID, *result.Principal); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// ChangePassword submits a password change after the client-side checks.
//
// @Summary      Change password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /profile/password [post]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	sess, principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.profile.ChangePassword(
		c.Request().Context(),
		sess.Token,
		principal.Role,
		req.CurrentPassword,
		req.NewPassword,
		req.ConfirmPassword,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}

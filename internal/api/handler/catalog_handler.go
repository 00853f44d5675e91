package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// maxUploadBytes bounds a single uploaded file (brochures, images).
const maxUploadBytes = 8 << 20

// CatalogHandler exposes event discovery, stall browsing, and the stall
// application flow.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Events lists events with optional search and pagination.
//
// @Summary      List events
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Free-text search"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  ports.EventPage
// @Router       /events [get]
func (h *CatalogHandler) Events(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.catalog.ListEvents(c.Request().Context(), sess.Token, ports.PageQuery{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Stalls lists booths with nested stalls for one event.
//
// @Summary      List stalls for an event
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Event id"
// @Param        search    query     string  false  "Free-text search"
// @Param        category  query     string  false  "Booth category filter"
// @Success      200       {object}  ports.StallListing
// @Router       /events/{id}/stalls [get]
func (h *CatalogHandler) Stalls(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	listing, err := h.catalog.ListStalls(
		c.Request().Context(),
		sess.Token,
		c.Param("id"),
		c.QueryParam("search"),
		c.QueryParam("category"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

type applyStallRequest struct {
	Name            string `form:"name"        validate:"required"`
	Designation     string `form:"designation" validate:"required"`
	Email           string `form:"email"       validate:"required,email"`
	Mobile          string `form:"mobile"      validate:"required"`
	Representatives string `form:"representatives"`
}

// Apply submits a stall application for the authenticated exhibitor.
//
// @Summary      Apply for a stall
// @Tags         catalog
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        event_id  path  string  true  "Event id"
// @Param        stall_id  path  string  true  "Stall id"
// @Success      200  {object}  ports.StallListing
// @Failure      409  {object}  map[string]string
// @Router       /events/{event_id}/stalls/{stall_id}/apply [post]
func (h *CatalogHandler) Apply(c echo.Context) error {
	sess, principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req applyStallRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app := ports.StallApplication{
		StallID:         c.Param("stall_id"),
		Name:            req.Name,
		Designation:     req.Designation,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Representatives: req.Representatives,
	}

	brochure, err := formFile(c, "brochure")
	if err != nil {
		return err
	}
	app.Brochure = brochure

	listing, err := h.catalog.ApplyForStall(c.Request().Context(), sess.Token, principal.ID, c.Param("event_id"), app)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// formFile reads an optional multipart file part into an upload. Returns
// (nil, nil) when the part is absent.
func formFile(c echo.Context, field string) (*ports.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fh.Size > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" exceeds the upload size limit")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field)
	}

	return &ports.FileUpload{Field: field, Filename: fh.Filename, Content: content}, nil
}

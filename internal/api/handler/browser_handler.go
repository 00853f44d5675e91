package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
	"github.com/expofair/exhibitor-portal/internal/core/service"
)

// BrowserHandler exposes the stateful catalog screen. Each session owns one
// browser holding the loaded events, the selected event with its booths, and
// the active filters; every mutation returns the full refreshed state.
type BrowserHandler struct {
	browsers *service.Browsers
}

func NewBrowserHandler(browsers *service.Browsers) *BrowserHandler {
	return &BrowserHandler{browsers: browsers}
}

// State returns the session's current catalog view state.
//
// @Summary      Catalog screen state
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.BrowserState
// @Router       /catalog [get]
func (h *BrowserHandler) State(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	b := h.browsers.For(sess.ID, sess.Token)
	return c.JSON(http.StatusOK, b.State())
}

type loadEventsRequest struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

// LoadEvents fetches a page of events into the session's browser.
//
// @Summary      Load events into the catalog screen
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.BrowserState
// @Router       /catalog/events [post]
func (h *BrowserHandler) LoadEvents(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req loadEventsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	b := h.browsers.For(sess.ID, sess.Token)
	if err := b.LoadEvents(c.Request().Context(), ports.PageQuery{
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

type selectEventRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

// Select selects an event, or collapses it when it is already the selected
// one.
//
// @Summary      Select or collapse an event
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectEventRequest  true  "Event to toggle"
// @Success      200   {object}  service.BrowserState
// @Router       /catalog/select [post]
func (h *BrowserHandler) Select(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req selectEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	b := h.browsers.For(sess.ID, sess.Token)
	if err := b.SelectEvent(c.Request().Context(), req.EventID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

type searchRequest struct {
	Search string `json:"search"`
}

// Search updates the free-text filter and refreshes the stall listing.
//
// @Summary      Set the catalog search filter
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.BrowserState
// @Router       /catalog/search [post]
func (h *BrowserHandler) Search(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	b := h.browsers.For(sess.ID, sess.Token)
	if err := b.SetSearch(c.Request().Context(), req.Search); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

type categoryRequest struct {
	Category string `json:"category"`
}

// Category updates the category filter and refreshes the stall listing.
//
// @Summary      Set the catalog category filter
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.BrowserState
// @Router       /catalog/category [post]
func (h *BrowserHandler) Category(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	b := h.browsers.For(sess.ID, sess.Token)
	if err := b.SetCategory(c.Request().Context(), req.Category); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

// Apply submits a stall application against the selected event and returns
// the refreshed screen state.
//
// @Summary      Apply for a stall on the catalog screen
// @Tags         catalog
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        stall_id  path  string  true  "Stall id"
// @Success      200  {object}  service.BrowserState
// @Failure      409  {object}  map[string]string
// @Router       /catalog/stalls/{stall_id}/apply [post]
func (h *BrowserHandler) Apply(c echo.Context) error {
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

	b := h.browsers.For(sess.ID, sess.Token)
	if err := b.Apply(c.Request().Context(), principal.ID, app); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

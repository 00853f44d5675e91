package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// DirectoryHandler exposes the exhibitor, visitor, and lead listings plus
// lead capture.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) pageQuery(c echo.Context) ports.PageQuery {
	return ports.PageQuery{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}
}

// Exhibitors lists one page of the exhibitor directory.
//
// @Summary      List exhibitors
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DirectoryPage
// @Router       /exhibitors [get]
func (h *DirectoryHandler) Exhibitors(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	page, err := h.directory.Exhibitors(c.Request().Context(), sess.Token, h.pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Visitors lists one page of the visitor directory.
//
// @Summary      List visitors
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DirectoryPage
// @Router       /visitors [get]
func (h *DirectoryHandler) Visitors(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	page, err := h.directory.Visitors(c.Request().Context(), sess.Token, h.pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Leads lists one page of the principal's captured leads.
//
// @Summary      List leads
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.LeadListing
// @Router       /leads [get]
func (h *DirectoryHandler) Leads(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	listing, err := h.directory.Leads(c.Request().Context(), sess.Token, h.pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

type captureLeadRequest struct {
	LeadID  string `json:"lead_id" validate:"required"`
	Message string `json:"message"`
}

// Capture records another principal as a lead.
//
// @Summary      Capture a lead
// @Tags         directory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      captureLeadRequest  true  "Lead to capture"
// @Success      200   {object}  map[string]string
// @Router       /leads [post]
func (h *DirectoryHandler) Capture(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req captureLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.directory.CaptureLead(c.Request().Context(), sess.Token, req.LeadID, req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "lead captured"})
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// BookingHandler exposes the read-only booking history.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// History lists the principal's past bookings.
//
// @Summary      Booking history
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Free-text search"
// @Param        from    query     string  false  "From date (YYYY-MM-DD)"
// @Param        to      query     string  false  "To date (YYYY-MM-DD)"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  ports.HistoryPage
// @Router       /bookings [get]
func (h *BookingHandler) History(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	from, err := queryDate(c, "from")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return err
	}

	page, err := h.bookings.History(c.Request().Context(), sess.Token, ports.HistoryQuery{
		Search:   c.QueryParam("search"),
		FromDate: from,
		ToDate:   to,
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func queryDate(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, name+" must be formatted YYYY-MM-DD")
	}
	return t, nil
}

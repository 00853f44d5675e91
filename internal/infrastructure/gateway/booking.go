package gateway

import (
	"context"
	"time"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const dateOnly = "2006-01-02"

// BookingHistory fetches one page of the principal's past bookings.
func (c *Client) BookingHistory(ctx context.Context, token string, q ports.HistoryQuery) (*ports.BookingPage, error) {
	body := map[string]any{
		"search":   q.Search,
		"page":     q.Page,
		"limit":    q.Limit,
		"fromDate": formatDate(q.FromDate),
		"toDate":   formatDate(q.ToDate),
	}
	var resp struct {
		Data       []bookingDTO `json:"data"`
		Total      int          `json:"total"`
		Page       int          `json:"page"`
		Limit      int          `json:"limit"`
		TotalPages int          `json:"totalPages"`
	}
	if err := c.postJSON(ctx, token, "/user/booking-history", body, &resp, "failed to load booking history"); err != nil {
		return nil, err
	}

	page := &ports.BookingPage{
		Bookings:   make([]domain.Booking, 0, len(resp.Data)),
		Total:      resp.Total,
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalPages: resp.TotalPages,
	}
	for _, d := range resp.Data {
		page.Bookings = append(page.Bookings, d.toDomain())
	}
	return page, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateOnly)
}

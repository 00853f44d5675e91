package service

import (
	"context"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const defaultHistoryLimit = 10

// BookingService is the read-only booking history screen.
type BookingService struct {
	gw ports.BookingGateway
}

func NewBookingService(gw ports.BookingGateway) *BookingService {
	return &BookingService{gw: gw}
}

// History fetches one page of past bookings. The page parameter is
// independent of the filter parameters: changing a filter does not reset it.
// An out-of-range page is clamped to the last available page instead, so a
// filter change that shrinks the result set still yields data.
func (s *BookingService) History(ctx context.Context, token string, q ports.HistoryQuery) (*ports.HistoryPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultHistoryLimit
	}
	metrics.ScreenFetchesTotal.WithLabelValues("bookings").Inc()

	page, err := s.gw.BookingHistory(ctx, token, q)
	if err != nil {
		return nil, err
	}

	if page.TotalPages > 0 && q.Page > page.TotalPages {
		q.Page = page.TotalPages
		page, err = s.gw.BookingHistory(ctx, token, q)
		if err != nil {
			return nil, err
		}
	}

	current := page.Page
	if current < 1 {
		current = q.Page
	}
	return &ports.HistoryPage{
		Bookings:   page.Bookings,
		Total:      page.Total,
		Page:       current,
		TotalPages: page.TotalPages,
		HasPrev:    current > 1,
		HasNext:    page.TotalPages > 0 && current < page.TotalPages,
	}, nil
}

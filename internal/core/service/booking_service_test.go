package service

import (
	"context"
	"testing"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type stubBookingGateway struct {
	bookingHistoryFn func(ctx context.Context, token string, q ports.HistoryQuery) (*ports.BookingPage, error)
}

func (s *stubBookingGateway) BookingHistory(ctx context.Context, token string, q ports.HistoryQuery) (*ports.BookingPage, error) {
	return s.bookingHistoryFn(ctx, token, q)
}

func TestBookingService_History_PaginationFlags(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		wantPrev   bool
		wantNext   bool
	}{
		{"first of many", 1, 4, false, true},
		{"middle page", 2, 4, true, true},
		{"last page", 4, 4, true, false},
		{"single page", 1, 1, false, false},
		{"empty result", 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubBookingGateway{
				bookingHistoryFn: func(_ context.Context, _ string, q ports.HistoryQuery) (*ports.BookingPage, error) {
					return &ports.BookingPage{Page: q.Page, TotalPages: tt.totalPages}, nil
				},
			}
			svc := NewBookingService(gw)

			page, err := svc.History(context.Background(), "tok", ports.HistoryQuery{Page: tt.page})
			if err != nil {
				t.Fatalf("history: %v", err)
			}
			if page.HasPrev != tt.wantPrev || page.HasNext != tt.wantNext {
				t.Fatalf("prev/next = %v/%v, want %v/%v", page.HasPrev, page.HasNext, tt.wantPrev, tt.wantNext)
			}
		})
	}
}

func TestBookingService_History_ClampsOutOfRangePage(t *testing.T) {
	var fetched []int
	gw := &stubBookingGateway{
		bookingHistoryFn: func(_ context.Context, _ string, q ports.HistoryQuery) (*ports.BookingPage, error) {
			fetched = append(fetched, q.Page)
			return &ports.BookingPage{Page: q.Page, TotalPages: 2}, nil
		},
	}
	svc := NewBookingService(gw)

	// A filter change shrank the result set while the caller was on page 7.
	page, err := svc.History(context.Background(), "tok", ports.HistoryQuery{Page: 7})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(fetched) != 2 || fetched[0] != 7 || fetched[1] != 2 {
		t.Fatalf("expected re-fetch at the last page, got fetches %v", fetched)
	}
	if page.Page != 2 || page.HasNext {
		t.Fatalf("clamped page should be the last: %+v", page)
	}
}

func TestBookingService_History_NormalizesDefaults(t *testing.T) {
	gw := &stubBookingGateway{
		bookingHistoryFn: func(_ context.Context, _ string, q ports.HistoryQuery) (*ports.BookingPage, error) {
			if q.Page != 1 {
				t.Fatalf("page = %d, want 1", q.Page)
			}
			if q.Limit != defaultHistoryLimit {
				t.Fatalf("limit = %d, want %d", q.Limit, defaultHistoryLimit)
			}
			return &ports.BookingPage{Page: 1, TotalPages: 1}, nil
		},
	}
	svc := NewBookingService(gw)

	if _, err := svc.History(context.Background(), "tok", ports.HistoryQuery{}); err != nil {
		t.Fatalf("history: %v", err)
	}
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type stubBookingService struct {
	historyFn func(ctx context.Context, token string, q ports.HistoryQuery) (*ports.HistoryPage, error)
}

func (s *stubBookingService) History(ctx context.Context, token string, q ports.HistoryQuery) (*ports.HistoryPage, error) {
	return s.historyFn(ctx, token, q)
}

func newHistoryContext(t *testing.T, rawQuery string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &ports.Session{ID: "sess_1", Token: "tok_abc"})
	return c, rec
}

func TestBookingHandler_History(t *testing.T) {
	svc := &stubBookingService{
		historyFn: func(_ context.Context, token string, q ports.HistoryQuery) (*ports.HistoryPage, error) {
			if token != "tok_abc" {
				t.Fatalf("token = %q", token)
			}
			if q.Search != "expo" || q.Page != 3 || q.Limit != 10 {
				t.Fatalf("unexpected query: %+v", q)
			}
			want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			if !q.FromDate.Equal(want) {
				t.Fatalf("from = %v", q.FromDate)
			}
			return &ports.HistoryPage{Page: 3, TotalPages: 4, HasPrev: true, HasNext: true}, nil
		},
	}
	h := NewBookingHandler(svc)

	c, rec := newHistoryContext(t, "search=expo&from=2026-03-01&page=3")
	if err := h.History(c); err != nil {
		t.Fatalf("history: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestBookingHandler_History_BadDate(t *testing.T) {
	svc := &stubBookingService{
		historyFn: func(context.Context, string, ports.HistoryQuery) (*ports.HistoryPage, error) {
			t.Fatalf("bad date must not reach the service")
			return nil, nil
		},
	}
	h := NewBookingHandler(svc)

	c, _ := newHistoryContext(t, "from=01-03-2026")
	err := h.History(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

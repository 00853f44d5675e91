package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type stubResolver struct {
	resolveFn func(ctx context.Context, sessionID string) (*ports.Session, error)
}

func (s *stubResolver) Resolve(ctx context.Context, sessionID string) (*ports.Session, error) {
	return s.resolveFn(ctx, sessionID)
}

func callGuard(t *testing.T, resolver SessionResolver, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := Guard(resolver)(next)(c)
	return rec, err
}

func TestGuard_MissingHeader(t *testing.T) {
	_, err := callGuard(t, &stubResolver{}, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "No authentication token found" {
		t.Fatalf("message = %v", he.Message)
	}
}

func TestGuard_MalformedHeader(t *testing.T) {
	_, err := callGuard(t, &stubResolver{}, "tok-without-scheme")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGuard_ExpiredSession(t *testing.T) {
	resolver := &stubResolver{
		resolveFn: func(context.Context, string) (*ports.Session, error) {
			return nil, domain.ErrSessionExpired
		},
	}
	_, err := callGuard(t, resolver, "Bearer s1")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGuard_InjectsSessionContext(t *testing.T) {
	resolver := &stubResolver{
		resolveFn: func(_ context.Context, sessionID string) (*ports.Session, error) {
			if sessionID != "s1" {
				t.Fatalf("session id = %q", sessionID)
			}
			return &ports.Session{
				ID:        "s1",
				Token:     "tok_abc",
				Principal: domain.Principal{ID: "e_1", Role: domain.RoleExhibitor},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req.Header.Set("Authorization", "Bearer s1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotToken, gotRole string
	next := func(c echo.Context) error {
		gotToken, _ = c.Get("token").(string)
		gotRole, _ = c.Get("role").(string)
		return c.NoContent(http.StatusOK)
	}
	if err := Guard(resolver)(next)(c); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if gotToken != "tok_abc" || gotRole != "exhibitor" {
		t.Fatalf("context not populated: token=%q role=%q", gotToken, gotRole)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	mw := RequireRole("exhibitor")

	run := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		if err := mw(next)(c); err != nil {
			t.Fatalf("middleware: %v", err)
		}
		return rec
	}

	if rec := run("exhibitor"); rec.Code != http.StatusOK {
		t.Fatalf("exhibitor should pass, got %d", rec.Code)
	}
	if rec := run("visitor"); rec.Code != http.StatusForbidden {
		t.Fatalf("visitor should be rejected, got %d", rec.Code)
	}
	if rec := run(""); rec.Code != http.StatusForbidden {
		t.Fatalf("missing role should be rejected, got %d", rec.Code)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
	"github.com/expofair/exhibitor-portal/internal/core/service"
)

func testBrowsers() *service.Browsers {
	return service.NewBrowsers(nil, time.Hour, zerolog.Nop())
}

type stubSessionService struct {
	loginFn        func(ctx context.Context, role domain.Role, email, password string) (*ports.Session, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	resolveFn      func(ctx context.Context, sessionID string) (*ports.Session, error)
	setPrincipalFn func(ctx context.Context, sessionID string, p domain.Principal) error
	whoAmIFn       func(ctx context.Context, token string) (*domain.Principal, error)
}

func (s *stubSessionService) Login(ctx context.Context, role domain.Role, email, password string) (*ports.Session, error) {
	return s.loginFn(ctx, role, email, password)
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubSessionService) Resolve(ctx context.Context, sessionID string) (*ports.Session, error) {
	return s.resolveFn(ctx, sessionID)
}

func (s *stubSessionService) SetPrincipal(ctx context.Context, sessionID string, p domain.Principal) error {
	return s.setPrincipalFn(ctx, sessionID, p)
}

func (s *stubSessionService) WhoAmI(ctx context.Context, token string) (*domain.Principal, error) {
	return s.whoAmIFn(ctx, token)
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(_ context.Context, role domain.Role, email, password string) (*ports.Session, error) {
			if role != domain.RoleVisitor || email != "v@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", role, email, password)
			}
			return &ports.Session{
				ID:        "sess_1",
				Token:     "tok_abc",
				Principal: domain.Principal{ID: "v_1", Email: email, Role: role},
			}, nil
		},
	}
	h := NewAuthHandler(svc, testBrowsers())

	c, rec := newLoginContext(t, `{"email":"v@x.com","password":"secret","role":"visitor"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		SessionToken string           `json:"session_token"`
		User         domain.Principal `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// The client gets the portal session id, never the backend bearer token.
	if resp.SessionToken != "sess_1" {
		t.Fatalf("session_token = %q", resp.SessionToken)
	}
	if resp.User.ID != "v_1" {
		t.Fatalf("user = %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{}, testBrowsers())

	c, _ := newLoginContext(t, `{not json`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(context.Context, domain.Role, string, string) (*ports.Session, error) {
			t.Fatalf("invalid request must not reach the service")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, testBrowsers())

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret","role":"visitor"}`},
		{"bad email", `{"email":"not-an-email","password":"secret","role":"visitor"}`},
		{"missing password", `{"email":"v@x.com","role":"visitor"}`},
		{"unknown role", `{"email":"v@x.com","password":"secret","role":"admin"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newLoginContext(t, tt.body)
			err := h.Login(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := ""
	svc := &stubSessionService{
		logoutFn: func(_ context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}
	browsers := testBrowsers()
	h := NewAuthHandler(svc, browsers)

	before := browsers.For("sess_1", "tok_abc")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &ports.Session{ID: "sess_1", Token: "tok_abc"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK || cleared != "sess_1" {
		t.Fatalf("status = %d cleared = %q", rec.Code, cleared)
	}
	if browsers.For("sess_1", "tok_abc") == before {
		t.Fatalf("logout must drop the session's catalog browser")
	}
}

func TestAuthHandler_Logout_WithoutGuard(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{}, testBrowsers())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubSessionService{
		whoAmIFn: func(_ context.Context, token string) (*domain.Principal, error) {
			if token != "tok_abc" {
				t.Fatalf("token = %q", token)
			}
			return &domain.Principal{ID: "v_1", Name: "Visitor"}, nil
		},
	}
	h := NewAuthHandler(svc, testBrowsers())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &ports.Session{ID: "sess_1", Token: "tok_abc"})

	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	var p domain.Principal
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Visitor" {
		t.Fatalf("principal = %+v", p)
	}
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
	"github.com/Nowell222/green-path-ai/internal/core/service"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/db/memory"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/directory"
)

func authedService(t *testing.T, role domain.Role) *service.AuthService {
	t.Helper()
	store := memory.NewSessionStore()
	if err := store.Save(context.Background(), &domain.UserProfile{ID: "usr-1", Email: "u@greenpath.example", Role: role}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	dir := directory.New(nil)
	return service.NewAuthService(context.Background(), "t", dir, store, nil, 0, zerolog.Nop())
}

func anonymousService() *service.AuthService {
	return service.NewAuthService(context.Background(), "t", directory.New(nil), memory.NewSessionStore(), nil, 0, zerolog.Nop())
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", authedService(t, domain.RoleAdministrator))

	called := false
	mw := RBAC(domain.RoleAdministrator)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsMismatchedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", authedService(t, domain.RoleDriver))

	mw := RBAC(domain.RoleAdministrator)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_RejectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", anonymousService())

	mw := RBAC(domain.RoleAdministrator)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

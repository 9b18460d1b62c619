package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Nowell222/green-path-ai/internal/core/service"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/db/memory"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/directory"
)

func testRegistry() *service.Registry {
	dir := directory.New(directory.DemoAccounts())
	return service.NewRegistry(func(ctx context.Context, contextID string) *service.AuthService {
		return service.NewAuthService(ctx, contextID, dir, memory.NewSessionStore(), nil, 0, zerolog.Nop())
	}, 0)
}

func TestSessionContext_IssuesContextID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SessionContext(testRegistry())
	handler := mw(func(c echo.Context) error {
		if _, ok := Session(c); !ok {
			t.Fatalf("session service not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Header().Get(ContextIDHeader) == "" {
		t.Fatalf("no context ID issued")
	}
}

func TestSessionContext_ReusesProvidedID(t *testing.T) {
	e := echo.New()
	registry := testRegistry()
	mw := SessionContext(registry)

	var first, second *service.AuthService
	handler := mw(func(c echo.Context) error {
		svc, _ := Session(c)
		if first == nil {
			first = svc
		} else {
			second = svc
		}
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(ContextIDHeader, "tab-1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if got := rec.Header().Get(ContextIDHeader); got != "tab-1" {
			t.Fatalf("expected tab-1 echoed back, got %q", got)
		}
	}

	if first == nil || first != second {
		t.Fatalf("same context ID must resolve to the same service")
	}
	if registry.Len() != 1 {
		t.Fatalf("expected one live context, got %d", registry.Len())
	}
}

func TestSessionContext_RegistryBoundedUnderSpoofedIDs(t *testing.T) {
	e := echo.New()
	dir := directory.New(directory.DemoAccounts())
	registry := service.NewRegistry(func(ctx context.Context, contextID string) *service.AuthService {
		return service.NewAuthService(ctx, contextID, dir, memory.NewSessionStore(), nil, 0, zerolog.Nop())
	}, 32)
	mw := SessionContext(registry)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// A client inventing a fresh context ID per request must not grow the
	// registry past its bound.
	for i := 0; i < 500; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(ContextIDHeader, fmt.Sprintf("spoof-%d", i))
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if registry.Len() != 32 {
		t.Fatalf("expected registry capped at 32, got %d", registry.Len())
	}
}

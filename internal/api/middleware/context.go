package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/api/metrics"
	"github.com/Nowell222/green-path-ai/internal/core/service"
)

// ContextIDHeader carries the opaque browsing-context identifier. Each
// context owns at most one session.
const ContextIDHeader = "X-Context-ID"

// sessionKey is the echo context key under which the AuthService is stored.
const sessionKey = "session"

// SessionContext resolves the caller's browsing context and injects its
// AuthService into the request context. A missing context ID gets a freshly
// issued one, echoed back in the response header so the SPA can persist it.
func SessionContext(registry *service.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextID := strings.TrimSpace(c.Request().Header.Get(ContextIDHeader))
			if contextID == "" {
				contextID = uuid.NewString()
			}
			c.Response().Header().Set(ContextIDHeader, contextID)

			svc := registry.Get(c.Request().Context(), contextID)
			metrics.ActiveContexts.Set(float64(registry.Len()))

			c.Set(sessionKey, svc)
			return next(c)
		}
	}
}

// Session extracts the AuthService injected by SessionContext; the second
// return is false when the middleware did not run.
func Session(c echo.Context) (*service.AuthService, bool) {
	svc, ok := c.Get(sessionKey).(*service.AuthService)
	return svc, ok
}

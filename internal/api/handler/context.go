package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/api/middleware"
	"github.com/Nowell222/green-path-ai/internal/core/service"
)

// ctxSession extracts the AuthService injected by the SessionContext
// middleware. Its absence means the route was wired without the middleware,
// which is a server fault, not a client error.
func ctxSession(c echo.Context) (*service.AuthService, error) {
	svc, ok := middleware.Session(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "missing session context")
	}
	return svc, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// RBAC restricts an API endpoint to the given roles. Unlike the navigation
// guards, which silently redirect, API calls answer with plain status codes.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			svc, ok := Session(c)
			if !ok || !svc.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			role, _ := svc.Session().Role()
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

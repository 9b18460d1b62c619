package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/api/metrics"
	"github.com/Nowell222/green-path-ai/internal/core/routing"
)

// NavigationHandler answers "may the current identity view this screen, and
// if not, where does it go instead" for the SPA shell.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Decide evaluates the route guards for a path.
//
// @Summary      Decide whether a path may be rendered
// @Tags         navigation
// @Produce      json
// @Param        X-Context-ID  header    string  false  "Browsing context ID"
// @Param        path          query     string  true   "Requested screen path"
// @Success      200   {object}  decisionResponse
// @Failure      400   {object}  errorResponse
// @Router       /navigation/decision [get]
func (h *NavigationHandler) Decide(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "path is required"})
	}

	svc, err := ctxSession(c)
	if err != nil {
		return err
	}

	decision := routing.Decide(path, svc.Session())
	metrics.GuardDecisionsTotal.WithLabelValues(string(decision.Action)).Inc()

	return c.JSON(http.StatusOK, decisionResponse{
		Action:   string(decision.Action),
		Target:   decision.Target,
		NotFound: decision.NotFound,
	})
}

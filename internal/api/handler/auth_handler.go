package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/api/metrics"
	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// AuthHandler exposes login, logout, and session inspection for the SPA.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login authenticates the caller's browsing context.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Context-ID  header    string        false  "Browsing context ID"
// @Param        body          body      loginRequest  true   "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	svc, err := ctxSession(c)
	if err != nil {
		return err
	}

	start := time.Now()
	profile, err := svc.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrLoginSuperseded):
			metrics.LoginsTotal.WithLabelValues("superseded").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		default:
			// The generic message deliberately does not distinguish an unknown
			// identifier from a wrong password.
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		User:    profile,
		Landing: profile.Role.LandingPath(),
	})
}

// Logout ends the caller's session. Safe to call when already anonymous.
//
// @Summary      Log out
// @Tags         auth
// @Param        X-Context-ID  header  string  false  "Browsing context ID"
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	svc, err := ctxSession(c)
	if err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	if err := svc.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state of the caller's context.
//
// @Summary      Inspect the current session
// @Tags         auth
// @Produce      json
// @Param        X-Context-ID  header    string  false  "Browsing context ID"
// @Success      200   {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	svc, err := ctxSession(c)
	if err != nil {
		return err
	}

	sess := svc.Session()
	resp := sessionResponse{
		Authenticated: sess.Authenticated(),
		Busy:          svc.Busy(),
	}
	if sess.Profile != nil {
		resp.User = sess.Profile
		resp.RoleName = sess.Profile.Role.DisplayName()
	}
	return c.JSON(http.StatusOK, resp)
}

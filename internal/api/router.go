package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nowell222/green-path-ai/internal/api/handler"
	"github.com/Nowell222/green-path-ai/internal/api/middleware"
	"github.com/Nowell222/green-path-ai/internal/core/domain"
	"github.com/Nowell222/green-path-ai/internal/core/ports"
	"github.com/Nowell222/green-path-ai/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	registry *service.Registry,
	auditRepo ports.AuditRepository,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("greenpath"))

	sessionContext := middleware.SessionContext(registry)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler()
	auth := e.Group("/auth", sessionContext)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Navigation decisions ---
	navHandler := handler.NewNavigationHandler()
	e.GET("/navigation/decision", navHandler.Decide, sessionContext)

	// --- Audit trail (administrators only) ---
	auditHandler := handler.NewAuditHandler(auditRepo)
	e.GET("/audit/events", auditHandler.List,
		sessionContext, middleware.RBAC(domain.RoleAdministrator))

	// --- Health probes (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backend-server/accounts-api/internal/api/handler"
	"github.com/backend-server/accounts-api/internal/api/middleware"
	"github.com/backend-server/accounts-api/internal/core/ports"
	"github.com/backend-server/accounts-api/internal/core/service"
	"github.com/backend-server/accounts-api/internal/infrastructure/config"
	mongodb "github.com/backend-server/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/backend-server/accounts-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The auditor must already be started; the router only hands it to the
// account service.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, auditor ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)
	issuer := service.NewJWTIssuer(
		cfg.Token.AccessSecret,
		cfg.Token.RefreshSecret,
		cfg.Token.AccessTTL,
		cfg.Token.RefreshTTL,
	)
	accountService := service.NewAccountService(accountRepo, service.NewBcryptHasher(), issuer, tokenStore, auditor, log)
	accountHandler := handler.NewAccountHandler(accountService)
	authMiddleware := middleware.Auth(cfg.Token.AccessSecret)

	// --- Auth routes ---
	e.POST("/auth/register", accountHandler.Register)
	e.POST("/auth/login", accountHandler.Login)
	e.POST("/auth/refresh", accountHandler.Refresh)
	e.GET("/auth/me", accountHandler.Me, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/personal-cabinet/account-api/internal/api/handler"
	"github.com/personal-cabinet/account-api/internal/api/middleware"
	"github.com/personal-cabinet/account-api/internal/core/ports"
)

// RouterDeps carries everything the router needs; services are constructed by
// the caller so the pending-store backend stays a bootstrap decision.
type RouterDeps struct {
	Auth        ports.AuthService
	Profile     ports.ProfileService
	Mongo       *mongo.Database
	Redis       *redis.Client // nil when the in-process pending store is active
	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/auth")
	auth.POST("/register-step1", authHandler.RegisterStep1)
	auth.POST("/register-step2", authHandler.RegisterStep2)
	auth.POST("/login", authHandler.Login)
	auth.GET("/validate", authHandler.Validate)

	// --- Personal account routes (session required) ---
	userHandler := handler.NewUserHandler(deps.Profile)
	user := e.Group("/user", middleware.Auth(deps.Auth))
	user.GET("/profile", userHandler.Profile)
	user.GET("/birthday-check", userHandler.BirthdayCheck)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

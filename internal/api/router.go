package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/rakeshkurk50/EndWebsite/docs"
	"github.com/rakeshkurk50/EndWebsite/internal/api/handler"
	"github.com/rakeshkurk50/EndWebsite/internal/core/service"
	mongodb "github.com/rakeshkurk50/EndWebsite/internal/infrastructure/db/mongo"
	"github.com/rakeshkurk50/EndWebsite/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Debug)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The form may be hosted separately from the API.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("registration"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	userHandler := handler.NewUserHandler(userService, cfg.Debug)
	healthHandler := handler.NewHealthHandler(userRepo, cfg.Env)

	// --- User routes ---
	e.POST("/api/users", userHandler.Create)
	e.GET("/api/users", userHandler.List)

	// --- Diagnostics ---
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Static client form ---
	e.Static("/", "public")

	return e
}

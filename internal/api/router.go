package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/wheeltrip/assist-api/docs"
	"github.com/wheeltrip/assist-api/internal/api/handler"
	"github.com/wheeltrip/assist-api/internal/api/middleware"
	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/service"
	"github.com/wheeltrip/assist-api/internal/infrastructure/config"
	mongodb "github.com/wheeltrip/assist-api/internal/infrastructure/db/mongo"
	"github.com/wheeltrip/assist-api/internal/infrastructure/db/postgres"
	redisdb "github.com/wheeltrip/assist-api/internal/infrastructure/db/redis"
	"github.com/wheeltrip/assist-api/internal/infrastructure/journey"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pg *pgxpool.Pool, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("wheeltrip"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pg)
	luggageRepo := postgres.NewLuggageRepository(pg)
	tripRepo := mongodb.NewTripRepository(db)

	hasher := service.NewHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, log)
	tripService := service.NewTripService(tripRepo, log)
	luggageService := service.NewLuggageService(luggageRepo, log)

	planner := journey.NewClient(journey.Config(cfg.Journey), log)
	itineraryCache := redisdb.NewItineraryCache(rdb)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tripHandler := handler.NewTripHandler(tripService)
	luggageHandler := handler.NewLuggageHandler(luggageService)
	itineraryHandler := handler.NewItineraryHandler(planner, itineraryCache, log)

	auth := middleware.Auth(func(c echo.Context, token string) (*domain.Identity, error) {
		return authService.CheckToken(c.Request().Context(), token)
	})

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/check_token", authHandler.CheckToken)

	// --- User routes ---
	users := e.Group("/api/users", auth)
	users.GET("", userHandler.List)
	users.GET("/id/:id", userHandler.GetByID)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.GET("/:id/luggage", luggageHandler.ListByUser)

	// --- Trip routes ---
	trips := e.Group("/api/trips", auth)
	trips.POST("", tripHandler.Create, middleware.RBAC("client"))
	trips.GET("", tripHandler.List)
	trips.GET("/:id", tripHandler.Get)
	trips.PATCH("/:id/status", tripHandler.UpdateStatus)
	trips.DELETE("/:id", tripHandler.Delete)

	// --- Luggage routes ---
	luggage := e.Group("/api/luggage", auth)
	luggage.POST("", luggageHandler.Create)
	luggage.GET("/:id", luggageHandler.Get)
	luggage.PUT("/:id", luggageHandler.Update)
	luggage.DELETE("/:id", luggageHandler.Delete)

	// --- Itinerary routes ---
	e.GET("/api/itineraries", itineraryHandler.Search, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pg, db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

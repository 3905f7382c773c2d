package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/wheeltrip/assist-api/internal/api"
	"github.com/wheeltrip/assist-api/internal/infrastructure/config"
	mongodb "github.com/wheeltrip/assist-api/internal/infrastructure/db/mongo"
	"github.com/wheeltrip/assist-api/internal/infrastructure/db/postgres"
	redisdb "github.com/wheeltrip/assist-api/internal/infrastructure/db/redis"
	"github.com/wheeltrip/assist-api/pkg/logger"
)

// @title           WheelTrip Assist API
// @version         1.0
// @description     Transport-assistance backend: auth, users, trips, luggage, itineraries.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	tripRepo := mongodb.NewTripRepository(db)
	if err := tripRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure trip indexes")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(pool, db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

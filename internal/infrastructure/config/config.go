package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8080"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=30m"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Journey  JourneyConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/wheeltrip"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wheeltrip"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type JourneyConfig struct {
	BaseURL string `env:"JOURNEY_API_URL, default=https://api.sncf.com/v1/coverage/sncf"`
	APIKey  string `env:"JOURNEY_API_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}

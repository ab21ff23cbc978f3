// Package config provides configuration loading and management for the Parky application.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"

	"github.com/roguepikachu/parky/pkg/logger"
)

// Config holds environment configuration for the Parky application.
type Config struct {
	// ParkyPort is the port on which the Parky server runs.
	ParkyPort string `env:"PARKY_PORT"`

	// PostgresURL, if set, takes precedence over the individual Postgres fields.
	PostgresURL      string `env:"POSTGRES_URL"`
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE"`

	// RedisAddr is the redis host:port used by the cache-aside repository.
	RedisAddr string `env:"REDIS_ADDR"`
	// CacheEnabled toggles the redis cache-aside layer over the trail repository.
	CacheEnabled bool `env:"CACHE_ENABLED"`
	// CacheTTLSeconds is the TTL applied to cached trail entries.
	CacheTTLSeconds int `env:"CACHE_TTL_SECONDS" envDefault:"60"`

	// JWTSecret is the HMAC secret used to verify bearer tokens. The API only
	// consumes tokens; issuance lives with the identity provider.
	JWTSecret string `env:"JWT_SECRET"`
	// AdminRole is the role claim required by the admin-gated routes.
	AdminRole string `env:"ADMIN_ROLE" envDefault:"Admin"`
}

// Conf holds the global configuration for the Parky application.
var Conf Config

func loadDotEnv() {
	// Load .env file at the root of the project into environment if present.
	// Does not override existing environ variable
	path := os.Getenv("DOTENV_PATHS")
	if path != "" {
		err := godotenv.Load(strings.Split(path, ",")...)
		if err != nil {
			logger.Fatal(context.Background(), err.Error())
		}
	}
}

// InitConf initializes the global configuration by loading environment variables and .env files.
func InitConf() {
	loadDotEnv()

	if err := env.Parse(&Conf); err != nil {
		logger.Fatal(context.Background(), err.Error())
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "eventzen.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultCurrency    = "usd"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey string
	Currency        string

	CORSAllowedOrigins []string
}

// Load reads configuration from the environment. A .env file is applied
// first when present; real environment variables win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.StripeSecretKey = strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	cfg.Currency = strings.ToLower(getEnv("CURRENCY", defaultCurrency))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

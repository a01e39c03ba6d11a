// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port   string
	AppEnv string

	DatabaseURL string

	S3 S3Config

	MapsAPIKey      string
	FleetRoutingURL string
	MapsAPIURL      string
	UpstreamTimeout time.Duration

	JWTSecret string
	LogLevel  string
	LogFile   string
}

type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// Load builds a Config from environment variables. Call godotenv.Load first
// when a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "3001"),
		AppEnv:          getEnv("APP_ENV", "development"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MapsAPIKey:      os.Getenv("GOOGLE_MAPS_API_KEY"),
		FleetRoutingURL: getEnv("FLEET_ROUTING_URL", "https://fleetrouting.googleapis.com/v1"),
		MapsAPIURL:      getEnv("MAPS_API_URL", "https://maps.googleapis.com/maps/api"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		S3: S3Config{
			Region:          os.Getenv("AWS_S3_REGION"),
			AccessKeyID:     os.Getenv("AWS_S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_S3_SECRET_ACCESS_KEY"),
			Bucket:          os.Getenv("AWS_S3_BUCKET_NAME"),
		},
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			getEnv("DB_PORT", "5432"),
		)
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.UpstreamTimeout = timeout

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

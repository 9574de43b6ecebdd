package config

import (
	"os"
	"time"
)

type Config struct {
	DatabaseURL        string
	JWTSecret          string
	JWTExpiration      time.Duration
	ServerPort         string
	DataDir            string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	FrontendURL        string
}

func Load() *Config {
	return &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:      24 * time.Hour,
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DataDir:            getEnv("DATA_DIR", "data"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:8080/auth/google/callback"),
		FrontendURL:        getEnv("FRONTEND_URL", "/"),
	}
}

// RemoteConfigured reports whether a remote Postgres store is set up.
// An empty DATABASE_URL means the service runs in local-only mode.
func (c *Config) RemoteConfigured() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

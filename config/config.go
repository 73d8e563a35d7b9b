package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
	Environment string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "smartbank.db"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: %s is not a number, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}

func ValidateConfig(cfg *Config) {
	if len(cfg.JWTSecret) < 32 {
		log.Printf("WARNING: JWT_SECRET should be at least 32 characters for security")
	}
	if cfg.Environment == "production" && cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Fatal("JWT_SECRET must be set in production")
	}
	if cfg.TokenTTL <= 0 {
		log.Fatalf("TOKEN_TTL_MINUTES must be positive, got %v", cfg.TokenTTL)
	}
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	BaseURL         string // Public base URL used when building short links
	RedisURL        string
	Port            string
	JWTSecret       string // Secret key for JWT token signing
	AccessTokenTTL  int    // Access token lifetime in seconds
	RefreshTokenTTL int    // Refresh token lifetime in hours
	DefaultURLTTL   int    // Default short URL lifetime in hours
	ShortCodeLength int    // Length of generated short codes
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		RedisURL:        getEnv("REDIS_URL", ""),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AccessTokenTTL:  getEnvInt("ACCESS_TOKEN_TTL_SECONDS", 3600),
		RefreshTokenTTL: getEnvInt("REFRESH_TOKEN_TTL_HOURS", 24),
		DefaultURLTTL:   getEnvInt("DEFAULT_URL_TTL_HOURS", 48),
		ShortCodeLength: getEnvInt("SHORT_CODE_LENGTH", 8),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

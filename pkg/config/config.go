package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort          string
	Environment         string
	CatalogAPIURL       string
	CatalogFetchTimeout time.Duration
	PageSize            int
	RateLimitBurst      int
	RateLimitRefill     int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		CatalogAPIURL:       getEnv("CATALOG_API_URL", "http://localhost:9000"),
		CatalogFetchTimeout: time.Duration(getEnvAsInt("CATALOG_FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		PageSize:            getEnvAsInt("PAGE_SIZE", 12),
		RateLimitBurst:      getEnvAsInt("RATE_LIMIT_BURST", 60),
		RateLimitRefill:     getEnvAsInt("RATE_LIMIT_REFILL", 20),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

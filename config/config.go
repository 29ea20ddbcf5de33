package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Admin API
	AdminAPIKey string
	// Other
	AllowedOrigins []string
	PublicBaseURL  string
}

// Load reads configuration from the environment. The admin API key has no
// safe default, so the process refuses to start without one.
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	adminAPIKey := os.Getenv("ADMIN_API_KEY")
	if adminAPIKey == "" {
		log.Fatal("[CRITICAL] ADMIN_API_KEY environment variable is required")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "visa_db"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		AdminAPIKey:    adminAPIKey,
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	ListenAddr  string
	GinMode     string
	LogLevel    string
	Environment string
}

// Load reads configuration from the environment. Outside production a
// local .env file is merged in first so missing variables fall through to
// the defaults below.
func Load() *Config {
	if os.Getenv("ENVIRONMENT") != "prod" {
		_ = godotenv.Load()
	}

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "planit"),
		DBPassword:  getEnv("DB_PASSWORD", "planit"),
		DBName:      getEnv("DB_NAME", "planit"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "dev"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

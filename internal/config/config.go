package config

import (
	"os"
	"strconv"

	"gym-manager/internal/models"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Storage configuration
	DataPath string

	// Dashboard configuration
	DefaultWarnDays int
	ServiceName     string
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:            getEnv("PORT", "8080"),
		Mode:            getEnv("GIN_MODE", "debug"),
		DataPath:        getEnv("DATA_PATH", "abonnements.csv"),
		DefaultWarnDays: getEnvInt("DEFAULT_WARN_DAYS", 7),
		ServiceName:     getEnv("SERVICE_NAME", "Gym Manager"),
	}

	// Keep the default inside the slider bounds.
	if AppConfig.DefaultWarnDays < models.MinWarnDays || AppConfig.DefaultWarnDays > models.MaxWarnDays {
		AppConfig.DefaultWarnDays = 7
	}

	return nil
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

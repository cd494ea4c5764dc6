package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultEnvironment = "development"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")

	if port == "" {
		port = defaultPort
	}

	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", port)
	}

	if environment == "" {
		environment = defaultEnvironment
	}

	return &Config{
		Port:        port,
		Environment: environment,
	}, nil
}

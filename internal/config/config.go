package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL = "hotel.db"
	defaultHTTPAddr    = ":8080"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
}

// Load reads configuration from the environment, picking up a local .env
// file first when one exists.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

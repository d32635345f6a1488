// Package config reads process configuration from the environment, loading a
// .env file first when one is present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	Addr       string
	SurveyFile string
}

func Load() Config {
	// Missing .env is fine; real environment variables still win.
	_ = godotenv.Load()

	return Config{
		DBPath:     getenv("SURVEY_DB_PATH", "survey.db"),
		Addr:       getenv("ADDR", ":8080"),
		SurveyFile: os.Getenv("SURVEY_FILE"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Settings struct {
	DatabaseDriver string
	DatabaseDSN    string
	Port           string
	AutoMigrate    bool
}

// LoadEnv reads a .env file into the process environment when one exists.
// Variables already set win over the file.
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil && !os.IsNotExist(err) {
		Logger.WithError(err).Warn("Failed to load .env file")
	}
}

func Load() Settings {
	return Settings{
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		Port:           getEnv("PORT", "8080"),
		AutoMigrate:    strings.EqualFold(os.Getenv("AUTO_MIGRATE"), "true"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

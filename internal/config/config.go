package config

import (
	"log/slog"
	"os"
)

type Config struct {
	DBPath          string
	AssistantAPIKey string
	AssistantModel  string
	Fast            bool // disable the artificial latencies
	Debug           bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBPath:          getEnv("FLAVORDASH_DB_PATH", "./flavordash.db"),
		AssistantAPIKey: os.Getenv("ASSISTANT_API_KEY"),
		AssistantModel:  getEnv("ASSISTANT_MODEL", ""),
		Fast:            getEnv("FLAVORDASH_FAST", "false") == "true",
		Debug:           getEnv("FLAVORDASH_DEBUG", "false") == "true",
	}

	if cfg.AssistantAPIKey == "" {
		slog.Warn("ASSISTANT_API_KEY not set. Chef Bot will answer with its offline fallback.")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

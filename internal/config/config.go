package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	SteamAPIKey   string
	FaceitAPIKey  string
	SessionSecret string
	DBPath        string
	UploadDir     string
	ServerPort    string
	LogLevel      string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		SteamAPIKey:   getEnv("STEAM_API_KEY", ""),
		FaceitAPIKey:  getEnv("FACEIT_API_KEY", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		DBPath:        getEnv("DB_PATH", "tracker.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	for _, required := range []struct {
		key   string
		value string
	}{
		{"STEAM_API_KEY", cfg.SteamAPIKey},
		{"FACEIT_API_KEY", cfg.FaceitAPIKey},
		{"SESSION_SECRET", cfg.SessionSecret},
	} {
		if required.value == "" {
			return nil, fmt.Errorf("%s is required", required.key)
		}
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("upload_dir", cfg.UploadDir).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

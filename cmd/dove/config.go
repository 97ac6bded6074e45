package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/dove-guide/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type DoveConfig struct {
	DatasetPath     string
	DataMappingPath string
	LogLevel        slog.Level
}

func (as *AppConfig) Load() (*DoveConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/dove/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	dsPath := os.Getenv("DOVE_CSV_PATH")
	if len(os.Args) > 1 {
		dsPath = os.Args[1]
	}
	if dsPath == "" {
		return nil, fmt.Errorf("DOVE_CSV_PATH environment variable is not set")
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	return &DoveConfig{
		DatasetPath:     dsPath,
		DataMappingPath: os.Getenv("MAPPING_CONFIG_PATH"),
		LogLevel:        level,
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

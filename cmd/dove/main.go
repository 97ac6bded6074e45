package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/dove-guide/internal/summary"
	"github.com/DjordjeVuckovic/dove-guide/pkg/dove"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	reader, err := newReader(cfg)
	if err != nil {
		slog.Error("failed to create tower reader", "error", err)
		os.Exit(2)
	}

	start := time.Now()
	towers, err := reader.ReadFile(cfg.DatasetPath)
	if err != nil {
		logReadError(cfg.DatasetPath, err)
		os.Exit(1)
	}
	slog.Info("Tower list read",
		"path", cfg.DatasetPath,
		"towers", len(towers),
		"duration", time.Since(start),
	)

	if err := summary.WriteTable(summary.Summarize(reader.Mapping().Dataset, towers), os.Stdout); err != nil {
		slog.Error("failed to write summary", "error", err)
		os.Exit(1)
	}
}

func newReader(cfg *DoveConfig) (*dove.Reader, error) {
	if cfg.DataMappingPath == "" {
		return dove.NewReader()
	}

	slog.Info("Using custom data mapping", "path", cfg.DataMappingPath)
	mapping, err := dove.LoadMappingFile(cfg.DataMappingPath)
	if err != nil {
		return nil, err
	}
	return dove.NewReader(dove.WithMapping(mapping))
}

func logReadError(path string, err error) {
	var pe *dove.ParseError
	var ioe *dove.IOError
	switch {
	case errors.As(err, &pe):
		slog.Error("not a valid tower list",
			"path", path,
			"row", pe.Row,
			"line", pe.Line,
			"column", pe.Column,
			"error", err,
		)
	case errors.As(err, &ioe):
		slog.Error("failed to read tower list", "path", path, "op", ioe.Op, "error", ioe.Err)
	default:
		slog.Error("failed to read tower list", "path", path, "error", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"github.com/DjordjeVuckovic/dove-guide/pkg/dove"
	"github.com/DjordjeVuckovic/dove-guide/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := run(*outputDir); err != nil {
		slog.Error("schema generation failed", "error", err)
		os.Exit(1)
	}
}

func run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	schemaJSON, err := schema.NewGenerator().GenerateJSONSchema(datamapping.DataMapper{})
	if err != nil {
		return fmt.Errorf("generate DataMapper schema: %w", err)
	}

	jsonFile := filepath.Join(outputDir, "datamapping-v1.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("write JSON schema: %w", err)
	}
	slog.Info("generated JSON schema", "path", jsonFile)

	// The embedded tower mapping doubles as the example document.
	if _, err := dove.TowersMapping(); err != nil {
		return fmt.Errorf("default tower mapping: %w", err)
	}
	yamlFile := filepath.Join(outputDir, "datamapping-example.yaml")
	if err := os.WriteFile(yamlFile, dove.TowersMappingYAML(), 0644); err != nil {
		return fmt.Errorf("write YAML example: %w", err)
	}
	slog.Info("generated YAML example", "path", yamlFile)

	return nil
}

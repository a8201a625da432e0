package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a report dumped to disk by the test runner. The format is
// selected by file extension: .json, .yaml or .yml.
func Load(path string) (Report, error) {
	var rprt Report

	data, err := os.ReadFile(path)
	if err != nil {
		return rprt, fmt.Errorf("can't read report file %s: %w", path, err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &rprt); err != nil {
			return rprt, fmt.Errorf("can't decode JSON report %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rprt); err != nil {
			return rprt, fmt.Errorf("can't decode YAML report %s: %w", path, err)
		}
	default:
		return rprt, fmt.Errorf("unsupported report format %q, expected .json, .yaml or .yml", ext)
	}

	return rprt, nil
}

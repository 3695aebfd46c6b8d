package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Pointer
// fields distinguish "absent" from zero so a partial file only overrides
// what it names.
type FileConfig struct {
	StoragePath       *string `json:"storage_path" yaml:"storage_path"`
	ByteLimit         *int    `json:"byte_limit" yaml:"byte_limit"`
	DedupeSearchLimit *int    `json:"dedupe_search_limit" yaml:"dedupe_search_limit"`
	PreviewLength     *int    `json:"preview_length" yaml:"preview_length"`
	LogLevel          *string `json:"log_level" yaml:"log_level"`
	LogFormat         *string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with values loaded from a JSON or YAML file.
// Files ending in .yaml or .yml are decoded as YAML, everything else as
// JSON. An empty path loads nothing.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.StoragePath != nil {
		cfg.StoragePath = *fc.StoragePath
	}
	if fc.ByteLimit != nil {
		cfg.ByteLimit = *fc.ByteLimit
	}
	if fc.DedupeSearchLimit != nil {
		cfg.DedupeSearchLimit = *fc.DedupeSearchLimit
	}
	if fc.PreviewLength != nil {
		cfg.PreviewLength = *fc.PreviewLength
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}

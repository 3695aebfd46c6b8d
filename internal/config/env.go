package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by parseEnv.
const (
	EnvConfig            = "CLIPDIR_CONFIG"
	EnvStoragePath       = "CLIPDIR_STORAGE_PATH"
	EnvByteLimit         = "CLIPDIR_BYTE_LIMIT"
	EnvDedupeSearchLimit = "CLIPDIR_DEDUPE_SEARCH_LIMIT"
	EnvPreviewLength     = "CLIPDIR_PREVIEW_LENGTH"
	EnvLogLevel          = "CLIPDIR_LOG_LEVEL"
	EnvLogFormat         = "CLIPDIR_LOG_FORMAT"
)

// parseEnv overlays cfg with non-empty CLIPDIR_* variables.
func parseEnv(cfg *Config) error {
	if v := os.Getenv(EnvStoragePath); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvByteLimit, &cfg.ByteLimit},
		{EnvDedupeSearchLimit, &cfg.DedupeSearchLimit},
		{EnvPreviewLength, &cfg.PreviewLength},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}
	return nil
}

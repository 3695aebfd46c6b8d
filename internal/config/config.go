package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clipdir/internal/filex"
	"github.com/dmitrijs2005/clipdir/internal/logging"
)

// Config holds runtime settings for clipdir.
//
// Fields:
//   - StoragePath: directory holding one file per clipboard entry.
//   - ByteLimit: largest entry accepted by store, in bytes.
//   - DedupeSearchLimit: how many older entries store compares against.
//   - PreviewLength: how many bytes of a text entry list reads.
//   - LogLevel, LogFormat: see logging.New.
//
// Config is passed by value into the core; it is never kept in package state.
type Config struct {
	StoragePath       string
	ByteLimit         int
	DedupeSearchLimit int
	PreviewLength     int
	LogLevel          string
	LogFormat         string
}

const (
	DefaultByteLimit         = 5 * 1024 * 1024
	DefaultDedupeSearchLimit = 1000
	DefaultPreviewLength     = 100
)

// LoadDefaults populates c with sensible defaults. The storage path falls
// back to a relative "clipdir" directory if no home directory can be found.
func (c *Config) LoadDefaults() {
	dir, err := filex.DataDir()
	if err != nil {
		dir = filex.AppName
	}
	c.StoragePath = dir
	c.ByteLimit = DefaultByteLimit
	c.DedupeSearchLimit = DefaultDedupeSearchLimit
	c.PreviewLength = DefaultPreviewLength
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// Validate reports settings the core cannot work with. Zero limits are
// allowed: a zero byte limit refuses every non-blank entry and a zero
// preview length lists text entries with an empty preview.
func (c Config) Validate() error {
	switch {
	case c.StoragePath == "":
		return errors.New("storage path is empty")
	case c.ByteLimit < 0:
		return fmt.Errorf("byte limit must not be negative, got %d", c.ByteLimit)
	case c.DedupeSearchLimit < 0:
		return fmt.Errorf("dedupe search limit must not be negative, got %d", c.DedupeSearchLimit)
	case c.PreviewLength < 0:
		return fmt.Errorf("preview length must not be negative, got %d", c.PreviewLength)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the file at path (if non-empty) and from the environment. Later sources
// take precedence over earlier ones; command-line flags are applied on top
// by the caller.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	cfg.LoadDefaults()
	if err := parseFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, filepath.Join("/data", "clipdir"), c.StoragePath)
	assert.Equal(t, 5242880, c.ByteLimit)
	assert.Equal(t, 1000, c.DedupeSearchLimit)
	assert.Equal(t, 100, c.PreviewLength)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsWithoutFileOrEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	for _, k := range []string{EnvStoragePath, EnvByteLimit, EnvDedupeSearchLimit, EnvPreviewLength, EnvLogLevel, EnvLogFormat} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"storage_path": "/from/file", "preview_length": 40}`)
	t.Setenv(EnvStoragePath, "/from/env")
	t.Setenv(EnvPreviewLength, "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.StoragePath)
	assert.Equal(t, 40, cfg.PreviewLength)
}

func TestValidate(t *testing.T) {
	valid := Config{StoragePath: "/x", ByteLimit: 1, DedupeSearchLimit: 0, PreviewLength: 1}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "empty path", mutate: func(c *Config) { c.StoragePath = "" }},
		{name: "zero byte limit", mutate: func(c *Config) { c.ByteLimit = 0 }, ok: true},
		{name: "negative byte limit", mutate: func(c *Config) { c.ByteLimit = -1 }},
		{name: "negative dedupe limit", mutate: func(c *Config) { c.DedupeSearchLimit = -1 }},
		{name: "zero preview", mutate: func(c *Config) { c.PreviewLength = 0 }, ok: true},
		{name: "negative preview", mutate: func(c *Config) { c.PreviewLength = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if tt.ok {
				require.NoError(t, c.Validate())
			} else {
				require.Error(t, c.Validate())
			}
		})
	}
}

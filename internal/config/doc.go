// Package config loads runtime configuration for clipdir.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with --config / CLIPDIR_CONFIG.
//  3. CLIPDIR_* environment variables (see parseEnv).
//  4. Command-line flags explicitly set by the user, applied by package cli.
//
// # File schema
//
//	{
//	  "storage_path": "/home/me/.local/share/clipdir",
//	  "byte_limit": 5242880,
//	  "dedupe_search_limit": 1000,
//	  "preview_length": 100,
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// The same keys are accepted in YAML. Keys that are absent keep the value
// from the previous source.
package config

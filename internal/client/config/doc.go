// Package config loads runtime configuration for the notekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables with the NOTEKEEPER_ prefix.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database DSN: a SQLite path, ":memory:", or a postgres:// URL
//	-l string   log level (debug, info, warn, error)
//	-w string   comma-separated slices mirrored to storage (user,notes)
//
// # JSON schema
//
//	{
//	  "database_dsn": "notes.db",
//	  "log_level": "info",
//	  "mirror": ["user", "notes"]
//	}
//
// # Environment
//
//	NOTEKEEPER_DATABASE_DSN, NOTEKEEPER_LOG_LEVEL, NOTEKEEPER_MIRROR
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// note-server binary. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the undo window and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the note database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UndoWindow is how long the single undo slot stays valid after a
	// soft-delete or restore (e.g. "2500ms", "5s").
	// Env: APP_UNDO_WINDOW
	UndoWindow time.Duration `env:"UNDO_WINDOW"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects and configures the database driver. A value starting
	// with "postgres://" or "postgresql://" selects PostgreSQL; anything
	// else is treated as a SQLite file path. The file is created on first
	// start if it does not exist.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the read/write timeouts of the HTTP server.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles, merges, and validates the server
// configuration from all supported sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// defaultStructuredConfig returns the built-in fallback values used for any
// field no other source provided.
func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			UndoWindow: 2500 * time.Millisecond,
			Version:    "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "notes.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

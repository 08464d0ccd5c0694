// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// ClientConfig is the top-level configuration container for the note-client
// terminal binary.
type ClientConfig struct {
	// App holds client application settings (theme, log sink, version).
	App ClientApp `envPrefix:"APP_"`

	// Adapter holds settings for the HTTP connection to the note server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// ClientApp holds client application-level configuration values.
type ClientApp struct {
	// Theme selects the initial color scheme of the terminal UI,
	// "dark" or "light". The theme can be toggled at runtime.
	// Env: APP_THEME
	Theme string `env:"THEME"`

	// LogPath is the file the client logger appends to. The terminal UI
	// owns stdout, so logs must go elsewhere.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// ClientAdapter holds configuration for the client's connection to the server.
type ClientAdapter struct {
	// HTTPAddress is the base address of the note server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request the client sends to the server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig assembles, merges, and validates the client configuration
// from all supported sources.
func GetClientConfig() (*ClientConfig, error) {
	return newClientConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Theme:   "dark",
			LogPath: "note-client.log",
			Version: "dev",
		},
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration assembled from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the secret used to seal the local session and the page size
	// requested from the server.
	App App `envPrefix:"APP_"`

	// Storage holds the cache database and secret store locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the quest server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the periodic refresh and reminder intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SecretKey is the passphrase the secret store key is derived from.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// PageLimit is the number of items requested per page.
	// Env: APP_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Storage groups the client persistence settings.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Secrets Secrets `envPrefix:"SECRETS_"`
}

// DB holds the SQLite cache location.
type DB struct {
	// DSN is the SQLite file path, optionally with query parameters
	// (e.g. "quests.db?_journal_mode=WAL").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Secrets holds the sealed session file location.
type Secrets struct {
	// Path is the file the encrypted session is written to.
	// Env: STORAGE_SECRETS_PATH
	Path string `env:"PATH"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the quest API, with or without scheme
	// (e.g. "https://quests.example.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job intervals.
type Workers struct {
	// RefreshInterval is the period of the background refresh tick.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// NotificationInterval is the period of the reminder job.
	// Env: WORKERS_NOTIFICATION_INTERVAL
	NotificationInterval time.Duration `env:"NOTIFICATION_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// EnvPrefix is prepended to every environment variable read by the console.
const EnvPrefix = "WORKHUB_"

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and defaults.
type StructuredConfig struct {
	// App holds console-level settings.
	App App `envPrefix:"APP_"`

	// API holds the WorkHub backend address and transport budget.
	API API `envPrefix:"API_"`

	// Storage holds the local database used to persist the session.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: WORKHUB_CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds console-level settings.
type App struct {
	// LoginRoute is the route the console navigates to when the backend
	// rejects the session (HTTP 401).
	// Env: WORKHUB_APP_LOGIN_ROUTE
	LoginRoute string `env:"LOGIN_ROUTE"`

	// LogFile is the file the console logs into. Empty means "logs" next to
	// the executable.
	// Env: WORKHUB_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// API holds the backend address and transport settings.
type API struct {
	// BaseURL is the root of the WorkHub REST API
	// (e.g. "http://localhost:8080/api").
	// Env: WORKHUB_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single request; when it elapses the call fails
	// as a network error.
	// Env: WORKHUB_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path (e.g. "workhub.db").
	// Env: WORKHUB_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background worker settings.
type Workers struct {
	// SessionCheckInterval is how often the session watcher inspects the
	// token expiry.
	// Env: WORKHUB_WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [DB.Driver].
const (
	// DriverSQLite3 is the cgo SQLite driver (github.com/mattn/go-sqlite3).
	DriverSQLite3 = "sqlite3"
	// DriverSQLite is the pure-Go SQLite driver (modernc.org/sqlite).
	DriverSQLite = "sqlite"
	// DriverPgx is the PostgreSQL driver (github.com/jackc/pgx/v5/stdlib).
	DriverPgx = "pgx"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging flags, environment variables, an optional config file
// and [Defaults].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote placeholder API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background execution settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Placeholder holds the settings of the local placeholder API server.
	Placeholder Placeholder `envPrefix:"PLACEHOLDER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the client table.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3", "sqlite" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For SQLite it is a file path or
	// ":memory:"; for pgx a postgres:// URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the remote users API.
type Adapter struct {
	// BaseURL is the root of the placeholder API (the client calls
	// BaseURL + "/users").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background execution.
type Workers struct {
	// PoolSize is the number of goroutines executing registry operations.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// QueueSize is the capacity of the pending operation queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// SyncInterval enables periodic remote sync when positive.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Placeholder holds the listen address of the local placeholder API.
type Placeholder struct {
	// Address is the host:port the placeholder server listens on.
	// Env: PLACEHOLDER_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds logging configuration.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is where the interactive client writes its log.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults returns the values used for every field no other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite3,
				DSN:    "clients.db",
			},
		},
		Adapter: Adapter{
			BaseURL:        "https://jsonplaceholder.typicode.com",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			PoolSize:  2,
			QueueSize: 64,
		},
		Placeholder: Placeholder{
			Address: "localhost:8081",
		},
		Log: Log{
			Level: "info",
			File:  "clients.log",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. flags may be nil when the caller has no command
// line (tests, embedding).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

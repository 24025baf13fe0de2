// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// openleaf client. It aggregates all sub-configurations and is populated by
// merging defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and token settings, the log file location and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the loopback API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the aggregation provider endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds key-derivation tuning.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Sync holds the transaction sync engine tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL is how long a login stays valid; it is written to the
	// profile's session expiry and used as the API token lifetime.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// TokenSignKey signs loopback API session tokens. When empty a random
	// key is generated per process, which invalidates tokens on restart.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// BcryptCost is the master password hashing cost.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogFile is the path of the client log file. Relative paths are
	// resolved against the executable directory.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the application version exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the loopback API.
type Server struct {
	// HTTPAddress is the TCP address the loopback API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the aggregation provider client.
type Adapter struct {
	// Environment selects the provider host: sandbox, development or production.
	// Env: ADAPTER_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// BaseURL overrides the host derived from Environment.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ClientName is shown to the user inside the provider's link widget.
	// Env: ADAPTER_CLIENT_NAME
	ClientName string `env:"CLIENT_NAME"`

	// CountryCodes limits institutions offered by the link widget.
	// Env: ADAPTER_COUNTRY_CODES (comma separated)
	CountryCodes []string `env:"COUNTRY_CODES" envSeparator:","`

	// Language of the link widget.
	// Env: ADAPTER_LANGUAGE
	Language string `env:"LANGUAGE"`
}

// Crypto holds key-derivation settings of the vault.
type Crypto struct {
	// KDFIterations is the PBKDF2 round count; never below 100000.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Sync holds tuning of the transaction sync engine.
type Sync struct {
	// PageSize is the number of transactions requested per page (1..500).
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxRestarts bounds how many times one pass is restarted after the
	// provider reports a mutation during pagination.
	// Env: SYNC_MAX_RESTARTS
	MaxRestarts int `env:"MAX_RESTARTS"`

	// ReadyPollInterval is the fixed delay between backfill status probes.
	// Env: SYNC_READY_POLL_INTERVAL
	ReadyPollInterval time.Duration `env:"READY_POLL_INTERVAL"`

	// ReadyTimeout bounds the whole wait for the initial backfill.
	// Env: SYNC_READY_TIMEOUT
	ReadyTimeout time.Duration `env:"READY_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync of all links.
	// A negative value disables the background sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in the following order, later
// sources overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags (args, without the program name)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

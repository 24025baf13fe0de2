// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	EnvironmentSandbox     = "sandbox"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	// MinKDFIterations is the lowest PBKDF2 round count accepted.
	MinKDFIterations = 100_000

	// MaxPageSize is the largest transactions page the provider serves.
	MaxPageSize = 500
)

var environmentHosts = map[string]string{
	EnvironmentSandbox:     "https://sandbox.plaid.com",
	EnvironmentDevelopment: "https://development.plaid.com",
	EnvironmentProduction:  "https://production.plaid.com",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:  30 * 24 * time.Hour,
			TokenIssuer: "openleaf",
			BcryptCost:  10,
			LogFile:     "openleaf.log",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "openleaf.db",
			},
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8765",
			RequestTimeout: 5 * time.Minute,
		},
		Adapter: Adapter{
			Environment:    EnvironmentSandbox,
			RequestTimeout: 30 * time.Second,
			ClientName:     "OpenLeaf",
			CountryCodes:   []string{"US"},
			Language:       "en",
		},
		Crypto: Crypto{
			KDFIterations: MinKDFIterations,
		},
		Sync: Sync{
			PageSize:          MaxPageSize,
			MaxRestarts:       5,
			ReadyPollInterval: time.Second,
			ReadyTimeout:      2 * time.Minute,
		},
		Workers: Workers{
			SyncInterval: 15 * time.Minute,
		},
	}
}

// ResolveBaseURL returns BaseURL when set, otherwise the host of Environment.
func (a Adapter) ResolveBaseURL() (string, error) {
	if a.BaseURL != "" {
		return a.BaseURL, nil
	}
	host, ok := environmentHosts[a.Environment]
	if !ok {
		return "", ErrUnknownEnvironment
	}
	return host, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. All violations are reported
// together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.SessionTTL <= 0 || cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: session ttl and token issuer are required", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs))
	}

	if _, err := cfg.Adapter.ResolveBaseURL(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err))
	}
	if cfg.Adapter.RequestTimeout <= 0 || len(cfg.Adapter.CountryCodes) == 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout and country codes are required", ErrInvalidAdapterConfigs))
	}

	if cfg.Crypto.KDFIterations < MinKDFIterations {
		errs = append(errs, fmt.Errorf("%w: kdf iterations below %d", ErrInvalidCryptoConfigs, MinKDFIterations))
	}

	if cfg.Sync.PageSize < 1 || cfg.Sync.PageSize > MaxPageSize {
		errs = append(errs, fmt.Errorf("%w: page size must be in range 1..%d", ErrInvalidSyncConfigs, MaxPageSize))
	}
	if cfg.Sync.MaxRestarts < 0 {
		errs = append(errs, fmt.Errorf("%w: negative max restarts", ErrInvalidSyncConfigs))
	}
	if cfg.Sync.ReadyPollInterval <= 0 || cfg.Sync.ReadyTimeout < cfg.Sync.ReadyPollInterval {
		errs = append(errs, fmt.Errorf("%w: ready timeout must not be shorter than poll interval", ErrInvalidSyncConfigs))
	}

	if cfg.Workers.SyncInterval == 0 {
		errs = append(errs, fmt.Errorf("%w: zero sync interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

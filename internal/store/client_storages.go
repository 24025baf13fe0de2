// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
)

// ClientStorages groups the client storage layer: the database handle
// (which is also the [TxManager]) and the repositories working on the pool.
type ClientStorages struct {
	*DB
	Repositories

	lock *flock.Flock
}

// NewClientStorages initialises the client storage layer:
//  1. For a file-based SQLite database, takes an exclusive lock next to the
//     file so a second client process fails fast with [ErrStorageLocked].
//  2. Opens the database with the configured driver.
//  3. Runs pending schema migrations.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var lock *flock.Flock
	if cfg.DB.Driver == config.DriverSQLite {
		if path, ok := sqliteFilePath(cfg.DB.DSN); ok {
			lock = flock.New(path + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return nil, fmt.Errorf("%w: acquire data lock: %w", ErrStorage, err)
			}
			if !locked {
				return nil, ErrStorageLocked
			}
		}
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		unlock(lock)
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		unlock(lock)
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorage, err)
	}

	return &ClientStorages{
		DB:           db,
		Repositories: db.Repositories(),
		lock:         lock,
	}, nil
}

// Close closes the database and releases the data lock.
func (s *ClientStorages) Close() error {
	var errs []error
	if err := s.DB.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrStorage, cfg.Driver)
	}
}

func unlock(lock *flock.Flock) {
	if lock != nil {
		_ = lock.Unlock()
	}
}

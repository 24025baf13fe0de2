// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/migrations"
)

const (
	maxTxAttempts  = 3
	txRetryBackoff = 50 * time.Millisecond
)

// DB is a database/sql pool bound to one driver, with the statement builder
// and error classifier matching that driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Repositories returns repositories working directly on the pool; every
// statement commits on its own.
func (db *DB) Repositories() Repositories {
	return newRepositories(db.querier(db.DB))
}

// InTx implements [TxManager]. A transaction failing with a retryable
// error (busy database, serialization failure) is replayed from the start
// up to a bounded number of attempts.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = withTx(ctx, db.DB, nil, func(ctx context.Context, tx DBTX) error {
			return fn(ctx, newRepositories(db.querier(tx)))
		})
		if err == nil || db.errorClassificator.Classify(err) != Retryable || attempt == maxTxAttempts {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.InTx").
			Int("attempt", attempt).
			Msg("retryable storage error, replaying transaction")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * txRetryBackoff):
		}
	}

	return err
}

func (db *DB) querier(conn DBTX) querier {
	return querier{
		db:         conn,
		sb:         db.builder,
		classifier: db.errorClassificator,
	}
}

// querier is the shared state of all repositories.
type querier struct {
	db         DBTX
	sb         sq.StatementBuilderType
	classifier ErrorClassificator
}

func newRepositories(q querier) Repositories {
	return Repositories{
		Users:        &userRepository{q},
		Settings:     &settingsRepository{q},
		Links:        &linkRepository{q},
		Accounts:     &accountRepository{q},
		Transactions: &transactionRepository{q},
	}
}

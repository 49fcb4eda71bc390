// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/migrations"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is a pooled database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver and applies the pool
// settings.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

// retry runs op again while it fails with an error classified as
// [Retryable], up to maxAttempts times. Only idempotent reads use it.
func (db *DB) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return err
}

// uniqueError translates a unique violation into the sentinel of the
// violated column. It returns nil when err is not a unique violation.
func (db *DB) uniqueError(err error) error {
	column, ok := db.errorClassificator.UniqueViolation(err)
	if !ok {
		return nil
	}

	switch column {
	case "email":
		return ErrEmailAlreadyExists
	case "id_number":
		return ErrIDNumberAlreadyExists
	case "member_code":
		return ErrMemberCodeAlreadyExists
	default:
		return fmt.Errorf("%w: %s", ErrUniqueViolation, column)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

type throttleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThrottleRepository constructs a [ThrottleRepository] over the
// "login_throttles" table.
func NewThrottleRepository(db *DB, logger *logger.Logger) ThrottleRepository {
	logger.Debug().Msg("creating throttle repository")
	return &throttleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *throttleRepository) GetThrottle(ctx context.Context, key string) (models.LoginThrottle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(throttleColumns...).
		From(loginThrottleTable).
		Where(sq.Eq{"throttle_key": key}).
		ToSql()
	if err != nil {
		return models.LoginThrottle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var throttle models.LoginThrottle
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&throttle.Key,
			&throttle.FailedCount,
			&throttle.LockUntil,
			&throttle.UpdatedAt,
		)
	})

	switch {
	case err == nil:
		return throttle, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.LoginThrottle{Key: key}, nil
	default:
		log.Err(err).Str("func", "*throttleRepository.GetThrottle").Msg("error selecting throttle")
		return models.LoginThrottle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *throttleRepository) IncrementFailures(ctx context.Context, key string, at time.Time) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.incrementThrottle(key, at).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*throttleRepository.IncrementFailures").Msg("error incrementing throttle")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}

func (r *throttleRepository) LockThrottle(ctx context.Context, key string, until, at time.Time) error {
	query, args, err := r.db.builder.Update(loginThrottleTable).
		Set("lock_until", until).
		Set("updated_at", at).
		Where(sq.Eq{"throttle_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*throttleRepository.LockThrottle", query, args)
}

// ResetThrottle forgets every failure recorded for key.
func (r *throttleRepository) ResetThrottle(ctx context.Context, key string) error {
	query, args, err := r.db.builder.Delete(loginThrottleTable).
		Where(sq.Eq{"throttle_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*throttleRepository.ResetThrottle", query, args)
}

func (r *throttleRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing throttle statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

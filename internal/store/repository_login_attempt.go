// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

type loginAttemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoginAttemptRepository constructs a [LoginAttemptRepository] over the
// "login_attempts" audit table.
func NewLoginAttemptRepository(db *DB, logger *logger.Logger) LoginAttemptRepository {
	logger.Debug().Msg("creating login attempt repository")
	return &loginAttemptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *loginAttemptRepository) SaveLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	query, args, err := r.db.builder.Insert(loginAttemptTable).
		Columns("user_id", "email", "ip_address", "user_agent", "success", "failure_reason", "created_at").
		Values(attempt.UserID, attempt.Email, attempt.IPAddress, attempt.UserAgent, attempt.Success, attempt.FailureReason, attempt.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*loginAttemptRepository.SaveLoginAttempt").Msg("error saving login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

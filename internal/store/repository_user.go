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

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both the postgres and the sqlite dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user and returns it with the database-assigned id.
//
// Error handling:
//   - unique violation on email / id_number → [ErrEmailAlreadyExists] /
//     [ErrIDNumberAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertUser(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if uniqueErr := r.db.uniqueError(err); uniqueErr != nil {
			log.Debug().Err(err).Msg("user insert hit a unique constraint")
			return models.User{}, uniqueErr
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", r.db.selectUsers().Where(sq.Eq{"id": userID}))
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", r.db.selectUsers().Where(sq.Eq{"email": email}))
}

func (r *userRepository) FindUserByMemberCode(ctx context.Context, memberCode string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByMemberCode", r.db.selectUsers().Where(sq.Eq{"member_code": memberCode}))
}

func (r *userRepository) FindActiveMember(ctx context.Context, email, memberCode string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindActiveMember", r.db.selectUsers().Where(sq.Eq{
		"email":              email,
		"member_code":        memberCode,
		"member_code_status": string(models.MemberCodeActive),
		"account_status":     string(models.AccountActive),
	}))
}

// UpdateContactDetails rewrites phone and address, the only profile fields
// a member may change.
func (r *userRepository) UpdateContactDetails(ctx context.Context, userID int64, phone, address string, at time.Time) (models.User, error) {
	update := r.db.builder.Update(usersTable).
		Set("phone", phone).
		Set("address", address).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID})

	if err := r.execUpdate(ctx, "*userRepository.UpdateContactDetails", update); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string, at time.Time) error {
	update := r.db.builder.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID})

	return r.execUpdate(ctx, "*userRepository.UpdatePasswordHash", update)
}

// AssignMemberCode binds memberCode to the user and activates both the code
// and the account. A code held by another user fails with
// [ErrMemberCodeAlreadyExists].
func (r *userRepository) AssignMemberCode(ctx context.Context, userID int64, memberCode string, at time.Time) (models.User, error) {
	update := r.db.builder.Update(usersTable).
		Set("member_code", memberCode).
		Set("member_code_status", string(models.MemberCodeActive)).
		Set("member_code_issued_at", at).
		Set("account_status", string(models.AccountActive)).
		Set("status_reason", nil).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID})

	if err := r.execUpdate(ctx, "*userRepository.AssignMemberCode", update); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

// SuspendUser suspends the account and its member code. The member code
// itself stays bound to the user.
func (r *userRepository) SuspendUser(ctx context.Context, userID int64, reason string, at time.Time) (models.User, error) {
	update := r.db.builder.Update(usersTable).
		Set("member_code_status", sq.Expr("CASE WHEN member_code IS NULL THEN member_code_status ELSE ? END", string(models.MemberCodeSuspended))).
		Set("account_status", string(models.AccountSuspended)).
		Set("status_reason", reason).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID})

	if err := r.execUpdate(ctx, "*userRepository.SuspendUser", update); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName string, sel sq.SelectBuilder) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sel.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.retry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) execUpdate(ctx context.Context, funcName string, update sq.UpdateBuilder) error {
	log := logger.FromContext(ctx)

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if uniqueErr := r.db.uniqueError(err); uniqueErr != nil {
			log.Debug().Err(err).Str("func", funcName).Msg("update hit a unique constraint")
			return uniqueErr
		}
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

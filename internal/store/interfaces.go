// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/storefront-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the Credential Store. Uniqueness of email, ID number and
// member code is enforced by the database; violations surface as
// [ErrEmailAlreadyExists], [ErrIDNumberAlreadyExists] and
// [ErrMemberCodeAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByMemberCode(ctx context.Context, memberCode string) (models.User, error)
	// FindActiveMember matches email AND member code, with both the member
	// code and the account ACTIVE.
	FindActiveMember(ctx context.Context, email, memberCode string) (models.User, error)
	UpdateContactDetails(ctx context.Context, userID int64, phone, address string, at time.Time) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string, at time.Time) error
	AssignMemberCode(ctx context.Context, userID int64, memberCode string, at time.Time) (models.User, error)
	SuspendUser(ctx context.Context, userID int64, reason string, at time.Time) (models.User, error)
}

// ThrottleRepository persists login throttle counters keyed by throttle
// context (session id).
type ThrottleRepository interface {
	// GetThrottle returns the counter for key. An unknown key yields a zero
	// counter, not an error.
	GetThrottle(ctx context.Context, key string) (models.LoginThrottle, error)
	// IncrementFailures atomically adds one failure and returns the new count.
	IncrementFailures(ctx context.Context, key string, at time.Time) (int, error)
	LockThrottle(ctx context.Context, key string, until, at time.Time) error
	ResetThrottle(ctx context.Context, key string) error
}

// LoginAttemptRepository stores the login audit trail.
type LoginAttemptRepository interface {
	SaveLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error
}

// ErrorClassificator inspects driver errors of one database engine.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// UniqueViolation reports the column whose unique constraint err violated.
	UniqueViolation(err error) (column string, ok bool)
}

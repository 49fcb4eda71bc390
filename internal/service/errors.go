// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrUnauthenticated covers every missing, invalid or expired session.
	ErrUnauthenticated = errors.New("authentication required")

	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrExpiredToken = fmt.Errorf("%w: token is expired", ErrUnauthenticated)

	// ErrInvalidCredentials is returned for an unknown member, a wrong member
	// code and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email, member code or password")

	ErrRateLimited         = errors.New("too many failed login attempts")
	ErrAccessDenied        = errors.New("active membership required")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateIDNumber   = errors.New("id number already registered")
	ErrDuplicateMemberCode = errors.New("member code already assigned to another user")
	ErrUserNotFound        = errors.New("user not found")

	ErrTokenCreationFailed = errors.New("failed to create token")
	ErrInternal            = errors.New("internal error")
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// RateLimitError is returned while a throttle context is locked.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s, try again in %d minutes", ErrRateLimited, e.Minutes())
}

// Minutes is the remaining wait rounded up to whole minutes, at least 1.
func (e *RateLimitError) Minutes() int {
	minutes := int(math.Ceil(e.RetryAfter.Minutes()))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Is makes errors.Is(err, ErrRateLimited) true for any *RateLimitError.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

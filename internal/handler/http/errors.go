// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrCSRFViolation is returned when a state-changing request carries no
	// CSRF header or one that does not match the session token.
	ErrCSRFViolation = errors.New("invalid CSRF token")

	// ErrInvalidAdminKey is returned by the admin middleware when the
	// "X-Admin-Key" header is absent or wrong.
	ErrInvalidAdminKey = errors.New("invalid admin key")

	// ErrInvalidUserID is returned when the {userID} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrNoSession is returned when a handler runs outside the session
	// middleware.
	ErrNoSession = errors.New("no session attached to request")
)

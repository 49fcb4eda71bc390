// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrIDNumberAlreadyExists is returned when an insert violates the unique
	// national ID number constraint.
	ErrIDNumberAlreadyExists = errors.New("id number already exists")

	// ErrMemberCodeAlreadyExists is returned when a member code is already
	// bound to another user.
	ErrMemberCodeAlreadyExists = errors.New("member code already exists")

	// ErrUniqueViolation is returned for a unique violation on a column that
	// has no dedicated sentinel.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnknownDriver is returned by [NewConnect] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)

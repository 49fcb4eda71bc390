// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and sanitization for the
// auth operations.
//
// Every operation has an explicit, ordered [Pipeline] of named steps. Each
// step checks one field and records field-level messages; the pipeline runs
// every step and returns a single [*ValidationError] listing all failures.
// Passing field names to [Validator.Validate] restricts the run to the steps
// with those names.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

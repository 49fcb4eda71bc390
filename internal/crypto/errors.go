// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrHashing is returned when the hashing primitive fails.
	ErrHashing = errors.New("password hashing failed")
	// ErrVerification is returned when a stored hash cannot be compared,
	// for example because it is malformed. A plain mismatch is not an error.
	ErrVerification = errors.New("password verification failed")
)

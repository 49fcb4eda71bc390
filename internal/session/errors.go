// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrShortSessionKey = errors.New("session key must be at least 32 bytes")
	ErrSavingSession   = errors.New("error saving session")
	ErrNoAuthCookie    = errors.New("no auth cookie")
)

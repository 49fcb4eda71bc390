// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginThrottle is the failed-login counter of one throttle context
// (a session id).
type LoginThrottle struct {
	Key         string
	FailedCount int
	LockUntil   *time.Time
	UpdatedAt   time.Time
}

// LockedAt reports whether the context is locked at now.
func (t LoginThrottle) LockedAt(now time.Time) bool {
	return t.LockUntil != nil && now.Before(*t.LockUntil)
}

// LockExpiredAt reports whether a lock was set and has elapsed at now.
func (t LoginThrottle) LockExpiredAt(now time.Time) bool {
	return t.LockUntil != nil && !now.Before(*t.LockUntil)
}

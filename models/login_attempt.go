// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Login attempt failure reasons stored in the audit table. They are never
// sent to clients.
const (
	LoginFailureUnknownMember = "unknown_member"
	LoginFailureWrongPassword = "wrong_password"
	LoginFailureRateLimited   = "rate_limited"
	LoginFailureInvalidInput  = "invalid_input"
)

// LoginAttempt is one audited login decision.
type LoginAttempt struct {
	ID            int64
	UserID        *int64
	Email         string
	IPAddress     string
	UserAgent     string
	Success       bool
	FailureReason string
	CreatedAt     time.Time
}

// Client describes where a request came from. It is attached to login
// attempts for auditing.
type Client struct {
	IPAddress string
	UserAgent string
}

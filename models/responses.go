// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
//
// Details carries field errors for validation failures and, outside
// production, the internal error chain for server errors.
type ErrorResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	Details           any    `json:"details,omitempty"`
	RetryAfterMinutes int    `json:"retryAfterMinutes,omitempty"`
}

// MessageResponse is a success body carrying only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Success bool          `json:"success"`
	User    PublicProfile `json:"user"`
}

// ProfileResponse is the body of the profile endpoints.
type ProfileResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}

// CSRFTokenResponse is the body of GET /auth/csrf-token.
type CSRFTokenResponse struct {
	Success   bool   `json:"success"`
	CSRFToken string `json:"csrfToken"`
}

// MemberContentResponse is the body of GET /auth/member-content.
type MemberContentResponse struct {
	Success    bool   `json:"success"`
	MemberCode string `json:"memberCode"`
	Content    string `json:"content"`
}

// AdminUserResponse is the body of successful admin operations.
type AdminUserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

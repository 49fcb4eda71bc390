// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/storefront-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService orchestrates member self-service: registration, login and
// profile management.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login gates Authenticate with the throttle of throttleKey, records the
	// attempt and issues a session token on success.
	Login(ctx context.Context, req models.LoginRequest, throttleKey string, client models.Client) (models.User, models.Token, error)
	// Authenticate checks the three login factors. Every mismatch is
	// reported as ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, memberCode, password string) (models.User, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.Profile, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	// CheckMemberAccess fails with ErrAccessDenied unless the token belongs to
	// a member with an ACTIVE member code.
	CheckMemberAccess(ctx context.Context, claims models.Claims) error
}

// MemberService holds the administrative member operations.
type MemberService interface {
	AssignMemberCode(ctx context.Context, userID int64, req models.AssignMemberCodeRequest) (models.User, error)
	SuspendMember(ctx context.Context, userID int64, req models.SuspendMemberRequest) (models.User, error)
}

// TokenService mints and verifies stateless session tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// ThrottleService implements the OPEN/LOCKED login throttle of one
// throttle context.
type ThrottleService interface {
	// Check fails with a *RateLimitError while key is locked.
	Check(ctx context.Context, key string) error
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// HealthService reports build metadata and database reachability.
type HealthService interface {
	Health(ctx context.Context) (models.HealthResponse, error)
}

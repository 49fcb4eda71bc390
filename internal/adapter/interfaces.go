// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client for the administrative
// member endpoints of a running storefront auth server.
//
// The abstraction is [AdminAdapter], which decouples the memberadmin CLI
// from the HTTP transport. Error values defined in errors.go are mapped
// from response status codes by mapHTTPError so that callers can use
// [errors.Is] regardless of the message the server returned (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/storefront-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AdminAdapter performs member administration against the auth server.
// Implementations authenticate every request with the admin API key.
type AdminAdapter interface {
	// AssignMemberCode sets the member code of userID and activates it.
	// Returns [ErrConflict] when another member already holds code and
	// [ErrNotFound] when the user does not exist.
	AssignMemberCode(ctx context.Context, userID int64, code string) (models.User, error)

	// SuspendMember suspends the account of userID, recording reason.
	SuspendMember(ctx context.Context, userID int64, reason string) (models.User, error)

	// Health returns the server's health report. A server that answers 503
	// yields the decoded report together with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
)

const (
	validationFailedMessage = "Validation failed"
	internalErrorMessage    = "Internal server error"
)

// errorStatusMap holds one entry per public error class. No error can match
// two keys, so the iteration order of statusFromError is irrelevant.
var errorStatusMap = map[error]int{
	validators.ErrValidation:       http.StatusBadRequest,
	utils.ErrInvalidJSONBody:       http.StatusBadRequest,
	ErrInvalidUserID:               http.StatusBadRequest,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidAdminKey:             http.StatusUnauthorized,
	service.ErrAccessDenied:        http.StatusForbidden,
	ErrCSRFViolation:               http.StatusForbidden,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrDuplicateEmail:      http.StatusConflict,
	service.ErrDuplicateIDNumber:   http.StatusConflict,
	service.ErrDuplicateMemberCode: http.StatusConflict,
	service.ErrRateLimited:         http.StatusTooManyRequests,
	service.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

// statusFromError returns the HTTP status of err together with the
// sentinel it matched. Unknown errors are 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err as the JSON error envelope.
//
// Client errors carry the matched sentinel message, never the wrapped
// chain. Validation errors list their fields in details; rate limiting adds
// retryAfterMinutes and a Retry-After header. Server errors are logged and
// reduced to a generic message, with the error chain in details only
// outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	resp := models.ErrorResponse{Success: false}

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		resp.Error = internalErrorMessage
		if status == http.StatusServiceUnavailable {
			resp.Error = http.StatusText(status)
		}
		if !h.production {
			resp.Details = err.Error()
		}
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		resp.Error = publicMessage(target)
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		resp.Error = validationFailedMessage
		resp.Details = validationErr.Fields
	}

	var rateLimitErr *service.RateLimitError
	if errors.As(err, &rateLimitErr) {
		resp.Error = rateLimitErr.Error()
		resp.RetryAfterMinutes = rateLimitErr.Minutes()
		w.Header().Set("Retry-After", strconv.Itoa(rateLimitErr.Minutes()*60))
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// publicMessage is the client-facing text of a matched sentinel.
func publicMessage(target error) string {
	switch {
	case target == nil:
		return internalErrorMessage
	case errors.Is(target, service.ErrUnauthenticated):
		return "Authentication required"
	case errors.Is(target, service.ErrInvalidCredentials):
		return "Invalid email, member code or password"
	case errors.Is(target, service.ErrAccessDenied):
		return "Active membership required"
	case errors.Is(target, ErrCSRFViolation):
		return "Invalid CSRF token"
	}
	return target.Error()
}

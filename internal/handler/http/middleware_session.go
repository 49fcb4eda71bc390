// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
)

// withSession loads or creates the caller's session and stores it in the
// request context. It runs inside the CSRF protection and mirrors the
// request's CSRF token into the XSRF-TOKEN cookie of every response.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Load(w, r)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInternal, err))
			return
		}

		if token := session.CSRFToken(r); token != "" {
			h.sessions.SetCSRFCookie(w, token)
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// csrfFailure answers a request rejected by the CSRF protection.
func (h *Handler) csrfFailure(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Err(session.CSRFFailureReason(r)).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("CSRF check failed")
	h.writeError(w, r, ErrCSRFViolation)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/utils"
)

const adminKeyHeader = "X-Admin-Key"

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the authToken cookie, verifies it via [service.TokenService.Verify]
// and, on success, stores the token claims in the request context with
// [utils.WithClaims] before delegating to the next handler.
//
// A missing cookie and an invalid or expired token all end in
// 401 Unauthorized with the same public message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := session.AuthTokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Send()
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err))
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// member allows only tokens minted for an ACTIVE member. It must run after
// auth.
func (h *Handler) member(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := utils.GetClaimsFromContext(ctx)
		if !ok {
			h.writeError(w, r, service.ErrUnauthenticated)
			return
		}

		if err := h.services.AuthService.CheckMemberAccess(ctx, claims); err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// adminOnly compares the X-Admin-Key header with the configured key in
// constant time.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(adminKeyHeader)
		if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("admin request with invalid key")
			h.writeError(w, r, ErrInvalidAdminKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}

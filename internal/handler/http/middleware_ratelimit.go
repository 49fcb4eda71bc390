// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
)

// withLoginRateLimit caps login requests per client address, whatever the
// session. Every request counts, successful or not. A refused request gets
// the same 429 envelope as a locked session.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	if h.loginLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := h.clientIPs.ClientIP(r)

		if ok, retryAfter := h.loginLimiter.Allow(ip); !ok {
			logger.FromRequest(r).Warn().
				Str("remote_ip", ip).
				Dur("retry_after", retryAfter).
				Msg("login rate limit reached for address")
			h.writeError(w, r, &service.RateLimitError{RetryAfter: retryAfter})
			return
		}

		next.ServeHTTP(w, r)
	})
}

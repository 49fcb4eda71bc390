// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/utils"
)

// health reports build info and database reachability. An unreachable
// database answers 503 with the same body shape.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.HealthService.Health(r.Context())

	status := http.StatusOK
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, resp, status)
}

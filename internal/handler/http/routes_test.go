// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_SecurityHeaders(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		setup  func(f *handlerFixture)
	}{
		{
			name:   "health",
			method: http.MethodGet,
			path:   "/health",
			setup: func(f *handlerFixture) {
				f.health.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: "ok"}, nil)
			},
		},
		{name: "csrf token", method: http.MethodGet, path: "/auth/csrf-token"},
		{name: "csrf rejection", method: http.MethodPost, path: "/auth/login"},
		{name: "unknown route", method: http.MethodGet, path: "/nope"},
		{name: "method not allowed", method: http.MethodDelete, path: "/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, "same-origin", rec.Header().Get("Referrer-Policy"))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/mock"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdminKey = "admin-key-for-tests"

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

// handlerFixture is a Handler over gomock services and a real session
// manager.
type handlerFixture struct {
	auth    *mock.MockAuthService
	members *mock.MockMemberService
	tokens  *mock.MockTokenService
	health  *mock.MockHealthService

	handler *Handler
	router  http.Handler
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment:   config.EnvDevelopment,
			SessionKey:    strings.Repeat("k", 32),
			SessionMaxAge: time.Hour,
			TokenDuration: time.Hour,
			AdminAPIKey:   testAdminKey,

			LoginIPMaxAttempts: 5,
			LoginIPWindow:      15 * time.Minute,
		},
	}
}

func newHandlerFixture(t *testing.T, opts ...func(*config.StructuredConfig)) *handlerFixture {
	t.Helper()

	cfg := testConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		auth:    mock.NewMockAuthService(ctrl),
		members: mock.NewMockMemberService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}

	sessions, err := session.NewManager(cfg.App, logger.Nop())
	require.NoError(t, err)

	f.handler = NewHandler(&service.Services{
		AuthService:   f.auth,
		MemberService: f.members,
		TokenService:  f.tokens,
		HealthService: f.health,
	}, sessions, cfg, logger.Nop())
	f.router = f.handler.Init()

	return f
}

func production(cfg *config.StructuredConfig) {
	cfg.App.Environment = config.EnvProduction
}

// ─────────────────────────────────────────────
// Browser
// ─────────────────────────────────────────────

// browser replays cookies between requests the way a browser would and
// knows the CSRF token of its session.
type browser struct {
	t       *testing.T
	router  http.Handler
	cookies map[string]*http.Cookie
	csrf    string

	// remoteAddr overrides the httptest default of 192.0.2.1:1234.
	remoteAddr string
	// headers are added to every request.
	headers    map[string]string
}

// newBrowser opens a session by fetching the CSRF token.
func newBrowser(t *testing.T, router http.Handler) *browser {
	t.Helper()

	b := &browser{t: t, router: router, cookies: map[string]*http.Cookie{}}
	rec := b.do(http.MethodGet, "/auth/csrf-token", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[models.CSRFTokenResponse](t, rec)
	require.NotEmpty(t, resp.CSRFToken)
	b.csrf = resp.CSRFToken

	return b
}

// send issues a request carrying the CSRF header.
func (b *browser) send(method, path, body string) *httptest.ResponseRecorder {
	return b.do(method, path, body, map[string]string{"X-XSRF-TOKEN": b.csrf})
}

func (b *browser) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	b.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-browser")
	if b.remoteAddr != "" {
		req.RemoteAddr = b.remoteAddr
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}

	return rec
}

// from makes every following request come from addr.
func (b *browser) from(addr string) *browser {
	b.remoteAddr = addr
	return b
}

// withAuthCookie plants an authToken cookie without logging in.
func (b *browser) withAuthCookie(token string) *browser {
	b.cookies[session.AuthCookieName] = &http.Cookie{Name: session.AuthCookieName, Value: token}
	return b
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func toJSON(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func activeClaims() models.Claims {
	claims := models.Claims{
		Email:            "user@example.com",
		MemberCode:       "CP123456",
		MemberCodeStatus: models.MemberCodeActive,
	}
	claims.Subject = "42"
	return claims
}

func testMember() models.User {
	code := "CP123456"
	return models.User{
		UserID:           42,
		FirstName:        "Thandi",
		Surname:          "Mokoena",
		Email:            "user@example.com",
		Phone:            "+27821234567",
		Address:          "12 Long Street, Cape Town",
		MemberCode:       &code,
		MemberCodeStatus: models.MemberCodeActive,
		AccountStatus:    models.AccountActive,
	}
}

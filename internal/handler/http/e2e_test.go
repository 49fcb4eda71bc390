// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/events"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/store"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e2ePassword = "Gr3at!Shopper"

// newStack wires the real services over an in-memory SQLite database.
func newStack(t *testing.T, opts ...func(*config.StructuredConfig)) http.Handler {
	t.Helper()

	cfg := testConfig()
	cfg.App.TokenSignKey = strings.Repeat("s", 32)
	cfg.App.TokenIssuer = "storefront-auth-test"
	cfg.App.PasswordHashCost = 4
	cfg.App.LoginMaxAttempts = 5
	cfg.App.LoginLockout = 15 * time.Minute
	cfg.Storage.DB = config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_foreign_keys=on",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, events.NewNopPublisher(), cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	sessions, err := session.NewManager(cfg.App, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, sessions, cfg, logger.Nop()).Init()
}

func e2eRegisterBody(t *testing.T) string {
	return toJSON(t, models.RegisterRequest{
		IDNumber:  "9801015800084",
		FirstName: "Thandi",
		Surname:   "Mokoena",
		Email:     "user@example.com",
		Phone:     "0821234567",
		Address:   "12 Long Street, Cape Town",
		Password:  e2ePassword,
	})
}

func e2eLoginBody(t *testing.T, memberCode, password string) string {
	return toJSON(t, models.LoginRequest{Email: "user@example.com", MemberCode: memberCode, Password: password})
}

func assignCode(t *testing.T, router http.Handler, userID int64, code string) int {
	t.Helper()

	admin := &browser{t: t, router: router, cookies: map[string]*http.Cookie{}}
	rec := admin.do(http.MethodPost, fmt.Sprintf("/admin/members/%d/member-code", userID),
		toJSON(t, models.AssignMemberCodeRequest{MemberCode: code}),
		map[string]string{adminKeyHeader: testAdminKey})
	return rec.Code
}

// ─────────────────────────────────────────────
// Register → assign → login → member content
// ─────────────────────────────────────────────

func TestEndToEnd_MemberJourney(t *testing.T) {
	router := newStack(t)
	b := newBrowser(t, router)

	rec := b.send(http.MethodPost, "/auth/register", e2eRegisterBody(t))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	userID := decodeBody[models.RegisterResponse](t, rec).UserID
	require.NotZero(t, userID)

	// PENDING members cannot log in yet
	rec = b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	require.Equal(t, http.StatusOK, assignCode(t, router, userID, "CP123456"))

	rec = b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeBody[models.LoginResponse](t, rec)
	assert.Equal(t, "CP123456", login.User.MemberCode)
	assert.Equal(t, models.MemberCodeActive, login.User.MemberCodeStatus)
	require.Contains(t, b.cookies, session.AuthCookieName)

	rec = b.do(http.MethodGet, "/auth/member-content", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = b.do(http.MethodGet, "/auth/profile", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[models.ProfileResponse](t, rec).Profile
	assert.Equal(t, models.AccountActive, profile.AccountStatus)
	assert.Equal(t, "0821234567", profile.Phone)

	anonymous := newBrowser(t, router)
	rec = anonymous.do(http.MethodGet, "/auth/member-content", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = b.send(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = b.do(http.MethodGet, "/auth/member-content", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndToEnd_CSRFWithValidAuthCookie(t *testing.T) {
	router := newStack(t)
	b := newBrowser(t, router)

	rec := b.send(http.MethodPost, "/auth/register", e2eRegisterBody(t))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, http.StatusOK, assignCode(t, router, decodeBody[models.RegisterResponse](t, rec).UserID, "CP123456"))
	require.Equal(t, http.StatusOK, b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword)).Code)

	update := toJSON(t, models.UpdateProfileRequest{Phone: "0731234567", Address: "1 Main Road, Durban"})

	rec = b.do(http.MethodPut, "/auth/profile", update, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = b.do(http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, "0821234567", decodeBody[models.ProfileResponse](t, rec).Profile.Phone, "rejected update must not be applied")

	rec = b.send(http.MethodPut, "/auth/profile", update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "0731234567", decodeBody[models.ProfileResponse](t, rec).Profile.Phone)
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	router := newStack(t)
	b := newBrowser(t, router)

	require.Equal(t, http.StatusCreated, b.send(http.MethodPost, "/auth/register", e2eRegisterBody(t)).Code)

	rec := b.send(http.MethodPost, "/auth/register", e2eRegisterBody(t))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, service.ErrDuplicateEmail.Error(), decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestEndToEnd_FailuresAreIndistinguishableAndThrottled(t *testing.T) {
	// a loose address limit leaves the session throttle as the one that trips
	router := newStack(t, func(cfg *config.StructuredConfig) { cfg.App.LoginIPMaxAttempts = 20 })
	b := newBrowser(t, router)

	rec := b.send(http.MethodPost, "/auth/register", e2eRegisterBody(t))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, http.StatusOK, assignCode(t, router, decodeBody[models.RegisterResponse](t, rec).UserID, "CP123456"))

	attempts := []struct {
		memberCode string
		password   string
	}{
		{memberCode: "CP123456", password: "Wr0ng!Password"},
		{memberCode: "CP654321", password: e2ePassword},
		{memberCode: "", password: e2ePassword},
		{memberCode: "not-a-code", password: e2ePassword},
		{memberCode: "CP123456", password: "Wr0ng!Again"},
	}

	var bodies []string
	for _, a := range attempts {
		rec = b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, a.memberCode, a.password))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}

	// the sixth attempt is refused even with correct credentials
	rec = b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 15, decodeBody[models.ErrorResponse](t, rec).RetryAfterMinutes)

	// a different session has its own throttle context
	rec = newBrowser(t, router).send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// activeMember registers the e2e member and activates code CP123456.
func activeMember(t *testing.T, router http.Handler) {
	t.Helper()

	rec := newBrowser(t, router).send(http.MethodPost, "/auth/register", e2eRegisterBody(t))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, http.StatusOK, assignCode(t, router, decodeBody[models.RegisterResponse](t, rec).UserID, "CP123456"))
}

// guessPasswords sends attempts wrong-password logins, starting a fresh
// browser session every perSession attempts, and counts the outcomes.
func guessPasswords(t *testing.T, router http.Handler, attempts, perSession int, prepare func(i int, b *browser)) (evaluated, limited int) {
	t.Helper()

	var b *browser
	for i := range attempts {
		if i%perSession == 0 {
			b = newBrowser(t, router)
		}
		if prepare != nil {
			prepare(i, b)
		}

		rec := b.send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", fmt.Sprintf("Wr0ng!Guess%d", i)))
		switch rec.Code {
		case http.StatusUnauthorized:
			evaluated++
		case http.StatusTooManyRequests:
			limited++
			assert.Equal(t, "900", rec.Header().Get("Retry-After"))
			assert.Equal(t, 15, decodeBody[models.ErrorResponse](t, rec).RetryAfterMinutes)
		default:
			t.Fatalf("attempt %d: unexpected status %d: %s", i, rec.Code, rec.Body.String())
		}
	}
	return evaluated, limited
}

// ─────────────────────────────────────────────
// Address limit
// ─────────────────────────────────────────────

func TestEndToEnd_AddressLimitSurvivesSessionCycling(t *testing.T) {
	router := newStack(t)
	activeMember(t, router)

	evaluated, limited := guessPasswords(t, router, 50, 5, nil)

	assert.Equal(t, 5, evaluated, "password guesses evaluated from one address")
	assert.Equal(t, 45, limited)

	// the correct password is refused from the same address too
	rec := newBrowser(t, router).send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// another address is unaffected
	rec = newBrowser(t, router).from("198.51.100.7:40000").
		send(http.MethodPost, "/auth/login", e2eLoginBody(t, "CP123456", e2ePassword))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestEndToEnd_AddressLimitIgnoresSpoofedForwarding(t *testing.T) {
	router := newStack(t)
	activeMember(t, router)

	evaluated, limited := guessPasswords(t, router, 20, 5, func(i int, b *browser) {
		b.headers = map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i+1)}
	})

	assert.Equal(t, 5, evaluated)
	assert.Equal(t, 15, limited)
}

func TestEndToEnd_AddressLimitBehindTrustedProxy(t *testing.T) {
	router := newStack(t, func(cfg *config.StructuredConfig) {
		cfg.Server.TrustedProxies = []string{"10.0.0.0/8"}
	})
	activeMember(t, router)

	// each client behind the proxy has its own budget
	evaluated, limited := guessPasswords(t, router, 10, 5, func(i int, b *browser) {
		b.from("10.0.0.2:443")
		b.headers = map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i/5+1)}
	})

	assert.Equal(t, 10, evaluated)
	assert.Zero(t, limited)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the browser side of authentication: the signed
// "sid" session cookie that keys the login throttle, the gorilla/csrf
// protection with its readable XSRF-TOKEN mirror cookie and the http-only
// authToken cookie that carries the session JWT.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/gorilla/sessions"
)

const (
	Name = "sid"

	AuthCookieName = "authToken"

	idKey = "id"
)

// Session is the server-trusted state of one browser session.
type Session struct {
	// ID keys the login throttle.
	ID string
}

// Manager issues and reads the session cookies.
type Manager struct {
	store  *sessions.CookieStore
	ids    *utils.UUIDGenerator
	key    []byte
	secure bool

	authTTL time.Duration
	logger  *logger.Logger
}

// NewManager builds a Manager over a cookie store signed with
// cfg.SessionKey. Cookies are Secure unless the environment is development.
func NewManager(cfg config.App, logger *logger.Logger) (*Manager, error) {
	if len(cfg.SessionKey) < 32 {
		return nil, ErrShortSessionKey
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		Secure:   cfg.SecureCookies(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	store.MaxAge(int(cfg.SessionMaxAge.Seconds()))

	return &Manager{
		store:   store,
		ids:     utils.NewUUIDGenerator(),
		key:     []byte(cfg.SessionKey),
		secure:  cfg.SecureCookies(),
		authTTL: cfg.TokenDuration,
		logger:  logger,
	}, nil
}

// Load returns the caller's session, creating and saving a new one when the
// request carries no valid "sid" cookie.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (Session, error) {
	sess, err := m.store.Get(r, Name)
	if err != nil {
		// a tampered or expired cookie yields a fresh session
		m.logger.Debug().Err(err).Msg("session cookie rejected, starting a new session")
	}

	id, _ := sess.Values[idKey].(string)
	if !utils.IsUUID(id) {
		id = m.ids.Generate()

		sess.Values[idKey] = id
		if err = sess.Save(r, w); err != nil {
			return Session{}, fmt.Errorf("%w: %w", ErrSavingSession, err)
		}
	}

	return Session{ID: id}, nil
}

// SetAuthCookie stores token in the http-only authToken cookie. The cookie
// lives exactly as long as the token.
func (m *Manager) SetAuthCookie(w http.ResponseWriter, token models.Token) {
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	if token.ExpiresAt.IsZero() {
		maxAge = int(m.authTTL.Seconds())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie expires the authToken cookie.
func (m *Manager) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// AuthTokenFromRequest returns the value of the authToken cookie.
func AuthTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoAuthCookie
	}
	return cookie.Value, nil
}

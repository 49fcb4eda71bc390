// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"

	"github.com/gorilla/csrf"
)

const (
	// CSRFCookieName is the readable cookie a browser client copies into
	// the CSRFHeader of state-changing requests.
	CSRFCookieName = "XSRF-TOKEN"

	// CSRFSecretCookieName is the signed http-only cookie holding the
	// unmasked token that submitted tokens are checked against.
	CSRFSecretCookieName = "csrf_secret"

	CSRFHeader = "X-XSRF-TOKEN"
)

// csrfHeaderAliases are accepted in place of CSRFHeader, in order.
var csrfHeaderAliases = []string{"X-CSRF-Token", "CSRF-Token"}

// CSRFProtect returns middleware rejecting state-changing requests that do
// not carry a valid token in CSRFHeader or one of its aliases. Rejected
// requests are passed to onFailure; [CSRFFailureReason] tells why.
//
// While cookies are not Secure the request is marked as plain HTTP, which
// turns off the Referer check gorilla/csrf applies to TLS requests.
func (m *Manager) CSRFProtect(onFailure http.Handler) func(http.Handler) http.Handler {
	protect := csrf.Protect(m.key,
		csrf.CookieName(CSRFSecretCookieName),
		csrf.RequestHeader(CSRFHeader),
		csrf.Path("/"),
		csrf.MaxAge(m.store.Options.MaxAge),
		csrf.HttpOnly(true),
		csrf.Secure(m.secure),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.ErrorHandler(onFailure),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(CSRFHeader) == "" {
				for _, alias := range csrfHeaderAliases {
					if token := r.Header.Get(alias); token != "" {
						r.Header.Set(CSRFHeader, token)
						break
					}
				}
			}
			if !m.secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

// CSRFToken returns the masked token of a request that passed through
// [Manager.CSRFProtect]. It is empty for any other request.
func CSRFToken(r *http.Request) string {
	return csrf.Token(r)
}

// CSRFFailureReason returns why [Manager.CSRFProtect] rejected r.
func CSRFFailureReason(r *http.Request) error {
	return csrf.FailureReason(r)
}

// SetCSRFCookie mirrors token into the readable XSRF-TOKEN cookie.
func (m *Manager) SetCSRFCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   m.store.Options.MaxAge,
		Secure:   m.secure,
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	})
}

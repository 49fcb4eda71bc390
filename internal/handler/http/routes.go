// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("X-Frame-Options", "DENY"),
		middleware.SetHeader("Referrer-Policy", "same-origin"),
	)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)

	router.Route("/auth", func(r chi.Router) {
		r.Use(h.sessions.CSRFProtect(http.HandlerFunc(h.csrfFailure)), h.withSession)

		// routes without authorization
		r.Get("/csrf-token", h.csrfToken)
		r.Post("/register", h.register)
		r.With(h.withLoginRateLimit).Post("/login", h.login)

		// routes with cookie authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/logout", h.logout)
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
			r.Put("/password", h.changePassword)
			r.With(h.member).Get("/member-content", h.memberContent)
		})
	})

	if h.adminKey != "" {
		router.Route("/admin", func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Post("/members/{userID}/member-code", h.assignMemberCode)
			r.Post("/members/{userID}/suspend", h.suspendMember)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/models"
)

const registeredMessage = "Registration successful. A member code will be assigned by an administrator."

// csrfToken returns the same token that withSession mirrored into the
// XSRF-TOKEN cookie of this response.
func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token := session.CSRFToken(r)
	if token == "" {
		h.writeError(w, r, ErrNoSession)
		return
	}

	utils.WriteJSON(w, models.CSRFTokenResponse{Success: true, CSRFToken: token}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		Message: registeredMessage,
		UserID:  user.UserID,
	}, http.StatusCreated)
}

// login authenticates the member and sets the authToken cookie. Failed
// attempts are counted against the caller's session id.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := session.FromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	client := models.Client{
		IPAddress: h.clientIPs.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	user, token, err := h.services.AuthService.Login(ctx, req, sess.ID, client)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sessions.SetAuthCookie(w, token)
	utils.WriteJSON(w, models.LoginResponse{Success: true, User: user.Public()}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearAuthCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "Logged out"}, http.StatusOK)
}

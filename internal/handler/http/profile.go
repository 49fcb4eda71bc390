// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/models"
)

const memberContent = "Welcome to the members area. Member pricing is now applied to your basket."

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	profile, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, Profile: profile}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.UpdateProfileRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.UpdateProfile(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, Profile: profile}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.ChangePasswordRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "Password changed"}, http.StatusOK)
}

// memberContent is reachable only through the member middleware.
func (h *Handler) memberContent(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetClaimsFromContext(r.Context())

	utils.WriteJSON(w, models.MemberContentResponse{
		Success:    true,
		MemberCode: claims.MemberCode,
		Content:    memberContent,
	}, http.StatusOK)
}

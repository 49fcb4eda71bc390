// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) assignMemberCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.AssignMemberCodeRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.MemberService.AssignMemberCode(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("user_id", user.UserID).
		Str("member_code", user.MemberCodeValue()).
		Msg("member code assigned via admin API")
	utils.WriteJSON(w, models.AdminUserResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) suspendMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.SuspendMemberRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.MemberService.SuspendMember(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("member suspended via admin API")
	utils.WriteJSON(w, models.AdminUserResponse{Success: true, User: user}, http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}

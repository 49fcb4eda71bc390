// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/models"
)

const adminKeyHeader = "X-Admin-Key"

type httpAdminAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs the HTTP implementation of [AdminAdapter].
// The base URL is normalised from cfg.Address and the admin key is attached
// to every request.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPAdminAdapter(cfg config.AdminClient, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid admin address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader(adminKeyHeader, cfg.AdminKey)

	return &httpAdminAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AssignMemberCode implements [AdminAdapter] via
// POST /admin/members/{userID}/member-code.
func (h *httpAdminAdapter) AssignMemberCode(ctx context.Context, userID int64, code string) (models.User, error) {
	return h.memberAction(ctx, userID, "member-code", models.AssignMemberCodeRequest{MemberCode: code})
}

// SuspendMember implements [AdminAdapter] via
// POST /admin/members/{userID}/suspend.
func (h *httpAdminAdapter) SuspendMember(ctx context.Context, userID int64, reason string) (models.User, error) {
	return h.memberAction(ctx, userID, "suspend", models.SuspendMemberRequest{Reason: reason})
}

func (h *httpAdminAdapter) memberAction(ctx context.Context, userID int64, action string, body any) (models.User, error) {
	var result models.AdminUserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("userID", strconv.FormatInt(userID, 10)).
		SetBody(body).
		SetResult(&result).
		Post("/admin/members/{userID}/" + action)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("user_id", userID).Str("action", action).Msg("admin request succeeded")
	return result.User, nil
}

// Health implements [AdminAdapter] via GET /health.
func (h *httpAdminAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var report models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		SetError(&report).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrServiceUnavailable) {
			return report, err
		}
		return models.HealthResponse{}, err
	}

	return report, nil
}

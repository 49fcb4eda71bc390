// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

// Pinger is anything whose reachability can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	buildInfo models.AppBuildInfo
	db        Pinger

	logger *logger.Logger
}

// NewHealthService reports buildInfo and pings db on every call.
func NewHealthService(buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		buildInfo: buildInfo,
		db:        db,
		logger:    logger,
	}
}

// Health always returns the build metadata. The status is "ok" when the
// database answers and "unavailable" together with ErrDatabaseUnavailable
// otherwise.
func (s *healthService) Health(ctx context.Context) (models.HealthResponse, error) {
	resp := models.HealthResponse{
		Status:  "ok",
		Version: s.buildInfo.BuildVersion(),
		Commit:  s.buildInfo.BuildCommit(),
		Date:    s.buildInfo.BuildDate(),
	}

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		resp.Status = "unavailable"
		return resp, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return resp, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/ratelimit"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/utils"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	traceIDs *utils.UUIDGenerator

	clientIPs *utils.ClientIPResolver

	// loginLimiter caps login requests per client address. Nil disables it.
	loginLimiter *ratelimit.Limiter

	// adminKey guards the /admin routes. They are not mounted when empty.
	adminKey string

	production     bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	proxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring trusted proxies, forwarding headers will not be honored")
	}

	var loginLimiter *ratelimit.Limiter
	if cfg.App.LoginIPMaxAttempts > 0 && cfg.App.LoginIPWindow > 0 {
		loginLimiter = ratelimit.New(cfg.App.LoginIPMaxAttempts, cfg.App.LoginIPWindow)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		traceIDs:       utils.NewUUIDGenerator(),
		clientIPs:      utils.NewClientIPResolver(proxies),
		loginLimiter:   loginLimiter,
		adminKey:       cfg.App.AdminAPIKey,
		production:     cfg.App.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

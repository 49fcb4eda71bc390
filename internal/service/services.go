// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/crypto"
	"github.com/MKhiriev/storefront-auth/internal/events"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/store"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
)

// Services aggregates the business services consumed by the HTTP layer.
type Services struct {
	AuthService   AuthService
	MemberService MemberService
	TokenService  TokenService
	HealthService HealthService
}

// NewServices builds every service over storages. cfg must already be
// validated.
func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	passwords, err := crypto.NewPasswordPolicy(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password policy: %w", err)
	}

	validator := validators.NewUserValidator(passwords, time.Now)
	tokens := NewTokenService(cfg.App, logger)
	throttle := NewThrottleService(storages.ThrottleRepository, cfg.App, logger)

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.LoginAttemptRepository,
			passwords,
			throttle,
			tokens,
			validator,
			publisher,
			logger,
		),
		MemberService: NewMemberService(storages.UserRepository, validator, publisher, logger),
		TokenService:  tokens,
		HealthService: NewHealthService(buildInfo, storages, logger),
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultTokenIssuer      = "storefront-auth"
	DefaultProdTokenTTL     = time.Hour
	DefaultDevTokenTTL      = 24 * time.Hour
	DefaultProdHashCost     = 12
	DefaultDevHashCost      = 10
	DefaultSessionMaxAge    = 24 * time.Hour
	DefaultLoginMaxAttempts = 5
	DefaultLoginLockout     = 15 * time.Minute
	DefaultLoginIPAttempts  = 5
	DefaultLoginIPWindow    = 15 * time.Minute
	DefaultMaxOpenConns     = 10
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultEventsTopic      = "storefront.members"
	DefaultEventsTimeout    = 10 * time.Second

	minSecretLength = 32
)

// applyDefaults fills every zero field with the default of the selected
// environment. An empty environment is treated as development and
// remembered, see [StructuredConfig.DefaultedEnvironment].
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
		cfg.defaultedEnvironment = true
	}
	prod := cfg.App.IsProduction()

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = pick(prod, DefaultProdTokenTTL, DefaultDevTokenTTL)
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = pick(prod, DefaultProdHashCost, DefaultDevHashCost)
	}
	if cfg.App.SessionMaxAge == 0 {
		cfg.App.SessionMaxAge = DefaultSessionMaxAge
	}
	if cfg.App.LoginMaxAttempts == 0 {
		cfg.App.LoginMaxAttempts = DefaultLoginMaxAttempts
	}
	if cfg.App.LoginLockout == 0 {
		cfg.App.LoginLockout = DefaultLoginLockout
	}
	if cfg.App.LoginIPMaxAttempts == 0 {
		cfg.App.LoginIPMaxAttempts = DefaultLoginIPAttempts
	}
	if cfg.App.LoginIPWindow == 0 {
		cfg.App.LoginIPWindow = DefaultLoginIPWindow
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Events.Topic == "" {
		cfg.Events.Topic = DefaultEventsTopic
	}
	if cfg.Events.WriteTimeout == 0 {
		cfg.Events.WriteTimeout = DefaultEventsTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if len(cfg.App.TokenSignKey) < minSecretLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minSecretLength)
	}
	if len(cfg.App.SessionKey) < minSecretLength {
		return fmt.Errorf("%w: session key must be at least %d bytes", ErrInvalidAppConfigs, minSecretLength)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be between %d and %d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.LoginLockout < 0 || cfg.App.LoginMaxAttempts < 0 ||
		cfg.App.LoginIPWindow < 0 || cfg.App.LoginIPMaxAttempts < 0 {
		return fmt.Errorf("%w: durations and limits must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if len(cfg.Events.Brokers) > 0 && cfg.Events.Topic == "" {
		return ErrInvalidEventsConfigs
	}

	return nil
}

// LongLivedTokens reports whether the token TTL exceeds the production
// default. main logs a warning when this is true in production.
func (cfg *StructuredConfig) LongLivedTokens() bool {
	return cfg.App.IsProduction() && cfg.App.TokenDuration > DefaultProdTokenTTL
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

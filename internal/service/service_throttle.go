// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/store"
)

// throttleService locks a throttle context for lockout after maxAttempts
// consecutive failures. Counters live in the database so they survive
// across requests and server instances.
type throttleService struct {
	throttles   store.ThrottleRepository
	maxAttempts int
	lockout     time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewThrottleService constructs a [ThrottleService] with the threshold and
// lockout of cfg.
func NewThrottleService(throttles store.ThrottleRepository, cfg config.App, logger *logger.Logger) ThrottleService {
	return &throttleService{
		throttles:   throttles,
		maxAttempts: cfg.LoginMaxAttempts,
		lockout:     cfg.LoginLockout,
		now:         time.Now,
		logger:      logger,
	}
}

// Check is the entry guard of every login attempt. A lock that has run out
// is cleared together with its counter.
func (s *throttleService) Check(ctx context.Context, key string) error {
	throttle, err := s.throttles.GetThrottle(ctx, key)
	if err != nil {
		return fmt.Errorf("error reading login throttle: %w", err)
	}

	now := s.now()
	if throttle.LockedAt(now) {
		logger.FromContext(ctx).Info().Time("lock_until", *throttle.LockUntil).Msg("login attempt rejected: throttle context locked")
		return &RateLimitError{RetryAfter: throttle.LockUntil.Sub(now)}
	}

	if throttle.LockExpiredAt(now) {
		if err = s.throttles.ResetThrottle(ctx, key); err != nil {
			return fmt.Errorf("error resetting expired login throttle: %w", err)
		}
	}

	return nil
}

// RecordFailure counts one failed login and locks the context once the
// threshold is reached.
func (s *throttleService) RecordFailure(ctx context.Context, key string) error {
	now := s.now()

	count, err := s.throttles.IncrementFailures(ctx, key, now)
	if err != nil {
		return fmt.Errorf("error recording failed login: %w", err)
	}

	if count < s.maxAttempts {
		return nil
	}

	until := now.Add(s.lockout)
	if err = s.throttles.LockThrottle(ctx, key, until, now); err != nil {
		return fmt.Errorf("error locking login throttle: %w", err)
	}
	logger.FromContext(ctx).Warn().Int("failed_count", count).Time("lock_until", until).Msg("throttle context locked")

	return nil
}

// Reset returns the context to OPEN with a zero counter.
func (s *throttleService) Reset(ctx context.Context, key string) error {
	if err := s.throttles.ResetThrottle(ctx, key); err != nil {
		return fmt.Errorf("error resetting login throttle: %w", err)
	}
	return nil
}

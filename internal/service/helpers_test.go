// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/storefront-auth/models"
)

var testNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testNow}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryThrottleRepository is an in-memory store.ThrottleRepository that
// counts its calls.
type memoryThrottleRepository struct {
	mu       sync.Mutex
	throttle map[string]models.LoginThrottle
	calls    int
}

func newMemoryThrottleRepository() *memoryThrottleRepository {
	return &memoryThrottleRepository{throttle: make(map[string]models.LoginThrottle)}
}

func (r *memoryThrottleRepository) GetThrottle(_ context.Context, key string) (models.LoginThrottle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	t, ok := r.throttle[key]
	if !ok {
		return models.LoginThrottle{Key: key}, nil
	}
	return t, nil
}

func (r *memoryThrottleRepository) IncrementFailures(_ context.Context, key string, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	t := r.throttle[key]
	t.Key = key
	t.FailedCount++
	t.UpdatedAt = at
	r.throttle[key] = t
	return t.FailedCount, nil
}

func (r *memoryThrottleRepository) LockThrottle(_ context.Context, key string, until, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	t := r.throttle[key]
	t.LockUntil = &until
	t.UpdatedAt = at
	r.throttle[key] = t
	return nil
}

func (r *memoryThrottleRepository) ResetThrottle(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	delete(r.throttle, key)
	return nil
}

func (r *memoryThrottleRepository) get(key string) models.LoginThrottle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.throttle[key]
}

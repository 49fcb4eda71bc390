// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes member lifecycle events to a message broker.
//
// Publishing is best effort: callers log a failed publish and carry on, the
// member state in the database stays the source of truth.
package events

import (
	"context"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

//go:generate mockgen -source=publisher.go -destination=../mock/publisher_mock.go -package=mock

// Publisher sends committed member events downstream.
type Publisher interface {
	Publish(ctx context.Context, event models.MemberEvent) error
	Close() error
}

// NewPublisher returns a kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func NewPublisher(cfg config.Events, log *logger.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		log.Info().Msg("no event brokers configured, member events are discarded")
		return NewNopPublisher()
	}

	return NewKafkaPublisher(cfg, log)
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, models.MemberEvent) error { return nil }

func (nopPublisher) Close() error { return nil }

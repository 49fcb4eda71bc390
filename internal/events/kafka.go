// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON encoded member events to one topic, keyed by
// member email so that events of one member stay ordered.
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       *logger.Logger
}

// NewKafkaPublisher builds a synchronous kafka writer that waits for all
// in-sync replicas.
func NewKafkaPublisher(cfg config.Events, log *logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("kafka publisher created")

	return newKafkaPublisher(writer, cfg.WriteTimeout, log)
}

func newKafkaPublisher(writer messageWriter, writeTimeout time.Duration, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		logger:       log,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.MemberEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("type", string(event.Type)).Int64("user_id", event.UserID).Msg("failed to publish member event")
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

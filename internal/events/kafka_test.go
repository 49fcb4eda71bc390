// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

type fakeWriter struct {
	messages    []kafka.Message
	err         error
	hadDeadline bool
	closed      bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.hadDeadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testEvent() models.MemberEvent {
	return models.MemberEvent{
		Type:       models.EventMemberCodeAssigned,
		UserID:     7,
		Email:      "thandi@example.com",
		MemberCode: "CP123456",
		Status:     models.AccountActive,
		OccurredAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, time.Second, logger.Nop())

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.Len(t, w.messages, 1)
	assert.True(t, w.hadDeadline)

	msg := w.messages[0]
	assert.Equal(t, "thandi@example.com", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "member.code_assigned", string(msg.Headers[0].Value))

	var decoded models.MemberEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, int64(7), decoded.UserID)
	assert.Equal(t, "CP123456", decoded.MemberCode)
	assert.Equal(t, models.AccountActive, decoded.Status)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, 0, logger.Nop())

	err := p.Publish(context.Background(), testEvent())
	assert.ErrorIs(t, err, ErrPublishingEvent)
	assert.False(t, w.hadDeadline)
}

func TestNewPublisher(t *testing.T) {
	nop := NewPublisher(config.Events{}, logger.Nop())
	assert.IsType(t, nopPublisher{}, nop)
	assert.NoError(t, nop.Publish(context.Background(), testEvent()))
	assert.NoError(t, nop.Close())

	kp := NewPublisher(config.Events{Brokers: []string{"localhost:9092"}, Topic: "storefront.members"}, logger.Nop())
	assert.IsType(t, &KafkaPublisher{}, kp)
	assert.NoError(t, kp.Close())
}

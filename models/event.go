// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a member lifecycle event.
type EventType string

const (
	EventMemberRegistered   EventType = "member.registered"
	EventMemberCodeAssigned EventType = "member.code_assigned"
	EventMemberSuspended    EventType = "member.suspended"
)

// MemberEvent is published after a member state change has been committed.
// It never carries credentials.
type MemberEvent struct {
	Type       EventType     `json:"type"`
	UserID     int64         `json:"userId"`
	Email      string        `json:"email"`
	MemberCode string        `json:"memberCode,omitempty"`
	Status     AccountStatus `json:"accountStatus"`
	Reason     string        `json:"reason,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// Key returns the partition key of the event.
func (e MemberEvent) Key() string {
	return e.Email
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "errors"

var (
	ErrEncodingEvent   = errors.New("error encoding member event")
	ErrPublishingEvent = errors.New("error publishing member event")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a short token sign key or an unknown environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEventsConfigs indicates brokers without a topic.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
	// ErrInvalidAdminClientConfigs indicates memberadmin settings without an
	// admin key or with a negative timeout.
	ErrInvalidAdminClientConfigs = errors.New("invalid memberadmin configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// memberAdminEnvPrefix scopes the variables read into [AdminClient].
const memberAdminEnvPrefix = "MEMBERADMIN_"

// parseEnv fills cfg from the process environment through its `env` and
// `envPrefix` tags. prefix is prepended to every variable name and may be
// empty. Variables that are set but cannot be converted to the field type
// fail the whole parse.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

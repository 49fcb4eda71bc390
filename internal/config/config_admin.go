// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// Defaults for [AdminClient].
const (
	DefaultAdminAddress = "http://localhost:8080"
	DefaultAdminTimeout = 15 * time.Second
)

// AdminClient holds the settings of the memberadmin CLI, which drives the
// administrative member endpoints of a running server.
type AdminClient struct {
	// Address is the base URL of the auth server. A bare host:port is
	// treated as http.
	// Env: MEMBERADMIN_ADDRESS
	Address string `env:"ADDRESS"`

	// AdminKey is sent in the X-Admin-Key header and must match the
	// server's APP_ADMIN_API_KEY.
	// Env: MEMBERADMIN_ADMIN_KEY
	AdminKey string `env:"ADMIN_KEY"`

	// RequestTimeout bounds every outbound request.
	// Env: MEMBERADMIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetAdminClientConfig loads the memberadmin settings. Flags parsed from
// args win over MEMBERADMIN_* environment variables; the remaining
// positional arguments (the subcommand and its operands) are returned
// untouched.
func GetAdminClientConfig(args []string) (*AdminClient, []string, error) {
	cfg := &AdminClient{}
	if err := parseEnv(cfg, memberAdminEnvPrefix); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("memberadmin", flag.ContinueOnError)
	address := fs.String("addr", "", "Auth server base URL")
	adminKey := fs.String("admin-key", "", "Admin API key")
	timeout := fs.Duration("timeout", 0, "Request timeout (e.g., 15s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *address != "" {
		cfg.Address = *address
	}
	if *adminKey != "" {
		cfg.AdminKey = *adminKey
	}
	if *timeout != 0 {
		cfg.RequestTimeout = *timeout
	}

	if cfg.Address == "" {
		cfg.Address = DefaultAdminAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultAdminTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func (c *AdminClient) validate() error {
	if c.AdminKey == "" {
		return fmt.Errorf("%w: admin key is required", ErrInvalidAdminClientConfigs)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdminClientConfigs)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command memberadmin manages storefront members through the admin API of
// a running auth server.
//
// Usage:
//
//	memberadmin [-addr URL] [-admin-key KEY] [-timeout D] <command> [args]
//
// Commands:
//
//	assign  <userID> <memberCode>  assign and activate a member code
//	suspend <userID> <reason...>   suspend a member account
//	health                         print the server health report
//	version                        print the build info of this binary
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/storefront-auth/internal/adapter"
	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, args, err := config.GetAdminClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger("memberadmin", true)

	admin, err := adapter.NewHTTPAdminAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := newCommands(admin, buildInfo, os.Stdout)
	if err = cli.run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "memberadmin:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

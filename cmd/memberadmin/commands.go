// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/storefront-auth/internal/adapter"
	"github.com/MKhiriev/storefront-auth/models"
)

const usage = `usage: memberadmin [-addr URL] [-admin-key KEY] [-timeout D] <command> [args]

commands:
  assign  <userID> <memberCode>  assign and activate a member code
  suspend <userID> <reason...>   suspend a member account
  health                         print the server health report
  version                        print the build info of this binary
`

var (
	errUsage         = errors.New("invalid usage")
	errInvalidUserID = errors.New("user id must be a positive integer")
)

type commands struct {
	admin     adapter.AdminAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer
}

func newCommands(admin adapter.AdminAdapter, buildInfo models.AppBuildInfo, out io.Writer) *commands {
	return &commands{admin: admin, buildInfo: buildInfo, out: out}
}

func (c *commands) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "assign":
		return c.assign(ctx, rest)
	case "suspend":
		return c.suspend(ctx, rest)
	case "health":
		return c.health(ctx)
	case "version":
		c.printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			c.buildInfo.BuildVersion(), c.buildInfo.BuildDate(), c.buildInfo.BuildCommit())
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *commands) assign(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: assign takes <userID> <memberCode>", errUsage)
	}
	userID, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	user, err := c.admin.AssignMemberCode(ctx, userID, strings.ToUpper(strings.TrimSpace(args[1])))
	if err != nil {
		return fmt.Errorf("assign member code: %w", err)
	}

	c.printf("member %d: code %s is %s\n", user.UserID, user.MemberCodeValue(), user.MemberCodeStatus)
	return nil
}

func (c *commands) suspend(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: suspend takes <userID> <reason...>", errUsage)
	}
	userID, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	user, err := c.admin.SuspendMember(ctx, userID, strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("suspend member: %w", err)
	}

	c.printf("member %d: account %s, code %s\n", user.UserID, user.AccountStatus, user.MemberCodeStatus)
	return nil
}

func (c *commands) health(ctx context.Context) error {
	report, err := c.admin.Health(ctx)
	if err != nil && !errors.Is(err, adapter.ErrServiceUnavailable) {
		return fmt.Errorf("health: %w", err)
	}

	c.printf("status: %s\nversion: %s\ncommit: %s\ndate: %s\n",
		report.Status, report.Version, report.Commit, report.Date)
	return err
}

func (c *commands) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func parseUserID(raw string) (int64, error) {
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidUserID, raw)
	}
	return userID, nil
}

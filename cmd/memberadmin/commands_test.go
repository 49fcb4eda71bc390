// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/storefront-auth/internal/adapter"
	"github.com/MKhiriev/storefront-auth/internal/mock"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestCommands_Run(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		setup       func(m *mock.MockAdminAdapter)
		wantOut     string
		wantErr     bool
		expectedErr error
	}{
		{
			name:        "no command",
			args:        nil,
			expectedErr: errUsage,
		},
		{
			name:        "unknown command",
			args:        []string{"delete", "1"},
			expectedErr: errUsage,
		},
		{
			name: "assign normalises code",
			args: []string{"assign", "42", " cp123456 "},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().AssignMemberCode(gomock.Any(), int64(42), "CP123456").Return(models.User{
					UserID:           42,
					MemberCode:       strPtr("CP123456"),
					MemberCodeStatus: models.MemberCodeActive,
				}, nil)
			},
			wantOut: "member 42: code CP123456 is ACTIVE\n",
		},
		{
			name:        "assign missing code",
			args:        []string{"assign", "42"},
			expectedErr: errUsage,
		},
		{
			name:        "assign bad user id",
			args:        []string{"assign", "0", "CP123456"},
			expectedErr: errInvalidUserID,
		},
		{
			name: "assign conflict",
			args: []string{"assign", "42", "CP123456"},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().AssignMemberCode(gomock.Any(), int64(42), "CP123456").
					Return(models.User{}, fmt.Errorf("%w: member code already exists", adapter.ErrConflict))
			},
			expectedErr: adapter.ErrConflict,
		},
		{
			name: "suspend joins reason",
			args: []string{"suspend", "7", "repeated", "chargebacks"},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().SuspendMember(gomock.Any(), int64(7), "repeated chargebacks").Return(models.User{
					UserID:           7,
					AccountStatus:    models.AccountSuspended,
					MemberCodeStatus: models.MemberCodeSuspended,
				}, nil)
			},
			wantOut: "member 7: account SUSPENDED, code SUSPENDED\n",
		},
		{
			name:        "suspend without user",
			args:        []string{"suspend"},
			expectedErr: errUsage,
		},
		{
			name:        "suspend without reason",
			args:        []string{"suspend", "7"},
			expectedErr: errUsage,
		},
		{
			name: "health ok",
			args: []string{"health"},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{
					Status: "ok", Version: "1.0.0", Commit: "abc", Date: "today",
				}, nil)
			},
			wantOut: "status: ok\nversion: 1.0.0\ncommit: abc\ndate: today\n",
		},
		{
			name: "health unavailable still prints report",
			args: []string{"health"},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{
					Status: "unavailable", Version: "1.0.0", Commit: "abc", Date: "today",
				}, adapter.ErrServiceUnavailable)
			},
			wantOut:     "status: unavailable\nversion: 1.0.0\ncommit: abc\ndate: today\n",
			expectedErr: adapter.ErrServiceUnavailable,
		},
		{
			name: "health transport failure",
			args: []string{"health"},
			setup: func(m *mock.MockAdminAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name:    "version",
			args:    []string{"version"},
			wantOut: "Build version: 1.2.3\nBuild date: N/A\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			admin := mock.NewMockAdminAdapter(ctrl)
			if tt.setup != nil {
				tt.setup(admin)
			}

			var out bytes.Buffer
			cli := newCommands(admin, models.NewAppBuildInfo("1.2.3", "", ""), &out)

			err := cli.run(context.Background(), tt.args)

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
			case tt.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "9000000000", want: 9000000000},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseUserID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// admin requests carry no cookies and no CSRF header.
func adminRequest(t *testing.T, f *handlerFixture, path, body, key string) (int, string) {
	t.Helper()

	b := &browser{t: t, router: f.router, cookies: map[string]*http.Cookie{}}
	headers := map[string]string{}
	if key != "" {
		headers[adminKeyHeader] = key
	}
	rec := b.do(http.MethodPost, path, body, headers)
	return rec.Code, rec.Body.String()
}

// ─────────────────────────────────────────────
// admin key
// ─────────────────────────────────────────────

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{name: "missing key", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", key: "guess", wantStatus: http.StatusUnauthorized},
		{name: "prefix of key", key: testAdminKey[:5], wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			status, _ := adminRequest(t, f, "/admin/members/42/member-code", `{"memberCode":"CP123456"}`, tt.key)

			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestAdminRoutes_NotMountedWithoutKey(t *testing.T) {
	f := newHandlerFixture(t, func(cfg *config.StructuredConfig) { cfg.App.AdminAPIKey = "" })

	status, _ := adminRequest(t, f, "/admin/members/42/member-code", `{"memberCode":"CP123456"}`, "anything")

	assert.Equal(t, http.StatusNotFound, status)
}

// ─────────────────────────────────────────────
// member code
// ─────────────────────────────────────────────

func TestAssignMemberCode(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name: "assigned",
			path: "/admin/members/42/member-code",
			setup: func(f *handlerFixture) {
				f.members.EXPECT().
					AssignMemberCode(gomock.Any(), int64(42), models.AssignMemberCodeRequest{MemberCode: "CP123456"}).
					Return(testMember(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{name: "non numeric id", path: "/admin/members/abc/member-code", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/admin/members/0/member-code", wantStatus: http.StatusBadRequest},
		{
			name: "bad format",
			path: "/admin/members/42/member-code",
			setup: func(f *handlerFixture) {
				f.members.EXPECT().AssignMemberCode(gomock.Any(), int64(42), gomock.Any()).
					Return(models.User{}, validators.NewValidationError("memberCode", "Member code must match CP followed by 6 digits"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			path: "/admin/members/42/member-code",
			setup: func(f *handlerFixture) {
				f.members.EXPECT().AssignMemberCode(gomock.Any(), int64(42), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "code held by another user",
			path: "/admin/members/42/member-code",
			setup: func(f *handlerFixture) {
				f.members.EXPECT().AssignMemberCode(gomock.Any(), int64(42), gomock.Any()).Return(models.User{}, service.ErrDuplicateMemberCode)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			status, body := adminRequest(t, f, tt.path, `{"memberCode":"CP123456"}`, testAdminKey)

			require.Equal(t, tt.wantStatus, status, body)
			if status == http.StatusOK {
				assert.Contains(t, body, `"memberCode":"CP123456"`)
				assert.NotContains(t, body, "passwordHash")
			}
		})
	}
}

// ─────────────────────────────────────────────
// suspend
// ─────────────────────────────────────────────

func TestSuspendMember(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "suspended", wantStatus: http.StatusOK},
		{name: "unknown user", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "missing reason", err: validators.NewValidationError("reason", "Reason is required"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			suspended := testMember()
			suspended.AccountStatus = models.AccountSuspended
			f.members.EXPECT().
				SuspendMember(gomock.Any(), int64(42), models.SuspendMemberRequest{Reason: "chargeback fraud"}).
				Return(suspended, tt.err)

			status, body := adminRequest(t, f, "/admin/members/42/suspend", `{"reason":"chargeback fraud"}`, testAdminKey)

			assert.Equal(t, tt.wantStatus, status, body)
		})
	}
}

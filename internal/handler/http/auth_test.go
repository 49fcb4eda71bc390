// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/utils"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerBody(t *testing.T) string {
	return toJSON(t, models.RegisterRequest{
		IDNumber:  "9801015800084",
		FirstName: "Thandi",
		Surname:   "Mokoena",
		Email:     "user@example.com",
		Phone:     "+27821234567",
		Address:   "12 Long Street, Cape Town",
		Password:  "Str0ng!Pass",
	})
}

func loginBody(t *testing.T) string {
	return toJSON(t, models.LoginRequest{
		Email:      "user@example.com",
		MemberCode: "CP123456",
		Password:   "Str0ng!Pass",
	})
}

// ─────────────────────────────────────────────
// csrf-token
// ─────────────────────────────────────────────

func TestCSRFToken_MatchesCookie(t *testing.T) {
	f := newHandlerFixture(t)
	b := newBrowser(t, f.router)

	require.Contains(t, b.cookies, session.Name)
	require.Contains(t, b.cookies, session.CSRFSecretCookieName)
	require.Contains(t, b.cookies, session.CSRFCookieName)
	assert.Equal(t, b.csrf, b.cookies[session.CSRFCookieName].Value)
	assert.True(t, b.cookies[session.CSRFSecretCookieName].HttpOnly)
	assert.False(t, b.cookies[session.CSRFCookieName].HttpOnly)

	// each response carries the token it returns in the body
	rec := b.do(http.MethodGet, "/auth/csrf-token", "", nil)
	assert.Equal(t, b.cookies[session.CSRFCookieName].Value, decodeBody[models.CSRFTokenResponse](t, rec).CSRFToken)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *handlerFixture)
		wantStatus int
		wantError  string
	}{
		{
			name: "success",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req models.RegisterRequest) (models.User, error) {
						assert.Equal(t, "9801015800084", req.IDNumber)
						return models.User{UserID: 7}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  utils.ErrInvalidJSONBody.Error(),
		},
		{
			name:       "unknown field",
			body:       `{"email":"user@example.com","accountStatus":"ACTIVE"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  utils.ErrInvalidJSONBody.Error(),
		},
		{
			name: "validation error",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.User{}, validators.NewValidationError("idNumber", "Must be at least 18 years old"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  validationFailedMessage,
		},
		{
			name: "duplicate email",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrDuplicateEmail)
			},
			wantStatus: http.StatusConflict,
			wantError:  service.ErrDuplicateEmail.Error(),
		},
		{
			name: "duplicate id number",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrDuplicateIDNumber)
			},
			wantStatus: http.StatusConflict,
			wantError:  service.ErrDuplicateIDNumber.Error(),
		},
		{
			name: "internal error",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: connection refused", service.ErrInternal))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			body := tt.body
			if body == "" {
				body = registerBody(t)
			}

			rec := newBrowser(t, f.router).send(http.MethodPost, "/auth/register", body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec).Error)
				return
			}
			resp := decodeBody[models.RegisterResponse](t, rec)
			assert.True(t, resp.Success)
			assert.Equal(t, int64(7), resp.UserID)
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	f := newHandlerFixture(t)
	member := testMember()
	expires := time.Now().Add(time.Hour)

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.LoginRequest, throttleKey string, client models.Client) (models.User, models.Token, error) {
			assert.Equal(t, "CP123456", req.MemberCode)
			assert.NotEmpty(t, throttleKey)
			assert.Equal(t, "test-browser", client.UserAgent)
			assert.NotEmpty(t, client.IPAddress)
			return member, models.Token{SignedString: "signed.jwt", ExpiresAt: expires}, nil
		})

	b := newBrowser(t, f.router)
	rec := b.send(http.MethodPost, "/auth/login", loginBody(t))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[models.LoginResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, member.Public(), resp.User)
	assert.NotContains(t, rec.Body.String(), "signed.jwt")
	assert.NotContains(t, rec.Body.String(), "idNumber")

	cookie := b.cookies[session.AuthCookieName]
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestLogin_ThrottleKeyIsSessionID(t *testing.T) {
	f := newHandlerFixture(t)

	var keys []string
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.LoginRequest, throttleKey string, _ models.Client) (models.User, models.Token, error) {
			keys = append(keys, throttleKey)
			return models.User{}, models.Token{}, service.ErrInvalidCredentials
		}).Times(3)

	first := newBrowser(t, f.router)
	first.send(http.MethodPost, "/auth/login", loginBody(t))
	first.send(http.MethodPost, "/auth/login", loginBody(t))
	newBrowser(t, f.router).send(http.MethodPost, "/auth/login", loginBody(t))

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1], "same session must share a throttle context")
	assert.NotEqual(t, keys[0], keys[2], "different sessions must not share a throttle context")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid email, member code or password",
		},
		{
			name:       "validation",
			err:        validators.NewValidationError("email", "Invalid email format"),
			wantStatus: http.StatusBadRequest,
			wantError:  validationFailedMessage,
		},
		{
			name:       "token creation failed",
			err:        fmt.Errorf("%w: %w", service.ErrInternal, service.ErrTokenCreationFailed),
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.User{}, models.Token{}, tt.err)

			b := newBrowser(t, f.router)
			rec := b.send(http.MethodPost, "/auth/login", loginBody(t))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec).Error)
			assert.NotContains(t, b.cookies, session.AuthCookieName)
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, models.Token{}, &service.RateLimitError{RetryAfter: 15 * time.Minute})

	rec := newBrowser(t, f.router).send(http.MethodPost, "/auth/login", loginBody(t))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "900", rec.Header().Get("Retry-After"))

	resp := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, 15, resp.RetryAfterMinutes)
	assert.NotContains(t, rec.Body.String(), "failed_count")
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	f := newHandlerFixture(t)
	f.tokens.EXPECT().Verify(gomock.Any(), "signed.jwt").Return(activeClaims(), nil)

	b := newBrowser(t, f.router).withAuthCookie("signed.jwt")
	rec := b.send(http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, b.cookies, session.AuthCookieName)
	assert.True(t, decodeBody[models.MessageResponse](t, rec).Success)
}

func TestLogout_RequiresToken(t *testing.T) {
	f := newHandlerFixture(t)

	rec := newBrowser(t, f.router).send(http.MethodPost, "/auth/logout", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

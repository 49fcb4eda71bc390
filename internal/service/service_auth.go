// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/crypto"
	"github.com/MKhiriev/storefront-auth/internal/events"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/store"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	// users is the Credential Store.
	users store.UserRepository

	// attempts receives the login audit trail.
	attempts store.LoginAttemptRepository

	passwords crypto.PasswordPolicy
	throttle  ThrottleService
	tokens    TokenService

	validator validators.Validator
	sanitizer *validators.Sanitizer
	publisher events.Publisher

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService wires the auth orchestrator. All collaborators are
// required.
func NewAuthService(
	users store.UserRepository,
	attempts store.LoginAttemptRepository,
	passwords crypto.PasswordPolicy,
	throttle ThrottleService,
	tokens TokenService,
	validator validators.Validator,
	publisher events.Publisher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:     users,
		attempts:  attempts,
		passwords: passwords,
		throttle:  throttle,
		tokens:    tokens,
		validator: validator,
		sanitizer: validators.NewSanitizer(),
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// Register creates a PENDING account without a member code.
//
// Returns the persisted user or:
//   - a *validators.ValidationError listing every failed field;
//   - ErrDuplicateEmail / ErrDuplicateIDNumber, from the pre-check or from
//     the unique constraints, whichever fires first;
//   - a wrapped ErrInternal for storage and hashing failures.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req = a.sanitizer.Register(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected by validation")
		return models.User{}, err
	}

	_, err := a.users.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("email pre-check failed")
		return models.User{}, domainError(err)
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	now := a.now().UTC()
	user, err := a.users.CreateUser(ctx, models.User{
		IDNumber:         req.IDNumber,
		FirstName:        req.FirstName,
		Surname:          req.Surname,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PasswordHash:     hash,
		MemberCodeStatus: models.MemberCodePending,
		AccountStatus:    models.AccountPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, domainError(err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	a.publish(ctx, models.MemberEvent{
		Type:       models.EventMemberRegistered,
		UserID:     user.UserID,
		Email:      user.Email,
		Status:     user.AccountStatus,
		OccurredAt: now,
	})

	return user, nil
}

// Login runs validation, the throttle guard, Authenticate and token
// issuance strictly in that order and stops at the first failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, throttleKey string, client models.Client) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	req = a.sanitizer.Login(req)
	attempt := models.LoginAttempt{
		Email:     req.Email,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		a.recordAttempt(ctx, attempt, models.LoginFailureInvalidInput)
		return models.User{}, models.Token{}, err
	}

	if err := a.throttle.Check(ctx, throttleKey); err != nil {
		if errors.Is(err, ErrRateLimited) {
			a.recordAttempt(ctx, attempt, models.LoginFailureRateLimited)
			return models.User{}, models.Token{}, err
		}
		log.Err(err).Msg("throttle check failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user, reason, err := a.authenticate(ctx, req.Email, req.MemberCode, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			return models.User{}, models.Token{}, err
		}
		if user.UserID != 0 {
			attempt.UserID = &user.UserID
		}
		a.recordAttempt(ctx, attempt, reason)
		if throttleErr := a.throttle.RecordFailure(ctx, throttleKey); throttleErr != nil {
			log.Err(throttleErr).Msg("failed login was not counted")
		}
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if err = a.throttle.Reset(ctx, throttleKey); err != nil {
		log.Err(err).Msg("throttle reset failed after successful login")
	}

	token, err := a.tokens.Issue(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	attempt.UserID = &user.UserID
	attempt.Success = true
	a.recordAttempt(ctx, attempt, "")
	log.Info().Int64("user_id", user.UserID).Msg("member logged in")

	return user, token, nil
}

func (a *authService) Authenticate(ctx context.Context, email, memberCode, password string) (models.User, error) {
	user, _, err := a.authenticate(ctx, email, memberCode, password)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// authenticate returns the matched user, or on ErrInvalidCredentials the
// audit reason and, for a wrong password, the user that was matched.
func (a *authService) authenticate(ctx context.Context, email, memberCode, password string) (models.User, string, error) {
	if !validators.MemberCodeValid(memberCode) {
		a.passwords.VerifyDummy(password)
		return models.User{}, models.LoginFailureUnknownMember, ErrInvalidCredentials
	}

	user, err := a.users.FindActiveMember(ctx, email, memberCode)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.passwords.VerifyDummy(password)
		return models.User{}, models.LoginFailureUnknownMember, ErrInvalidCredentials
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("member lookup failed")
		return models.User{}, "", domainError(err)
	}

	ok, err := a.passwords.Verify(password, user.PasswordHash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("password verification failed")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !ok {
		return models.User{UserID: user.UserID}, models.LoginFailureWrongPassword, ErrInvalidCredentials
	}

	return user, "", nil
}

func (a *authService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, domainError(err)
	}
	return user.Profile(), nil
}

// UpdateProfile rewrites phone and address. Identity fields are immutable.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.Profile, error) {
	req = a.sanitizer.UpdateProfile(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	user, err := a.users.UpdateContactDetails(ctx, userID, req.Phone, req.Address, a.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.Profile{}, domainError(err)
	}

	return user.Profile(), nil
}

// ChangePassword replaces the password hash after the current password has
// been confirmed.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return domainError(err)
	}

	ok, err := a.passwords.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password verification failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !ok {
		return validators.NewValidationError(validators.FieldCurrentPassword, "Current password is incorrect")
	}

	hash, err := a.passwords.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err = a.users.UpdatePasswordHash(ctx, userID, hash, a.now().UTC()); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return domainError(err)
	}

	log.Info().Int64("user_id", userID).Msg("password changed")
	return nil
}

func (a *authService) CheckMemberAccess(ctx context.Context, claims models.Claims) error {
	if !claims.IsActiveMember() {
		logger.FromContext(ctx).Debug().Str("sub", claims.Subject).Msg("member content denied")
		return ErrAccessDenied
	}
	return nil
}

// recordAttempt writes the audit row. Its failure never changes the login
// outcome.
func (a *authService) recordAttempt(ctx context.Context, attempt models.LoginAttempt, reason string) {
	attempt.FailureReason = reason
	attempt.CreatedAt = a.now().UTC()

	if err := a.attempts.SaveLoginAttempt(ctx, attempt); err != nil {
		logger.FromContext(ctx).Err(err).Str("email", attempt.Email).Msg("login attempt was not recorded")
	}
}

func (a *authService) publish(ctx context.Context, event models.MemberEvent) {
	if err := a.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).Str("type", string(event.Type)).Msg("member event was not published")
	}
}

// domainError translates store errors into service errors.
func domainError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrIDNumberAlreadyExists):
		return ErrDuplicateIDNumber
	case errors.Is(err, store.ErrMemberCodeAlreadyExists):
		return ErrDuplicateMemberCode
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/storefront-auth/internal/events"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/store"
	"github.com/MKhiriev/storefront-auth/internal/validators"
	"github.com/MKhiriev/storefront-auth/models"
)

type memberService struct {
	users     store.UserRepository
	validator validators.Validator
	sanitizer *validators.Sanitizer
	publisher events.Publisher

	now    func() time.Time
	logger *logger.Logger
}

// NewMemberService constructs the administrative [MemberService].
func NewMemberService(users store.UserRepository, validator validators.Validator, publisher events.Publisher, logger *logger.Logger) MemberService {
	return &memberService{
		users:     users,
		validator: validator,
		sanitizer: validators.NewSanitizer(),
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// AssignMemberCode binds a CP###### code to the user and activates the
// account. Reassigning a user's own code reactivates it.
func (s *memberService) AssignMemberCode(ctx context.Context, userID int64, req models.AssignMemberCodeRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.MemberCode = strings.ToUpper(strings.TrimSpace(req.MemberCode))
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	holder, err := s.users.FindUserByMemberCode(ctx, req.MemberCode)
	switch {
	case err == nil && holder.UserID != userID:
		return models.User{}, ErrDuplicateMemberCode
	case err != nil && !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("member code lookup failed")
		return models.User{}, domainError(err)
	}

	now := s.now().UTC()
	user, err := s.users.AssignMemberCode(ctx, userID, req.MemberCode, now)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("member code assignment failed")
		return models.User{}, domainError(err)
	}

	log.Info().Int64("user_id", userID).Str("member_code", req.MemberCode).Msg("member code assigned")
	s.publish(ctx, models.MemberEvent{
		Type:       models.EventMemberCodeAssigned,
		UserID:     user.UserID,
		Email:      user.Email,
		MemberCode: user.MemberCodeValue(),
		Status:     user.AccountStatus,
		OccurredAt: now,
	})

	return user, nil
}

// SuspendMember suspends the account and its member code. Reinstatement is
// a new AssignMemberCode.
func (s *memberService) SuspendMember(ctx context.Context, userID int64, req models.SuspendMemberRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Reason = s.sanitizer.Text(req.Reason)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	now := s.now().UTC()
	user, err := s.users.SuspendUser(ctx, userID, req.Reason, now)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("member suspension failed")
		return models.User{}, domainError(err)
	}

	log.Info().Int64("user_id", userID).Msg("member suspended")
	s.publish(ctx, models.MemberEvent{
		Type:       models.EventMemberSuspended,
		UserID:     user.UserID,
		Email:      user.Email,
		MemberCode: user.MemberCodeValue(),
		Status:     user.AccountStatus,
		Reason:     req.Reason,
		OccurredAt: now,
	})

	return user, nil
}

func (s *memberService) publish(ctx context.Context, event models.MemberEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).Str("type", string(event.Type)).Msg("member event was not published")
	}
}

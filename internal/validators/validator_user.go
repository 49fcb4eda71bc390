// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/storefront-auth/internal/crypto"
	"github.com/MKhiriev/storefront-auth/models"
)

// Field names used in validation reports and as step names.
const (
	FieldIDNumber        = "idNumber"
	FieldFirstName       = "firstName"
	FieldSurname         = "surname"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAddress         = "address"
	FieldPassword        = "password"
	FieldMemberCode      = "memberCode"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldReason          = "reason"
)

var (
	namePattern       = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	phonePattern      = regexp.MustCompile(`^(?:\+27|0)[6-8][0-9]{8}$`)
	memberCodePattern = regexp.MustCompile(`^CP[0-9]{6}$`)
)

// MemberCodeValid reports whether code has the CP###### format.
func MemberCodeValid(code string) bool {
	return memberCodePattern.MatchString(code)
}

// UserValidator holds one pipeline per auth operation.
type UserValidator struct {
	register         Pipeline[models.RegisterRequest]
	login            Pipeline[models.LoginRequest]
	updateProfile    Pipeline[models.UpdateProfileRequest]
	changePassword   Pipeline[models.ChangePasswordRequest]
	assignMemberCode Pipeline[models.AssignMemberCodeRequest]
	suspendMember    Pipeline[models.SuspendMemberRequest]
}

// NewUserValidator builds the operation pipelines. now is the clock used for
// the minimum age rule.
func NewUserValidator(passwords crypto.PasswordPolicy, now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}

	return &UserValidator{
		register: NewPipeline(
			Step[models.RegisterRequest]{FieldIDNumber, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkIDNumber(v.IDNumber, now(), r)
			}},
			Step[models.RegisterRequest]{FieldFirstName, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkName(FieldFirstName, "First name", v.FirstName, r)
			}},
			Step[models.RegisterRequest]{FieldSurname, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkName(FieldSurname, "Surname", v.Surname, r)
			}},
			Step[models.RegisterRequest]{FieldEmail, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkEmail(v.Email, r)
			}},
			Step[models.RegisterRequest]{FieldPhone, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkPhone(v.Phone, r)
			}},
			Step[models.RegisterRequest]{FieldAddress, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkAddress(v.Address, r)
			}},
			Step[models.RegisterRequest]{FieldPassword, func(_ context.Context, v models.RegisterRequest, r *Report) {
				checkPasswordPolicy(FieldPassword, v.Password, passwords, r)
			}},
		),
		login: NewPipeline(
			Step[models.LoginRequest]{FieldEmail, func(_ context.Context, v models.LoginRequest, r *Report) {
				checkEmail(v.Email, r)
			}},
			Step[models.LoginRequest]{FieldPassword, func(_ context.Context, v models.LoginRequest, r *Report) {
				checkRequired(FieldPassword, "Password", v.Password, r)
			}},
		),
		updateProfile: NewPipeline(
			Step[models.UpdateProfileRequest]{FieldPhone, func(_ context.Context, v models.UpdateProfileRequest, r *Report) {
				checkPhone(v.Phone, r)
			}},
			Step[models.UpdateProfileRequest]{FieldAddress, func(_ context.Context, v models.UpdateProfileRequest, r *Report) {
				checkAddress(v.Address, r)
			}},
		),
		changePassword: NewPipeline(
			Step[models.ChangePasswordRequest]{FieldCurrentPassword, func(_ context.Context, v models.ChangePasswordRequest, r *Report) {
				checkRequired(FieldCurrentPassword, "Current password", v.CurrentPassword, r)
			}},
			Step[models.ChangePasswordRequest]{FieldNewPassword, func(_ context.Context, v models.ChangePasswordRequest, r *Report) {
				checkPasswordPolicy(FieldNewPassword, v.NewPassword, passwords, r)
				if v.NewPassword != "" && v.NewPassword == v.CurrentPassword {
					r.Add(FieldNewPassword, "New password must differ from the current password")
				}
			}},
		),
		assignMemberCode: NewPipeline(
			Step[models.AssignMemberCodeRequest]{FieldMemberCode, func(_ context.Context, v models.AssignMemberCodeRequest, r *Report) {
				if !checkRequired(FieldMemberCode, "Member code", v.MemberCode, r) {
					return
				}
				if !MemberCodeValid(v.MemberCode) {
					r.Add(FieldMemberCode, "Invalid member code format")
				}
			}},
		),
		suspendMember: NewPipeline(
			Step[models.SuspendMemberRequest]{FieldReason, func(_ context.Context, v models.SuspendMemberRequest, r *Report) {
				if !checkRequired(FieldReason, "Reason", v.Reason, r) {
					return
				}
				if utf8.RuneCountInString(v.Reason) > 255 {
					r.Add(FieldReason, "Reason must not exceed 255 characters")
				}
			}},
		),
	}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.register.Run(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.register.Run(ctx, *value, fields...)

	case models.LoginRequest:
		return v.login.Run(ctx, value, fields...)
	case *models.LoginRequest:
		return v.login.Run(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.updateProfile.Run(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.updateProfile.Run(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.changePassword.Run(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.changePassword.Run(ctx, *value, fields...)

	case models.AssignMemberCodeRequest:
		return v.assignMemberCode.Run(ctx, value, fields...)
	case *models.AssignMemberCodeRequest:
		return v.assignMemberCode.Run(ctx, *value, fields...)

	case models.SuspendMemberRequest:
		return v.suspendMember.Run(ctx, value, fields...)
	case *models.SuspendMemberRequest:
		return v.suspendMember.Run(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func checkRequired(field, label, value string, r *Report) bool {
	if strings.TrimSpace(value) == "" {
		r.Add(field, label+" is required")
		return false
	}
	return true
}

func checkIDNumber(idNumber string, now time.Time, r *Report) {
	if !checkRequired(FieldIDNumber, "ID number", idNumber, r) {
		return
	}

	birth, err := BirthDateFromIDNumber(idNumber, now)
	if err != nil {
		r.Add(FieldIDNumber, "Invalid South African ID number")
		return
	}

	if AgeAt(birth, now) < MinimumAge {
		r.Add(FieldIDNumber, fmt.Sprintf("Must be %d or older to register", MinimumAge))
	}
}

func checkName(field, label, value string, r *Report) {
	if !checkRequired(field, label, value, r) {
		return
	}

	n := utf8.RuneCountInString(value)
	if n < 2 || n > 50 {
		r.Add(field, label+" must be between 2 and 50 characters")
	}
	if !namePattern.MatchString(value) {
		r.Add(field, label+" can only contain letters, spaces, hyphens and apostrophes")
	}
}

func checkEmail(email string, r *Report) {
	if !checkRequired(FieldEmail, "Email", email, r) {
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		r.Add(FieldEmail, "Invalid email address")
	}
}

func checkPhone(phone string, r *Report) {
	if !checkRequired(FieldPhone, "Phone number", phone, r) {
		return
	}
	if !phonePattern.MatchString(phone) {
		r.Add(FieldPhone, "Invalid South African phone number")
	}
}

func checkAddress(address string, r *Report) {
	if !checkRequired(FieldAddress, "Residential address", address, r) {
		return
	}
	n := utf8.RuneCountInString(address)
	if n < 10 || n > 200 {
		r.Add(FieldAddress, "Address must be between 10 and 200 characters")
	}
}

func checkPasswordPolicy(field, password string, passwords crypto.PasswordPolicy, r *Report) {
	if password == "" {
		r.Add(field, "Password is required")
		return
	}

	report := passwords.Validate(password)
	for _, msg := range report.Errors {
		r.Add(field, msg)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/storefront-auth/models"
)

// Sanitizer trims free-text input and strips any markup from it.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer backed by bluemonday's strict policy,
// which removes every HTML element.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes markup and surrounding whitespace. Entities produced by the
// policy are unescaped so that names such as O'Brien survive.
func (s *Sanitizer) Text(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(strings.TrimSpace(v))))
}

// Email trims and lowercases an email address.
func (s *Sanitizer) Email(v string) string {
	return strings.ToLower(s.Text(v))
}

// Register normalizes a registration request. Passwords are left untouched.
func (s *Sanitizer) Register(req models.RegisterRequest) models.RegisterRequest {
	return models.RegisterRequest{
		IDNumber:  strings.TrimSpace(req.IDNumber),
		FirstName: s.Text(req.FirstName),
		Surname:   s.Text(req.Surname),
		Email:     s.Email(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   s.Text(req.Address),
		Password:  req.Password,
	}
}

// Login normalizes a login request.
func (s *Sanitizer) Login(req models.LoginRequest) models.LoginRequest {
	return models.LoginRequest{
		Email:      s.Email(req.Email),
		MemberCode: strings.ToUpper(strings.TrimSpace(req.MemberCode)),
		Password:   req.Password,
	}
}

// UpdateProfile normalizes a profile update.
func (s *Sanitizer) UpdateProfile(req models.UpdateProfileRequest) models.UpdateProfileRequest {
	return models.UpdateProfileRequest{
		Phone:   strings.TrimSpace(req.Phone),
		Address: s.Text(req.Address),
	}
}

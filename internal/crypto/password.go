// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Password rules. Lengths are counted in characters; the byte cap keeps
// every accepted password inside bcrypt's 72-byte input limit.
const (
	MinPasswordLength   = 8
	MaxPasswordLength   = 64
	MaxPasswordBytes    = 72
	PasswordSpecialSet  = `!@#$%^&*(),.?":{}|<>`
	dummyPasswordSecret = "storefront-dummy-password"
)

var weakPasswordPattern = regexp.MustCompile(`(?i)12345|password|qwerty|abc123`)

// Strength labels reported by [PasswordReport].
const (
	StrengthWeak       = "Weak"
	StrengthModerate   = "Moderate"
	StrengthStrong     = "Strong"
	StrengthVeryStrong = "Very Strong"
)

// PasswordReport is the outcome of [PasswordPolicy.Validate].
type PasswordReport struct {
	IsValid  bool
	Errors   []string
	Score    int
	Strength string
}

type bcryptPolicy struct {
	cost      int
	dummyHash []byte
}

// NewPasswordPolicy returns a bcrypt backed [PasswordPolicy] using the
// given work factor.
func NewPasswordPolicy(cost int) (PasswordPolicy, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPasswordSecret), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: precomputing dummy hash: %w", ErrHashing, err)
	}

	return &bcryptPolicy{cost: cost, dummyHash: dummy}, nil
}

func (p *bcryptPolicy) Validate(password string) PasswordReport {
	report := PasswordReport{}
	length := utf8.RuneCountInString(password)

	check := func(ok bool, msg string) {
		if ok {
			report.Score++
			return
		}
		report.Errors = append(report.Errors, msg)
	}

	check(length >= MinPasswordLength,
		fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	tooLong := fmt.Sprintf("Password must not exceed %d characters", MaxPasswordLength)
	if length <= MaxPasswordLength {
		tooLong = fmt.Sprintf("Password must not exceed %d bytes; accented letters and symbols count as more than one", MaxPasswordBytes)
	}
	check(length <= MaxPasswordLength && len(password) <= MaxPasswordBytes, tooLong)
	check(strings.IndexFunc(password, unicode.IsUpper) >= 0,
		"Password must contain at least one uppercase letter")
	check(strings.IndexFunc(password, unicode.IsLower) >= 0,
		"Password must contain at least one lowercase letter")
	check(strings.IndexFunc(password, unicode.IsDigit) >= 0,
		"Password must contain at least one number")
	check(strings.ContainsAny(password, PasswordSpecialSet),
		"Password must contain at least one special character ("+PasswordSpecialSet+")")
	check(!weakPasswordPattern.MatchString(password),
		"Password contains common patterns and is too weak")

	if length >= 12 {
		report.Score++
	}
	if length >= 16 {
		report.Score++
	}
	if countUpper(password) >= 2 {
		report.Score++
	}

	report.IsValid = len(report.Errors) == 0
	report.Strength = strengthLabel(report.Score)

	return report
}

func (p *bcryptPolicy) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	return string(hash), nil
}

func (p *bcryptPolicy) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrVerification, err)
	}
}

func (p *bcryptPolicy) VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(p.dummyHash, []byte(password))
}

func countUpper(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}

func strengthLabel(score int) string {
	switch {
	case score < 3:
		return StrengthWeak
	case score < 5:
		return StrengthModerate
	case score < 7:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

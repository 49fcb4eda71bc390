// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The "sub" claim carries the user id as a base-10 string; the remaining
// custom claims mirror the member state at the moment of login.
type Claims struct {
	jwt.RegisteredClaims

	Email            string           `json:"email"`
	MemberCode       string           `json:"memberCode"`
	MemberCodeStatus MemberCodeStatus `json:"memberCodeStatus"`
}

// UserID parses the "sub" claim as an int64.
func (c Claims) UserID() (int64, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// IsActiveMember reports whether the token was minted for a member with an
// ACTIVE member code.
func (c Claims) IsActiveMember() bool {
	return c.MemberCode != "" && c.MemberCodeStatus == MemberCodeActive
}

// Token is a signed session token together with its expiry.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	// ExpiresAt mirrors the "exp" claim. The auth cookie shares it.
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

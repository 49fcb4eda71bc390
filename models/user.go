// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MemberCodeStatus is the lifecycle state of a member code.
type MemberCodeStatus string

const (
	MemberCodePending   MemberCodeStatus = "PENDING"
	MemberCodeActive    MemberCodeStatus = "ACTIVE"
	MemberCodeSuspended MemberCodeStatus = "SUSPENDED"
	MemberCodeRevoked   MemberCodeStatus = "REVOKED"
)

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	AccountPending   AccountStatus = "PENDING"
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// User represents a storefront member account.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Public] or [User.Profile] when building responses.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// IDNumber is the 13-digit national ID number. Immutable after registration.
	IDNumber string `json:"-"`

	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`

	// Email is unique across all users and stored lowercased.
	Email string `json:"email"`

	Phone   string `json:"phone"`
	Address string `json:"address"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// MemberCode is nil until an administrator assigns one.
	MemberCode *string `json:"memberCode"`

	MemberCodeStatus   MemberCodeStatus `json:"memberCodeStatus"`
	MemberCodeIssuedAt *time.Time       `json:"memberCodeIssuedAt,omitempty"`

	AccountStatus AccountStatus `json:"accountStatus"`

	// StatusReason records why an administrator suspended the account.
	StatusReason *string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberCodeValue returns the member code or an empty string when none is
// assigned.
func (u User) MemberCodeValue() string {
	if u.MemberCode == nil {
		return ""
	}
	return *u.MemberCode
}

// PublicProfile is the subset of user fields returned by a successful login.
type PublicProfile struct {
	ID               int64            `json:"id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"firstName"`
	Surname          string           `json:"surname"`
	MemberCode       string           `json:"memberCode"`
	MemberCodeStatus MemberCodeStatus `json:"memberCodeStatus"`
}

// Profile is the authenticated view of the caller's own account.
type Profile struct {
	PublicProfile
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	AccountStatus AccountStatus `json:"accountStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Public builds the login response view of u.
func (u User) Public() PublicProfile {
	return PublicProfile{
		ID:               u.UserID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		Surname:          u.Surname,
		MemberCode:       u.MemberCodeValue(),
		MemberCodeStatus: u.MemberCodeStatus,
	}
}

// Profile builds the profile response view of u.
func (u User) Profile() Profile {
	return Profile{
		PublicProfile: u.Public(),
		Phone:         u.Phone,
		Address:       u.Address,
		AccountStatus: u.AccountStatus,
		CreatedAt:     u.CreatedAt,
	}
}

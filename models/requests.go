// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	IDNumber  string `json:"idNumber"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	MemberCode string `json:"memberCode"`
	Password   string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /auth/profile. Only contact
// details are mutable.
type UpdateProfileRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ChangePasswordRequest is the body of PUT /auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AssignMemberCodeRequest is the body of the admin member-code endpoint.
type AssignMemberCodeRequest struct {
	MemberCode string `json:"memberCode"`
}

// SuspendMemberRequest is the body of the admin suspend endpoint.
type SuspendMemberRequest struct {
	Reason string `json:"reason"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/storefront-auth/models"
)

func TestSanitizer_Text(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		in, want string
	}{
		{"  Thandi  ", "Thandi"},
		{"O'Brien", "O'Brien"},
		{"<b>Bold</b> Name", "Bold Name"},
		{"<script>alert(1)</script>Sipho", "Sipho"},
		{"12 Long Street & Co", "12 Long Street & Co"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Text(tt.in), tt.in)
	}
}

func TestSanitizer_Register(t *testing.T) {
	s := NewSanitizer()

	got := s.Register(models.RegisterRequest{
		IDNumber:  " 9801015800084 ",
		FirstName: " Thandi ",
		Surname:   "<i>Nkosi</i>",
		Email:     "  User@Example.COM ",
		Phone:     " 0821234567 ",
		Address:   " 12 Long Street, Cape Town ",
		Password:  " Str0ng!Pass ",
	})

	assert.Equal(t, models.RegisterRequest{
		IDNumber:  "9801015800084",
		FirstName: "Thandi",
		Surname:   "Nkosi",
		Email:     "user@example.com",
		Phone:     "0821234567",
		Address:   "12 Long Street, Cape Town",
		Password:  " Str0ng!Pass ",
	}, got)
}

func TestSanitizer_Login(t *testing.T) {
	got := NewSanitizer().Login(models.LoginRequest{Email: " USER@example.com", MemberCode: " cp123456 ", Password: "p"})

	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, "CP123456", got.MemberCode)
	assert.Equal(t, "p", got.Password)
}

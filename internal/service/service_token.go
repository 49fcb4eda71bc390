// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/models"
)

// tokenService signs session tokens with HMAC-SHA256.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim. Tokens of another issuer are rejected.
	issuer string

	// ttl is the lifetime of a newly issued token.
	ttl time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings of cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
		now:     time.Now,
		logger:  logger,
	}
}

// Issue mints a token whose "sub" is the user id and whose custom claims
// mirror the member state of user.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:            user.Email,
		MemberCode:       user.MemberCodeValue(),
		MemberCodeStatus: user.MemberCodeStatus,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{SignedString: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify checks signature, algorithm, issuer and expiry of token.
// An expired token yields [ErrExpiredToken]; any other defect yields
// [ErrInvalidToken].
func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, ErrExpiredToken
	case err != nil:
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrInvalidToken
	}

	if _, err = claims.UserID(); err != nil {
		return models.Claims{}, ErrInvalidToken
	}

	return claims, nil
}

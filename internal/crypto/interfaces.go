// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_policy_mock.go -package=mock

// PasswordPolicy owns everything the service knows about passwords: the
// strength rules, the one-way hash and its verification.
//
// Implementations must be safe for concurrent use.
type PasswordPolicy interface {
	// Validate applies every strength rule to password and reports all
	// failures at once together with a strength score.
	Validate(password string) PasswordReport

	// Hash returns a salted bcrypt hash of password. Errors wrap ErrHashing.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is
	// (false, nil); any other failure wraps ErrVerification.
	Verify(password, hash string) (bool, error)

	// VerifyDummy spends the same CPU time as Verify against a real hash.
	// It is called when no account matched so that both failure paths
	// take equally long.
	VerifyDummy(password string)
}

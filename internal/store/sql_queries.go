// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-auth/models"
)

const (
	usersTable         = "users"
	loginThrottleTable = "login_throttles"
	loginAttemptTable  = "login_attempts"
)

var userColumns = []string{
	"id",
	"id_number",
	"first_name",
	"surname",
	"email",
	"phone",
	"address",
	"password_hash",
	"member_code",
	"member_code_status",
	"member_code_issued_at",
	"account_status",
	"status_reason",
	"created_at",
	"updated_at",
}

var throttleColumns = []string{"throttle_key", "failed_count", "lock_until", "updated_at"}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans a row selected with userColumns.
func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var memberCodeStatus, accountStatus string

	err := row.Scan(
		&u.UserID,
		&u.IDNumber,
		&u.FirstName,
		&u.Surname,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.PasswordHash,
		&u.MemberCode,
		&memberCodeStatus,
		&u.MemberCodeIssuedAt,
		&accountStatus,
		&u.StatusReason,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	u.MemberCodeStatus = models.MemberCodeStatus(memberCodeStatus)
	u.AccountStatus = models.AccountStatus(accountStatus)

	return u, nil
}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder.Select(userColumns...).From(usersTable)
}

func (db *DB) insertUser(u models.User) sq.InsertBuilder {
	return db.builder.Insert(usersTable).
		Columns(
			"id_number",
			"first_name",
			"surname",
			"email",
			"phone",
			"address",
			"password_hash",
			"member_code_status",
			"account_status",
			"created_at",
			"updated_at",
		).
		Values(
			u.IDNumber,
			u.FirstName,
			u.Surname,
			u.Email,
			u.Phone,
			u.Address,
			u.PasswordHash,
			string(u.MemberCodeStatus),
			string(u.AccountStatus),
			u.CreatedAt,
			u.UpdatedAt,
		).
		Suffix("RETURNING id")
}

// incrementThrottle adds one failure to key, creating the row on first use.
func (db *DB) incrementThrottle(key string, at time.Time) sq.InsertBuilder {
	return db.builder.Insert(loginThrottleTable).
		Columns("throttle_key", "failed_count", "updated_at").
		Values(key, 1, at).
		Suffix("ON CONFLICT (throttle_key) DO UPDATE SET " +
			"failed_count = " + loginThrottleTable + ".failed_count + 1, " +
			"updated_at = excluded.updated_at " +
			"RETURNING failed_count")
}

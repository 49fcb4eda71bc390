// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// MinimumAge is the youngest age allowed to register.
const MinimumAge = 18

var idNumberPattern = regexp.MustCompile(`^[0-9]{13}$`)

var (
	errIDNumberFormat = errors.New("invalid ID number format")
	errIDNumberDate   = errors.New("invalid birth date in ID number")
)

// BirthDateFromIDNumber derives the birth date encoded in the first six
// digits (YYMMDD) of a 13-digit national ID number.
//
// Century: a two-digit year less than or equal to the current two-digit
// year (taken from now) is in the 2000s, otherwise in the 1900s.
func BirthDateFromIDNumber(idNumber string, now time.Time) (time.Time, error) {
	if !idNumberPattern.MatchString(idNumber) {
		return time.Time{}, errIDNumberFormat
	}

	yy, _ := strconv.Atoi(idNumber[0:2])
	mm, _ := strconv.Atoi(idNumber[2:4])
	dd, _ := strconv.Atoi(idNumber[4:6])

	century := 1900
	if yy <= now.Year()%100 {
		century = 2000
	}
	year := century + yy

	if mm < 1 || mm > 12 || dd < 1 {
		return time.Time{}, errIDNumberDate
	}

	birth := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31 February into March
	if birth.Month() != time.Month(mm) || birth.Day() != dd {
		return time.Time{}, errIDNumberDate
	}

	if birth.After(now) {
		return time.Time{}, errIDNumberDate
	}

	return birth, nil
}

// AgeAt returns the number of full years between birth and now.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

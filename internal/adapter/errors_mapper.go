// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/storefront-auth/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError converts a non-2xx response into a sentinel wrapped with the
// server's error message. Field errors of a validation failure are appended
// as "field: message" pairs.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope struct {
		models.ErrorResponse
		Details json.RawMessage `json:"details,omitempty"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Error == "" {
		if body == "" {
			return http.StatusText(resp.StatusCode())
		}
		return body
	}

	var fields []models.FieldError
	if err := json.Unmarshal(envelope.Details, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return envelope.Error + " (" + strings.Join(parts, "; ") + ")"
	}

	return envelope.Error
}

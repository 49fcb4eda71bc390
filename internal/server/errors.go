// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errMissingHTTPHandler is returned by NewServer when it receives no HTTP
// handler or no listen address.
var errMissingHTTPHandler = errors.New("http handler or listen address is missing")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server has no HTTP
// listen address. main treats it as fatal.
var errNoHTTPAddress = errors.New("no http listen address configured")

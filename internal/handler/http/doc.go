// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// response compression, security headers, session loading, CSRF
// verification, per-address login limiting, cookie authentication and
// membership checks are handled in this package before requests are
// delegated to the service layer.
package http

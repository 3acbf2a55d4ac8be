// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches a service. Callers can match against them with [errors.Is].
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries neither a "token" cookie nor an "Authorization" header.
	ErrMissingToken = errors.New("missing session token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not valid JSON or
	// carries fields the endpoint does not accept.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid resource id")

	// ErrMalformedForm is returned when a multipart body cannot be parsed.
	ErrMalformedForm = errors.New("malformed multipart form")
)

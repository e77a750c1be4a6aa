// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or carries no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer prefix but the token value itself is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidRequestBody is reported when a request body is not valid JSON
	// for the target input type.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// Response messages. Internal details are logged and never sent to clients.
const (
	msgInvalidRequestBody  = "Invalid request body"
	msgCredentialsRequired = "username and password are required"
	msgUserExists          = "User already exists"
	msgUserRegistered      = "User registered successfully"
	msgInvalidCredentials  = "Invalid username or password"
	msgUnauthorized        = "Unauthorized"
	msgForbidden           = "Forbidden"
	msgInvalidDiaryEntry   = "Invalid diary entry"
	msgDiaryEntryNotFound  = "Diary entry not found"
	msgNotFound            = "Not found"
	msgInternalError       = "Internal server error"
)

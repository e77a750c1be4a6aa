// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed REST client for the travel-diary server.
//
// [ServerAdapter] hides resty, bearer-token handling and status mapping.
// Error values in errors.go are mapped from HTTP status codes by mapHTTPError
// so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-travel-diary/models"
)

// ServerAdapter defines communication with the travel-diary server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent diary
	// requests. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Health calls the liveness endpoint and returns its greeting.
	Health(ctx context.Context) (string, error)

	// Register creates an account. A taken username yields [ErrConflict].
	Register(ctx context.Context, user models.User) error

	// Login exchanges credentials for a bearer token, stores it and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error)
	GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error)
	CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error)
	ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, id string) error
}

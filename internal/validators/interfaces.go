// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach business
// logic.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//   - InputValidator: go-playground/validator backed implementation that
//     knows the travel-diary request models and reports failures as
//     sentinel errors from this package.
//
// Validation is decoupled from transport and storage: services wrap their
// inner implementation with a validating decorator that calls Validate.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate returns nil if the value is acceptable, or an error wrapping
	// one of this package's sentinels otherwise.
	Validate(ctx context.Context, obj any) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup requirements. Every failed rule is reported; the result wraps
// the sentinel of its configuration group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < 0 {
		errs = append(errs, fmt.Errorf("%w: password hash cost must not be negative", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_*, SERVER_* and STORAGE_* variables
// declared by the `env` tags on [StructuredConfig].
//
// Origins in SERVER_ALLOWED_ORIGINS are trimmed and empty items dropped,
// matching the -allowed-origins flag.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Server.AllowedOrigins != nil {
		cfg.Server.AllowedOrigins = splitList(strings.Join(cfg.Server.AllowedOrigins, ","))
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Credentials are
// whitespace-trimmed.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.AccessToken = strings.TrimSpace(cfg.App.AccessToken)
	cfg.Chatwoot.APIKey = strings.TrimSpace(cfg.Chatwoot.APIKey)
	cfg.Evolution.APIKey = strings.TrimSpace(cfg.Evolution.APIKey)

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks invariants every binary relies on.
func (cfg *StructuredConfig) validate() error {
	if !cfg.Chatwoot.Enabled() && !cfg.Evolution.Enabled() {
		return ErrNoServicesConfigured
	}

	if cfg.Chatwoot.Enabled() {
		if err := cfg.Chatwoot.validate(); err != nil {
			return fmt.Errorf("chatwoot: %w", err)
		}
		if cfg.Chatwoot.AccountID == "" {
			return fmt.Errorf("chatwoot: %w: empty account id", ErrInvalidServiceConfigs)
		}
	}

	if cfg.Evolution.Enabled() {
		if err := cfg.Evolution.validate(); err != nil {
			return fmt.Errorf("evolution: %w", err)
		}
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Service) validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad base url %q", ErrInvalidServiceConfigs, s.BaseURL)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServiceConfigs)
	}
	return nil
}

func (cfg *AdminConfig) validate() error {
	if cfg.App.AccessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *GatewayConfig) validate() error {
	if cfg.Gateway.Address == "" || cfg.Gateway.CallerTokenHeader == "" {
		return ErrInvalidGatewayConfigs
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Chatwoot configures the transport to the conversation platform that
	// owns labels and inboxes.
	Chatwoot Service `envPrefix:"CHATWOOT_"`

	// Evolution configures the transport to the instance-provisioning service.
	Evolution Service `envPrefix:"EVOLUTION_"`

	// Gateway holds listen address and inbound auth settings of the HTTP gateway.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Cache holds resource cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// AccessToken is the caller token used by the admin panel for every
	// outbound request. The gateway takes the token from each inbound
	// request instead.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// LogFile is where the admin panel writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Service describes how to reach and authenticate against one external API.
// A transport copies it at construction and never mutates it.
type Service struct {
	// BaseURL is the root URL of the API (e.g. "https://chat.example.com").
	// Env: <SVC>_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AccountID scopes Chatwoot calls (/api/v1/accounts/{id}/...).
	// Unused by the provisioning service.
	// Env: <SVC>_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// TokenHeaderName is the header carrying the caller access token.
	// When empty the token is still required but not forwarded.
	// Env: <SVC>_TOKEN_HEADER
	TokenHeaderName string `env:"TOKEN_HEADER"`

	// TokenScheme is prepended to the token value (e.g. "Bearer").
	// Env: <SVC>_TOKEN_SCHEME
	TokenScheme string `env:"TOKEN_SCHEME"`

	// APIKeyHeaderName is the header carrying the static API key.
	// Env: <SVC>_API_KEY_HEADER
	APIKeyHeaderName string `env:"API_KEY_HEADER"`

	// APIKey is the static API key. Must be kept confidential.
	// Env: <SVC>_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds every outbound request; a request exceeding it
	// is reported as unreachable.
	// Env: <SVC>_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Enabled reports whether the service has a base URL configured.
func (s Service) Enabled() bool {
	return s.BaseURL != ""
}

// Gateway holds HTTP gateway settings.
type Gateway struct {
	// Address is the TCP address the gateway listens on ("host:port").
	// Env: GATEWAY_ADDRESS
	Address string `env:"ADDRESS"`

	// CallerTokenHeader is the inbound header that must carry the caller
	// token. It is also advertised in Access-Control-Allow-Headers.
	// Env: GATEWAY_CALLER_TOKEN_HEADER
	CallerTokenHeader string `env:"CALLER_TOKEN_HEADER"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: GATEWAY_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Cache holds resource cache settings.
type Cache struct {
	// ListRetries is the number of extra attempts made by a list call that
	// failed because the service was unreachable. Zero values never
	// override the default, so a negative value is used to disable retries.
	// Env: CACHE_LIST_RETRIES
	ListRetries int `env:"LIST_RETRIES"`

	// RetryBaseDelay is the first backoff delay; it doubles per attempt.
	// Env: CACHE_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval is how often every cache is re-listed in the
	// background. Zero disables the refresh worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources and
// validates invariants shared by every binary.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(nil).
		withJSON().
		build()
}

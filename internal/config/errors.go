package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrNoServicesConfigured indicates that neither upstream has a base URL.
	ErrNoServicesConfigured = errors.New("no upstream service configured")
	// ErrInvalidServiceConfigs indicates an upstream with a malformed base URL,
	// a missing account id or a non-positive request timeout.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidGatewayConfigs indicates a missing listen address or caller
	// token header.
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, the admin panel started without an access token).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a negative refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the gateway
	// configuration has no listen address. This is treated as a fatal
	// misconfiguration and causes the gateway to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServicesConfigured is returned when neither remote service has
	// a base URL, so every route would answer 503.
	errNoServicesConfigured = errors.New("no remote services are configured")
)

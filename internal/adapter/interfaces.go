// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// services that own labels, inboxes and instances.
//
// The primary abstraction is [Transport], which decouples resource APIs from
// HTTP. The package ships a resty-based implementation ([NewHTTPTransport]).
// Every call is reported to a connection monitor and every HTTP status is
// mapped to the error taxonomy defined in errors.go, so callers can use
// [errors.Is] and [errors.As] without looking at status codes.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/inbox-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport sends authenticated requests to one remote service.
type Transport interface {
	// Service returns the name of the remote service, used in logs and metrics.
	Service() string

	// SetToken stores the access token attached to every request that does
	// not carry its own token in the context.
	SetToken(token string)

	// Token returns the stored access token, or "" if none has been set.
	Token() string

	// Request sends body (JSON-encoded when non-nil) to path with method and
	// returns the raw response body. An empty 2xx body is returned as JSON
	// null. Errors are one of [ErrUnauthenticated], [ErrNotFound],
	// [ErrUnreachable], [ErrMalformedResponse] or a [*RemoteError].
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// Reporter receives the outcome category of each transport call.
// [*monitor.Monitor] implements it.
type Reporter interface {
	Report(outcome models.Outcome)
}

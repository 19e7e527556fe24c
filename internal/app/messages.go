// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// the view binder, the terminal UI and the gateway handlers.
//
// All Msg* constants are human-readable strings shown to the user or written
// into response bodies. [Describe] maps the error taxonomy onto them.
package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/cache"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgReauthRequired is shown when the access token is missing or was
	// rejected. The user has to supply a new one.
	MsgReauthRequired = "access token is missing or was rejected, sign in again"

	// MsgServiceUnreachable is shown when the remote service did not answer
	// in time. Retrying later may succeed.
	MsgServiceUnreachable = "service is unreachable, retry later"

	// MsgNotFound is shown when the item no longer exists.
	MsgNotFound = "item not found, refresh the list"

	// MsgConflict is shown when a change to the same item is still in flight.
	MsgConflict = "another change to this item is still in progress"

	// MsgUnsupported is shown for an operation the resource kind does not offer.
	MsgUnsupported = "operation is not supported for this item"

	// MsgStaleData is the banner shown over a snapshot whose refresh failed.
	MsgStaleData = "showing last known data"

	// MsgUnknownKind is returned for a route or tab of an unconfigured kind.
	MsgUnknownKind = "resource kind is not configured"

	// MsgMissingCallerToken is returned by the gateway when the caller token
	// header is absent.
	MsgMissingCallerToken = "missing caller token"

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "internal server error"
)

// Describe returns the user-facing text for err.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var remoteErr *adapter.RemoteError
	switch {
	case errors.Is(err, adapter.ErrUnauthenticated):
		return MsgReauthRequired
	case errors.Is(err, adapter.ErrUnreachable):
		return MsgServiceUnreachable
	case errors.Is(err, cache.ErrConflict):
		return MsgConflict
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, cache.ErrUnsupported):
		return MsgUnsupported
	case errors.As(err, &remoteErr):
		return fmt.Sprintf("server error %d: %s", remoteErr.Status, remoteErr.Message)
	default:
		return err.Error()
	}
}

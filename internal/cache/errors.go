package cache

import (
	"errors"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
)

var (
	// ErrNotFound is returned when the id is absent from the local snapshot.
	// It is the same value the transport returns for a remote 404.
	ErrNotFound = adapter.ErrNotFound
	// ErrConflict is returned when a mutation for the same id is already in flight.
	ErrConflict = errors.New("conflicting mutation in flight")
	// ErrSuperseded is returned by a list call whose result was discarded
	// because a newer list call was issued.
	ErrSuperseded = errors.New("superseded by a newer list call")
	// ErrUnsupported is returned for an action the resource kind does not offer.
	ErrUnsupported = errors.New("unsupported operation")
)

package cache

import "github.com/MKhiriev/inbox-admin/models"

// EventType identifies what happened in a [Cache].
type EventType int

const (
	// EventListStarted is emitted when a list call is issued.
	EventListStarted EventType = iota
	// EventListDone is emitted when the latest list call completed.
	// Err is nil on success.
	EventListDone
	// EventMutationStarted is emitted when a create, update, delete or
	// action call is issued. ID is empty for create.
	EventMutationStarted
	// EventMutationDone is emitted when a mutation completed.
	EventMutationDone
)

func (t EventType) String() string {
	switch t {
	case EventListStarted:
		return "list_started"
	case EventListDone:
		return "list_done"
	case EventMutationStarted:
		return "mutation_started"
	case EventMutationDone:
		return "mutation_done"
	default:
		return "unknown"
	}
}

// Event describes one change of a cache's observable state.
type Event struct {
	Type EventType
	Kind models.Kind
	// ID is the resource the mutation applies to.
	ID string
	// Op is "create", "update", "delete" or an action name for mutation events.
	Op  string
	Err error
}

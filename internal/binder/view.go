package binder

import "github.com/MKhiriev/inbox-admin/models"

// ViewKind is the rendering mode of a resource list.
type ViewKind int

const (
	// ViewLoading means a list call is in flight or none has completed yet.
	ViewLoading ViewKind = iota
	// ViewError means the last list call failed and there is no snapshot to show.
	ViewError
	// ViewEmpty means the snapshot has no items.
	ViewEmpty
	// ViewPopulated means the snapshot has items.
	ViewPopulated
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewPopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// ViewState is everything a view needs to render one resource kind.
type ViewState struct {
	Kind     ViewKind
	Resource models.Kind

	// Items is the current snapshot. It may be non-empty while Loading.
	Items []models.Resource

	// Message describes the failure when Kind is ViewError.
	Message string

	// Banner is set when Items are shown although the last refresh failed.
	Banner string

	// Notice describes the last failed delete or action.
	Notice string

	Connection models.ConnectionState

	// Uncertain is true when the service connection is not Connected, so
	// Items may not reflect the server.
	Uncertain bool

	// Retryable is true when the last refresh failed transiently.
	Retryable bool

	// ReauthRequired is true when the credential was missing or rejected.
	ReauthRequired bool
}

// EditorMode tells whether the editor is closed, creating or editing.
type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorCreate
	EditorEdit
)

// Editor is the state of the create/edit form.
type Editor struct {
	Mode   EditorMode
	ID     string
	Fields models.Fields

	// Err is the inline error of the last failed submit.
	Err        string
	Submitting bool

	session uint64
}

// Open reports whether the form is shown.
func (e Editor) Open() bool {
	return e.Mode != EditorClosed
}

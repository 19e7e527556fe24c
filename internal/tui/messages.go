package tui

import "github.com/MKhiriev/inbox-admin/models"

// viewChangedMsg is sent when any binder reports a change.
type viewChangedMsg struct{}

type refreshDoneMsg struct {
	kind models.Kind
	err  error
}

type submitDoneMsg struct {
	kind models.Kind
	err  error
}

type deleteDoneMsg struct {
	kind models.Kind
	id   string
	err  error
}

type actionDoneMsg struct {
	kind   models.Kind
	id     string
	action string
	err    error
}

type clearStatusMsg struct{}

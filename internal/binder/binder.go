// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package binder projects a resource cache and its connection monitor onto
// renderable view state, and owns the create/edit form of one resource kind.
package binder

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/app"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/monitor"
	"github.com/MKhiriev/inbox-admin/models"
)

// ErrEditorClosed is returned by Submit when no form is open.
var ErrEditorClosed = errors.New("editor is not open")

// Connection is the read side of a connection monitor.
type Connection interface {
	State() models.ConnectionState
	Subscribe(listener monitor.Listener) (unsubscribe func())
}

// Binder binds one [cache.Cache] and its [Connection] to a view.
type Binder struct {
	cache *cache.Cache
	conn  Connection

	mu        sync.Mutex
	editor    Editor
	sessions  uint64
	notice    string
	noticeErr error

	listenersMu sync.Mutex
	listeners   []subscription
	nextID      uint64

	unsubscribe []func()
}

type subscription struct {
	id       uint64
	listener func()
}

// New returns a binder for c. conn may be nil when the connection state is
// not tracked.
func New(c *cache.Cache, conn Connection) *Binder {
	b := &Binder{cache: c, conn: conn}
	b.unsubscribe = append(b.unsubscribe, c.Subscribe(func(cache.Event) { b.changed() }))
	if conn != nil {
		b.unsubscribe = append(b.unsubscribe, conn.Subscribe(func(models.ConnectionState) { b.changed() }))
	}
	return b
}

// Close detaches the binder from its cache and monitor.
func (b *Binder) Close() {
	for _, unsubscribe := range b.unsubscribe {
		unsubscribe()
	}
	b.unsubscribe = nil
}

// Kind returns the bound resource kind.
func (b *Binder) Kind() models.Kind {
	return b.cache.Kind()
}

// Actions returns the kind-specific actions available for items.
func (b *Binder) Actions() []string {
	return b.cache.Actions()
}

// Subscribe registers a re-render hook called after every cache event,
// connection change or editor change.
func (b *Binder) Subscribe(listener func()) (unsubscribe func()) {
	b.listenersMu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, subscription{id: id, listener: listener})
	b.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.listenersMu.Lock()
			defer b.listenersMu.Unlock()
			b.listeners = slices.DeleteFunc(b.listeners, func(s subscription) bool { return s.id == id })
		})
	}
}

func (b *Binder) changed() {
	b.listenersMu.Lock()
	listeners := make([]func(), 0, len(b.listeners))
	for _, s := range b.listeners {
		listeners = append(listeners, s.listener)
	}
	b.listenersMu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// View computes the current view state. Exactly one [ViewKind] applies:
// Loading while a list call is in flight or before the first one completed,
// Error when the last list failed and nothing was ever loaded, otherwise
// Empty or Populated.
func (b *Binder) View() ViewState {
	cacheState := b.cache.State()
	snapshot, listErr, loaded := cacheState.Snapshot, cacheState.LastErr, cacheState.Loaded

	state := ViewState{
		Resource:  b.cache.Kind(),
		Items:     snapshot.Items,
		Retryable: adapter.IsTransient(listErr),
	}

	switch {
	case cacheState.Loading || (!loaded && listErr == nil):
		state.Kind = ViewLoading
	case listErr != nil && !loaded:
		state.Kind = ViewError
		state.Message = app.Describe(listErr)
	case snapshot.Len() == 0:
		state.Kind = ViewEmpty
	default:
		state.Kind = ViewPopulated
	}

	if listErr != nil && loaded {
		state.Banner = app.MsgStaleData + ": " + app.Describe(listErr)
	}

	b.mu.Lock()
	state.Notice = b.notice
	noticeErr := b.noticeErr
	b.mu.Unlock()

	state.ReauthRequired = adapter.IsTerminal(listErr) || adapter.IsTerminal(noticeErr)

	if b.conn != nil {
		state.Connection = b.conn.State()
		state.Uncertain = state.Connection.Status != models.Connected
		if state.Connection.Status == models.Error {
			state.ReauthRequired = true
		}
	}

	return state
}

// Refresh re-lists the collection. A call superseded by a newer refresh is
// not an error.
func (b *Binder) Refresh(ctx context.Context) error {
	_, err := b.cache.List(ctx)
	if errors.Is(err, cache.ErrSuperseded) {
		return nil
	}
	return err
}

// Delete removes the item id. A failure is kept as the view notice.
func (b *Binder) Delete(ctx context.Context, id string) error {
	err := b.cache.Delete(ctx, id)
	b.setNotice("delete", err)
	return err
}

// Action runs a kind-specific action on the item id. A failure is kept as
// the view notice.
func (b *Binder) Action(ctx context.Context, id, action string) error {
	_, err := b.cache.Action(ctx, id, action)
	b.setNotice(action, err)
	return err
}

// DismissNotice clears the view notice.
func (b *Binder) DismissNotice() {
	b.setNotice("", nil)
}

func (b *Binder) setNotice(op string, err error) {
	b.mu.Lock()
	if err == nil {
		b.notice, b.noticeErr = "", nil
	} else {
		b.notice, b.noticeErr = op+" failed: "+app.Describe(err), err
	}
	b.mu.Unlock()
	b.changed()
}

// Editor returns a copy of the editor state.
func (b *Binder) Editor() Editor {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.editor
	e.Fields = e.Fields.Clone()
	return e
}

// OpenCreate opens an empty create form.
func (b *Binder) OpenCreate() {
	b.mu.Lock()
	b.sessions++
	b.editor = Editor{Mode: EditorCreate, Fields: models.Fields{}, session: b.sessions}
	b.mu.Unlock()
	b.changed()
}

// OpenEdit opens the edit form pre-filled with the current fields of id.
func (b *Binder) OpenEdit(id string) error {
	resource, ok := b.cache.Get(id)
	if !ok {
		return cache.ErrNotFound
	}

	b.mu.Lock()
	b.sessions++
	b.editor = Editor{Mode: EditorEdit, ID: id, Fields: resource.Fields, session: b.sessions}
	b.mu.Unlock()
	b.changed()
	return nil
}

// SetField changes one field of the open form.
func (b *Binder) SetField(name string, value any) {
	b.mu.Lock()
	if !b.editor.Open() {
		b.mu.Unlock()
		return
	}
	if b.editor.Fields == nil {
		b.editor.Fields = models.Fields{}
	}
	b.editor.Fields[name] = value
	b.mu.Unlock()
	b.changed()
}

// SubmitDisabled reports whether the submit control must be disabled: the
// form is already submitting or a mutation for the edited id is in flight.
func (b *Binder) SubmitDisabled() bool {
	b.mu.Lock()
	editor := b.editor
	b.mu.Unlock()

	if !editor.Open() || editor.Submitting {
		return true
	}
	return editor.Mode == EditorEdit && b.cache.Pending(editor.ID)
}

// Submit sends the form. On success the form closes; on failure it stays
// open with the inline error set and the error is returned.
func (b *Binder) Submit(ctx context.Context) error {
	b.mu.Lock()
	editor := b.editor
	if !editor.Open() {
		b.mu.Unlock()
		return ErrEditorClosed
	}
	if editor.Submitting {
		b.mu.Unlock()
		return cache.ErrConflict
	}
	b.editor.Submitting = true
	b.editor.Err = ""
	b.mu.Unlock()
	b.changed()

	var err error
	if editor.Mode == EditorCreate {
		_, err = b.cache.Create(ctx, editor.Fields.Clone())
	} else {
		_, err = b.cache.Update(ctx, editor.ID, editor.Fields.Clone())
	}

	b.mu.Lock()
	if b.editor.session == editor.session {
		if err == nil {
			b.editor = Editor{}
		} else {
			b.editor.Submitting = false
			b.editor.Err = app.Describe(err)
		}
	}
	b.mu.Unlock()
	b.changed()

	return err
}

// CloseEditor discards the form.
func (b *Binder) CloseEditor() {
	b.mu.Lock()
	b.editor = Editor{}
	b.mu.Unlock()
	b.changed()
}

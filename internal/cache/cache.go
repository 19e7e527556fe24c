package cache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/sethvargo/go-retry"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Cache is the local copy of one resource kind. It is safe for concurrent use.
type Cache struct {
	kind    models.Kind
	api     ResourceAPI
	actions ActionAPI

	mu       sync.Mutex
	snapshot models.Snapshot
	loaded   bool
	listSeq  uint64
	loading  bool
	lastErr  error
	pending  map[string]string
	creating int

	listenersMu sync.Mutex
	listeners   []subscription
	nextID      uint64

	retries   uint64
	baseDelay time.Duration
	now       func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

type subscription struct {
	id       uint64
	listener func(Event)
}

// New returns an empty cache backed by api. If api also implements
// [ActionAPI], [Cache.Action] forwards to it.
func New(api ResourceAPI, cfg config.Cache, m *metrics.Metrics, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}

	c := &Cache{
		kind:      api.Kind(),
		api:       api,
		pending:   make(map[string]string),
		baseDelay: cfg.RetryBaseDelay,
		now:       time.Now,
		metrics:   m,
		logger:    log.WithComponent("cache"),
	}
	if cfg.ListRetries > 0 {
		c.retries = uint64(cfg.ListRetries)
	}
	if c.baseDelay <= 0 {
		c.baseDelay = 100 * time.Millisecond
	}
	if actions, ok := api.(ActionAPI); ok {
		c.actions = actions
	}
	c.snapshot = models.Snapshot{Kind: c.kind, Items: []models.Resource{}}

	return c
}

// Kind returns the resource kind held by the cache.
func (c *Cache) Kind() models.Kind {
	return c.kind
}

// Actions returns the kind-specific actions accepted by [Cache.Action].
func (c *Cache) Actions() []string {
	if c.actions == nil {
		return nil
	}
	return slices.Clone(c.actions.Actions())
}

// Snapshot returns a deep copy of the current snapshot.
func (c *Cache) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// Get returns a copy of the resource id from the current snapshot.
func (c *Cache) Get(id string) (models.Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.snapshot.Find(id)
	if !ok {
		return models.Resource{}, false
	}
	return r.Clone(), true
}

// Loading reports whether the latest list call is still in flight.
func (c *Cache) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Loaded reports whether at least one list call has succeeded.
func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// State is a consistent view of the cache taken under one lock.
type State struct {
	Snapshot models.Snapshot
	Loading  bool
	Loaded   bool
	LastErr  error
}

// State returns the snapshot and list status read together.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Snapshot: c.snapshot.Clone(),
		Loading:  c.loading,
		Loaded:   c.loaded,
		LastErr:  c.lastErr,
	}
}

// LastError returns the error of the latest completed list call, or nil if
// it succeeded.
func (c *Cache) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Pending reports whether a mutation for id is in flight.
func (c *Cache) Pending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	return ok
}

// Creating reports whether a create call is in flight.
func (c *Cache) Creating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creating > 0
}

// Subscribe registers listener for cache events and returns a function that
// removes it. Listeners run synchronously on the goroutine that caused the
// event, after the cache state has been updated.
func (c *Cache) Subscribe(listener func(Event)) (unsubscribe func()) {
	c.listenersMu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, listener: listener})
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			defer c.listenersMu.Unlock()
			c.listeners = slices.DeleteFunc(c.listeners, func(s subscription) bool { return s.id == id })
		})
	}
}

func (c *Cache) emit(event Event) {
	event.Kind = c.kind

	c.listenersMu.Lock()
	listeners := make([]func(Event), 0, len(c.listeners))
	for _, s := range c.listeners {
		listeners = append(listeners, s.listener)
	}
	c.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// List fetches the whole collection and replaces the snapshot with it.
//
// Only the most recently issued list call may update the snapshot: an older
// call that completes later returns [ErrSuperseded] and its response is
// dropped. A failed call leaves the snapshot untouched. Unreachable errors
// are retried with exponential backoff as configured.
func (c *Cache) List(ctx context.Context) (models.Snapshot, error) {
	c.mu.Lock()
	c.listSeq++
	seq := c.listSeq
	c.loading = true
	c.mu.Unlock()

	c.emit(Event{Type: EventListStarted})

	items, err := c.fetch(ctx, seq)

	c.mu.Lock()
	if seq != c.listSeq {
		c.mu.Unlock()
		c.logger.Debug().Str("kind", c.kind.String()).Uint64("seq", seq).Msg("discarding superseded list response")
		return models.Snapshot{}, ErrSuperseded
	}
	c.loading = false
	c.lastErr = err
	if err == nil {
		c.snapshot = models.Snapshot{Kind: c.kind, Items: c.dedupe(items), FetchedAt: c.now()}
		c.loaded = true
	}
	snapshot := c.snapshot.Clone()
	c.mu.Unlock()

	if err == nil {
		c.metrics.SetCacheItems(c.kind, snapshot.Len())
	} else {
		c.logger.Warn().Err(err).Str("kind", c.kind.String()).Msg("list failed")
	}

	c.emit(Event{Type: EventListDone, Err: err})

	if err != nil {
		return models.Snapshot{}, err
	}
	return snapshot, nil
}

func (c *Cache) fetch(ctx context.Context, seq uint64) ([]models.Resource, error) {
	var (
		items   []models.Resource
		lastErr error
	)

	backoff := retry.WithMaxRetries(c.retries, retry.NewExponential(c.baseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if c.superseded(seq) {
			return ErrSuperseded
		}

		var err error
		items, err = c.api.List(ctx)
		lastErr = err
		if err != nil && adapter.IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})

	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("%w: %v", adapter.ErrUnreachable, err)
	}
	return items, err
}

func (c *Cache) superseded(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq != c.listSeq
}

// dedupe keeps the first occurrence of every id.
func (c *Cache) dedupe(items []models.Resource) []models.Resource {
	seen := make(map[string]struct{}, len(items))
	unique := make([]models.Resource, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			c.logger.Warn().Str("kind", c.kind.String()).Str("id", item.ID).Msg("duplicate id in list response, keeping first")
			continue
		}
		seen[item.ID] = struct{}{}
		item.Kind = c.kind
		unique = append(unique, item.Clone())
	}
	return unique
}

// Create creates a resource on the server and then adds it to the snapshot.
// If the snapshot already holds the returned id, that entry is replaced.
func (c *Cache) Create(ctx context.Context, fields models.Fields) (models.Resource, error) {
	c.mu.Lock()
	c.creating++
	c.mu.Unlock()

	c.emit(Event{Type: EventMutationStarted, Op: opCreate})

	created, err := c.api.Create(ctx, fields.Clone())

	c.mu.Lock()
	c.creating--
	if err == nil {
		created.Kind = c.kind
		if i := c.indexOf(created.ID); i >= 0 {
			c.snapshot.Items[i] = created.Clone()
		} else {
			c.snapshot.Items = append(c.snapshot.Items, created.Clone())
		}
	}
	size := len(c.snapshot.Items)
	c.mu.Unlock()

	c.finishMutation(created.ID, opCreate, err, size)
	if err != nil {
		return models.Resource{}, err
	}
	return created.Clone(), nil
}

// Update changes the resource id on the server and then replaces it in
// place. It fails with [ErrNotFound] without any network call if id is not
// in the snapshot, and with [ErrConflict] if a mutation for id is in flight.
func (c *Cache) Update(ctx context.Context, id string, fields models.Fields) (models.Resource, error) {
	if err := c.begin(id, opUpdate); err != nil {
		return models.Resource{}, err
	}

	updated, err := c.api.Update(ctx, id, fields.Clone())

	c.mu.Lock()
	delete(c.pending, id)
	if err == nil {
		updated.Kind = c.kind
		if updated.ID == "" {
			updated.ID = id
		}
		if i := c.indexOf(id); i >= 0 {
			c.snapshot.Items[i] = updated.Clone()
		}
	}
	size := len(c.snapshot.Items)
	c.mu.Unlock()

	c.finishMutation(id, opUpdate, err, size)
	if err != nil {
		return models.Resource{}, err
	}
	return updated.Clone(), nil
}

// Delete removes the resource id on the server and, once confirmed, from
// the snapshot. Pre-checks are the same as for [Cache.Update].
func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.begin(id, opDelete); err != nil {
		return err
	}

	err := c.api.Delete(ctx, id)

	c.mu.Lock()
	delete(c.pending, id)
	if err == nil {
		if i := c.indexOf(id); i >= 0 {
			c.snapshot.Items = slices.Delete(c.snapshot.Items, i, i+1)
		}
	}
	size := len(c.snapshot.Items)
	c.mu.Unlock()

	c.finishMutation(id, opDelete, err, size)
	return err
}

// Action runs a kind-specific action on the resource id and merges the
// fields returned by the server into the entry. It fails with
// [ErrUnsupported] if the kind does not offer action.
func (c *Cache) Action(ctx context.Context, id, action string) (models.Resource, error) {
	if c.actions == nil || !slices.Contains(c.actions.Actions(), action) {
		return models.Resource{}, fmt.Errorf("%w: %s on %s", ErrUnsupported, action, c.kind)
	}
	if err := c.begin(id, action); err != nil {
		return models.Resource{}, err
	}

	changed, err := c.actions.Action(ctx, id, action)

	var result models.Resource
	c.mu.Lock()
	delete(c.pending, id)
	if err == nil {
		if i := c.indexOf(id); i >= 0 {
			c.snapshot.Items[i].Fields = c.snapshot.Items[i].Fields.Merge(changed)
			result = c.snapshot.Items[i].Clone()
		} else {
			// a list finished meanwhile and no longer holds id
			result = models.Resource{ID: id, Kind: c.kind, Fields: changed.Clone()}
		}
	}
	size := len(c.snapshot.Items)
	c.mu.Unlock()

	c.finishMutation(id, action, err, size)
	if err != nil {
		return models.Resource{}, err
	}
	return result, nil
}

// begin runs the local pre-checks of a mutation and marks id as pending.
func (c *Cache) begin(id, op string) error {
	c.mu.Lock()
	if c.indexOf(id) < 0 {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s %q is not in the local snapshot", ErrNotFound, c.kind, id)
	}
	if inflight, ok := c.pending[id]; ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s of %s %q", ErrConflict, inflight, c.kind, id)
	}
	c.pending[id] = op
	c.mu.Unlock()

	c.emit(Event{Type: EventMutationStarted, ID: id, Op: op})
	return nil
}

func (c *Cache) finishMutation(id, op string, err error, size int) {
	if err != nil {
		c.logger.Warn().Err(err).Str("kind", c.kind.String()).Str("id", id).Str("op", op).Msg("mutation failed")
	} else {
		c.metrics.SetCacheItems(c.kind, size)
	}
	c.emit(Event{Type: EventMutationDone, ID: id, Op: op, Err: err})
}

// indexOf must be called with c.mu held.
func (c *Cache) indexOf(id string) int {
	return slices.IndexFunc(c.snapshot.Items, func(r models.Resource) bool { return r.ID == id })
}

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/inbox-admin/models"
)

// Registry holds one independent [Cache] per resource kind.
type Registry struct {
	caches map[models.Kind]*Cache
	order  []models.Kind
}

// NewRegistry returns a registry holding caches in the given order.
// A later cache for an already registered kind replaces the earlier one.
func NewRegistry(caches ...*Cache) *Registry {
	r := &Registry{caches: make(map[models.Kind]*Cache, len(caches))}
	for _, c := range caches {
		if _, ok := r.caches[c.Kind()]; !ok {
			r.order = append(r.order, c.Kind())
		}
		r.caches[c.Kind()] = c
	}
	return r
}

// Get returns the cache of kind.
func (r *Registry) Get(kind models.Kind) (*Cache, bool) {
	c, ok := r.caches[kind]
	return c, ok
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []models.Kind {
	return append([]models.Kind(nil), r.order...)
}

// All returns the registered caches in registration order.
func (r *Registry) All() []*Cache {
	caches := make([]*Cache, 0, len(r.order))
	for _, kind := range r.order {
		caches = append(caches, r.caches[kind])
	}
	return caches
}

// RefreshAll lists every cache one after another and joins the errors.
// Superseded calls are not errors.
func (r *Registry) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, c := range r.All() {
		if _, err := c.List(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
			errs = append(errs, fmt.Errorf("refresh %s: %w", c.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

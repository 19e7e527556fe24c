// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps a local snapshot of each remote resource collection in
// step with the server.
//
// Every mutation is pessimistic: the snapshot changes only after the server
// confirmed the call. Overlapping list calls follow last-request-wins, and
// overlapping mutations on the same id are rejected with [ErrConflict].
package cache

import (
	"context"

	"github.com/MKhiriev/inbox-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_api_mock.go -package=mock

// ResourceAPI performs CRUD calls for one resource kind against its remote
// service. Implementations return the adapter error taxonomy unchanged.
type ResourceAPI interface {
	// Kind returns the resource kind served by the API.
	Kind() models.Kind

	// List fetches the whole collection in server order.
	List(ctx context.Context) ([]models.Resource, error)

	// Create creates a resource from fields and returns it as stored by the server.
	Create(ctx context.Context, fields models.Fields) (models.Resource, error)

	// Update changes the resource id and returns it as stored by the server.
	Update(ctx context.Context, id string, fields models.Fields) (models.Resource, error)

	// Delete removes the resource id.
	Delete(ctx context.Context, id string) error
}

// ActionAPI is implemented by resource APIs that support kind-specific
// mutations besides CRUD, such as logging an instance out.
type ActionAPI interface {
	// Actions lists the action names accepted by Action.
	Actions() []string

	// Action performs action on the resource id and returns the fields that
	// changed as a result.
	Action(ctx context.Context, id, action string) (models.Fields, error)
}

package service

import (
	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/models"
)

// Services groups the resource APIs of every configured remote service.
// An API is nil when its transport was not configured.
type Services struct {
	Labels    cache.ResourceAPI
	Inboxes   cache.ResourceAPI
	Instances cache.ResourceAPI
}

// NewServices builds the resource APIs. Either transport may be nil.
func NewServices(chatwoot adapter.Transport, accountID string, evolution adapter.Transport) *Services {
	services := &Services{}
	if chatwoot != nil {
		services.Labels = NewLabelService(chatwoot, accountID)
		services.Inboxes = NewInboxService(chatwoot, accountID)
	}
	if evolution != nil {
		services.Instances = NewInstanceService(evolution)
	}
	return services
}

// ByKind returns the API serving kind.
func (s *Services) ByKind(kind models.Kind) (cache.ResourceAPI, bool) {
	var api cache.ResourceAPI
	switch kind {
	case models.KindLabels:
		api = s.Labels
	case models.KindInboxes:
		api = s.Inboxes
	case models.KindInstances:
		api = s.Instances
	}
	return api, api != nil
}

// APIs returns every configured API in [models.Kinds] order.
func (s *Services) APIs() []cache.ResourceAPI {
	apis := make([]cache.ResourceAPI, 0, len(models.Kinds))
	for _, kind := range models.Kinds {
		if api, ok := s.ByKind(kind); ok {
			apis = append(apis, api)
		}
	}
	return apis
}

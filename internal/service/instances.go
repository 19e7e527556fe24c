package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/validators"
	"github.com/MKhiriev/inbox-admin/models"
)

// DefaultIntegration is used when an instance is created without one.
const DefaultIntegration = "WHATSAPP-BAILEYS"

type instanceService struct {
	transport adapter.Transport
	validator validators.Validator
}

// InstanceAPI is the instance resource API. Besides CRUD it offers the
// logout action.
type InstanceAPI interface {
	cache.ResourceAPI
	cache.ActionAPI
}

// NewInstanceService returns the instance API of the provisioning service.
func NewInstanceService(transport adapter.Transport) InstanceAPI {
	return &instanceService{transport: transport, validator: validators.NewResourceValidator()}
}

func (s *instanceService) Kind() models.Kind {
	return models.KindInstances
}

func (s *instanceService) List(ctx context.Context) ([]models.Resource, error) {
	raw, err := s.transport.Request(ctx, http.MethodGet, "/instance/fetchInstances", nil)
	if err != nil {
		return nil, err
	}
	return adapter.DecodeCollection(models.KindInstances, raw)
}

func (s *instanceService) Create(ctx context.Context, fields models.Fields) (models.Resource, error) {
	instance := models.Instance{
		Name:        strings.TrimSpace(fields.String("instanceName")),
		Integration: fields.String("integration"),
	}
	if instance.Name == "" {
		instance.Name = strings.TrimSpace(fields.String("name"))
	}
	if err := s.validator.Validate(ctx, instance); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}
	if instance.Integration == "" {
		instance.Integration = DefaultIntegration
	}

	body := instance.Fields()
	body["qrcode"] = true

	raw, err := s.transport.Request(ctx, http.MethodPost, "/instance/create", body)
	if err != nil {
		return models.Resource{}, err
	}
	if string(raw) == "null" {
		return models.Resource{ID: instance.Name, Kind: models.KindInstances, Fields: body}, nil
	}
	return adapter.DecodeResource(models.KindInstances, raw)
}

// Update always fails: instances are immutable apart from their actions.
func (s *instanceService) Update(context.Context, string, models.Fields) (models.Resource, error) {
	return models.Resource{}, fmt.Errorf("%w: instances cannot be edited", cache.ErrUnsupported)
}

func (s *instanceService) Delete(ctx context.Context, name string) error {
	_, err := s.transport.Request(ctx, http.MethodDelete, "/instance/delete/"+url.PathEscape(name), nil)
	return err
}

func (s *instanceService) Actions() []string {
	return []string{models.InstanceActionLogout}
}

// Action implements [cache.ActionAPI]. Logout disconnects the instance
// and reports it as closed.
func (s *instanceService) Action(ctx context.Context, name, action string) (models.Fields, error) {
	if action != models.InstanceActionLogout {
		return nil, fmt.Errorf("%w: %s", cache.ErrUnsupported, action)
	}

	if _, err := s.transport.Request(ctx, http.MethodDelete, "/instance/logout/"+url.PathEscape(name), nil); err != nil {
		return nil, err
	}
	return models.Fields{"connectionStatus": models.InstanceClose}, nil
}

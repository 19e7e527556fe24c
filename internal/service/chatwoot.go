package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/validators"
	"github.com/MKhiriev/inbox-admin/models"
)

// accountService is a resource collection scoped to one account of the
// conversation platform. Labels and inboxes differ only in their path
// segment, writable fields and create body.
type accountService struct {
	kind      models.Kind
	segment   string
	writable  []string
	transport adapter.Transport
	accountID string
	validator validators.Validator

	createBody func(models.Fields) any
}

// NewLabelService returns the label API of account accountID.
func NewLabelService(transport adapter.Transport, accountID string) cache.ResourceAPI {
	return &accountService{
		kind:       models.KindLabels,
		segment:    "labels",
		writable:   []string{"title", "description", "color", "show_on_sidebar"},
		transport:  transport,
		accountID:  accountID,
		validator:  validators.NewResourceValidator(),
		createBody: labelCreateBody,
	}
}

// NewInboxService returns the inbox API of account accountID.
func NewInboxService(transport adapter.Transport, accountID string) cache.ResourceAPI {
	return &accountService{
		kind:       models.KindInboxes,
		segment:    "inboxes",
		writable:   []string{"name", "channel_type", "greeting_enabled", "greeting_message"},
		transport:  transport,
		accountID:  accountID,
		validator:  validators.NewResourceValidator(),
		createBody: inboxCreateBody,
	}
}

func (s *accountService) Kind() models.Kind {
	return s.kind
}

func (s *accountService) collectionPath() string {
	return fmt.Sprintf("/api/v1/accounts/%s/%s", url.PathEscape(s.accountID), s.segment)
}

func (s *accountService) itemPath(id string) string {
	return s.collectionPath() + "/" + url.PathEscape(id)
}

func (s *accountService) List(ctx context.Context) ([]models.Resource, error) {
	raw, err := s.transport.Request(ctx, http.MethodGet, s.collectionPath(), nil)
	if err != nil {
		return nil, err
	}
	return adapter.DecodeCollection(s.kind, raw)
}

func (s *accountService) Create(ctx context.Context, fields models.Fields) (models.Resource, error) {
	fields = s.pick(fields)
	if err := s.validator.Validate(ctx, models.Resource{Kind: s.kind, Fields: fields}); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	raw, err := s.transport.Request(ctx, http.MethodPost, s.collectionPath(), s.createBody(fields))
	if err != nil {
		return models.Resource{}, err
	}
	return adapter.DecodeResource(s.kind, raw)
}

func (s *accountService) Update(ctx context.Context, id string, fields models.Fields) (models.Resource, error) {
	fields = s.pick(fields)
	// channel type is fixed once an inbox exists
	if s.kind == models.KindInboxes {
		delete(fields, "channel_type")
	}
	if len(fields) == 0 {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidFields, validators.ErrNoFieldsToUpdate)
	}
	if err := s.validator.Validate(ctx, models.Resource{Kind: s.kind, Fields: fields}, sortedKeys(fields)...); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	raw, err := s.transport.Request(ctx, http.MethodPatch, s.itemPath(id), fields)
	if err != nil {
		return models.Resource{}, err
	}
	if string(raw) == "null" {
		return models.Resource{ID: id, Kind: s.kind, Fields: fields}, nil
	}
	return adapter.DecodeResource(s.kind, raw)
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	_, err := s.transport.Request(ctx, http.MethodDelete, s.itemPath(id), nil)
	return err
}

// pick keeps only the writable fields.
func (s *accountService) pick(fields models.Fields) models.Fields {
	picked := models.Fields{}
	for k, v := range fields {
		if slices.Contains(s.writable, k) {
			picked[k] = v
		}
	}
	return picked
}

func labelCreateBody(fields models.Fields) any {
	return fields
}

func inboxCreateBody(fields models.Fields) any {
	body := models.Fields{}
	for k, v := range fields {
		if k != "channel_type" {
			body[k] = v
		}
	}

	channelType := validators.NormalizeChannelType(fields.String("channel_type"))
	if channelType == "" {
		channelType = "api"
	}
	body["channel"] = map[string]any{"type": channelType}

	return body
}

func sortedKeys(fields models.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

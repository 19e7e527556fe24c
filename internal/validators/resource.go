package validators

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/inbox-admin/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They equal the wire names of the fields.
const (
	FieldTitle        = "title"
	FieldColor        = "color"
	FieldName         = "name"
	FieldChannelType  = "channel_type"
	FieldInstanceName = "instanceName"
)

var (
	labelTitlePattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)
	colorPattern      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// ChannelTypes lists the inbox channel types that can be created.
var ChannelTypes = []string{"api", "web_widget"}

type ResourceValidator struct {
}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches validation to the kind-specific method based on the
// dynamic type of obj.
//
// Supported types:
//   - models.Label / *models.Label
//   - models.Inbox / *models.Inbox
//   - models.Instance / *models.Instance
//   - models.Resource / *models.Resource (dispatched by Kind)
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every rule of the kind is checked.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Label:
		return v.validateLabel(ctx, value, fields...)
	case *models.Label:
		return v.validateLabel(ctx, *value, fields...)

	case models.Inbox:
		return v.validateInbox(ctx, value, fields...)
	case *models.Inbox:
		return v.validateInbox(ctx, *value, fields...)

	case models.Instance:
		return v.validateInstance(ctx, value, fields...)
	case *models.Instance:
		return v.validateInstance(ctx, *value, fields...)

	case models.Resource:
		return v.validateResource(ctx, value, fields...)
	case *models.Resource:
		return v.validateResource(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateResource(ctx context.Context, r models.Resource, fields ...string) error {
	switch r.Kind {
	case models.KindLabels:
		return v.validateLabel(ctx, models.LabelFromResource(r), fields...)
	case models.KindInboxes:
		return v.validateInbox(ctx, models.InboxFromResource(r), fields...)
	case models.KindInstances:
		instance := models.InstanceFromResource(r)
		if instance.Name == "" {
			instance.Name = r.Fields.String(FieldInstanceName)
		}
		return v.validateInstance(ctx, instance, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateLabel checks title and color. Default fields: title, color.
func (v *ResourceValidator) validateLabel(_ context.Context, label models.Label, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(label.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if !labelTitlePattern.MatchString(title) {
				return ErrInvalidTitle
			}
		case FieldColor:
			if label.Color != "" && !colorPattern.MatchString(label.Color) {
				return ErrInvalidColor
			}
		case "description", "show_on_sidebar":
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateInbox checks name and channel type. Default fields: name, channel_type.
func (v *ResourceValidator) validateInbox(_ context.Context, inbox models.Inbox, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldChannelType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(inbox.Name) == "" {
				return ErrEmptyName
			}
		case FieldChannelType:
			if inbox.ChannelType != "" && !slices.Contains(ChannelTypes, NormalizeChannelType(inbox.ChannelType)) {
				return ErrInvalidChannel
			}
		case "greeting_enabled", "greeting_message":
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateInstance checks the instance name. Default fields: instanceName.
func (v *ResourceValidator) validateInstance(_ context.Context, instance models.Instance, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInstanceName}
	}

	for _, f := range fields {
		switch f {
		case FieldInstanceName, FieldName:
			name := strings.TrimSpace(instance.Name)
			if name == "" {
				return ErrEmptyInstanceName
			}
			if strings.ContainsAny(name, " /\\") {
				return ErrInvalidInstance
			}
		case "integration":
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// NormalizeChannelType maps the inbox platform's channel class names
// ("Channel::Api", "Channel::WebWidget") to the short names accepted on
// create ("api", "web_widget").
func NormalizeChannelType(channelType string) string {
	short := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(channelType), "Channel::"))
	switch short {
	case "webwidget", "website":
		return "web_widget"
	default:
		return short
	}
}

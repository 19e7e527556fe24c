package adapter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/inbox-admin/models"
)

// idKeys lists, per kind, the fields that may carry the resource id, in
// order of preference.
var idKeys = map[models.Kind][]string{
	models.KindLabels:    {"id"},
	models.KindInboxes:   {"id"},
	models.KindInstances: {"name", "instanceName", "id"},
}

// DecodeCollection turns a list response into resources of kind. Accepted
// shapes:
//
//	[ {...}, ... ]
//	{"payload": [...]}
//	{"data": [...]}
//	{"payload": {"data": [...]}}
//	[ {"instance": {...}}, ... ]
//
// A JSON null decodes to an empty collection.
func DecodeCollection(kind models.Kind, raw json.RawMessage) ([]models.Resource, error) {
	items, err := unwrapCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s list: %v", ErrMalformedResponse, kind, err)
	}

	resources := make([]models.Resource, 0, len(items))
	for i, item := range items {
		resource, err := toResource(kind, item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s list item %d: %v", ErrMalformedResponse, kind, i, err)
		}
		resources = append(resources, resource)
	}

	return resources, nil
}

// DecodeResource turns a single-object response into a resource of kind.
// Accepted shapes are a bare object, {"payload": {...}} and {"instance": {...}}.
func DecodeResource(kind models.Kind, raw json.RawMessage) (models.Resource, error) {
	var object map[string]any
	if err := json.Unmarshal(raw, &object); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, kind, err)
	}
	if object == nil {
		return models.Resource{}, fmt.Errorf("%w: %s: empty body", ErrMalformedResponse, kind)
	}

	resource, err := toResource(kind, unwrapObject(object))
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, kind, err)
	}
	return resource, nil
}

func unwrapCollection(raw json.RawMessage) ([]map[string]any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}

	for range 2 {
		object, ok := value.(map[string]any)
		if !ok {
			break
		}
		if inner, ok := object["payload"]; ok {
			value = inner
		} else if inner, ok := object["data"]; ok {
			value = inner
		} else {
			return nil, fmt.Errorf("object without payload or data")
		}
	}

	switch list := value.(type) {
	case nil:
		return nil, nil
	case []any:
		items := make([]map[string]any, 0, len(list))
		for i, entry := range list {
			object, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d is not an object", i)
			}
			items = append(items, unwrapObject(object))
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected an array, got %T", value)
	}
}

func unwrapObject(object map[string]any) map[string]any {
	for _, key := range []string{"payload", "instance"} {
		if inner, ok := object[key].(map[string]any); ok {
			return inner
		}
	}
	return object
}

func toResource(kind models.Kind, object map[string]any) (models.Resource, error) {
	keys, ok := idKeys[kind]
	if !ok {
		return models.Resource{}, fmt.Errorf("unknown kind %q", kind)
	}

	fields := models.Fields(object)
	var id string
	for _, key := range keys {
		if id = stringifyID(fields[key]); id != "" {
			break
		}
	}
	if id == "" {
		return models.Resource{}, fmt.Errorf("missing id")
	}

	if kind == models.KindInstances {
		if _, ok := fields["connectionStatus"]; !ok && fields["status"] != nil {
			fields["connectionStatus"] = fields["status"]
		}
	}

	return models.Resource{ID: id, Kind: kind, Fields: fields}, nil
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

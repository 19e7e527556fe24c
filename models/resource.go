package models

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Kind names a category of remote-owned records.
type Kind string

const (
	// KindLabels are conversation labels of the inbox platform.
	KindLabels Kind = "labels"
	// KindInboxes are inboxes (channels) of the inbox platform.
	KindInboxes Kind = "inboxes"
	// KindInstances are messaging instances of the provisioning service.
	KindInstances Kind = "instances"
)

// Kinds lists every supported resource kind in display order.
var Kinds = []Kind{KindLabels, KindInboxes, KindInstances}

func (k Kind) String() string {
	return string(k)
}

// Title returns a human-readable caption for the kind.
func (k Kind) Title() string {
	switch k {
	case KindLabels:
		return "Labels"
	case KindInboxes:
		return "Inboxes"
	case KindInstances:
		return "Instances"
	default:
		return string(k)
	}
}

// Fields holds kind-specific attributes of a [Resource] keyed by their wire name.
type Fields map[string]any

// Clone returns a deep copy of f. Nested objects and arrays decoded from
// JSON are copied as well, so the copy shares no mutable state with f.
func (f Fields) Clone() Fields {
	clone := make(Fields, len(f))
	for k, v := range f {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(value))
		for k, item := range value {
			m[k] = cloneValue(item)
		}
		return m
	case Fields:
		return value.Clone()
	case []any:
		s := make([]any, len(value))
		for i, item := range value {
			s[i] = cloneValue(item)
		}
		return s
	case []string:
		return slices.Clone(value)
	default:
		return v
	}
}

// String returns the named field rendered as a string, or "" when absent.
func (f Fields) String(name string) string {
	v, ok := f[name]
	if !ok || v == nil {
		return ""
	}

	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

// Bool returns the named field as a bool. Strings "true"/"false" are accepted.
func (f Fields) Bool(name string) bool {
	switch value := f[name].(type) {
	case bool:
		return value
	case string:
		b, _ := strconv.ParseBool(value)
		return b
	default:
		return false
	}
}

// Merge returns a copy of f with every key of other written over it.
func (f Fields) Merge(other Fields) Fields {
	merged := f.Clone()
	for k, v := range other {
		merged[k] = cloneValue(v)
	}
	return merged
}

// Resource is a record owned by a remote service. ID is opaque and unique
// within its Kind.
type Resource struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Fields Fields `json:"fields"`
}

// Clone returns a copy of r that shares no field values with r.
func (r Resource) Clone() Resource {
	r.Fields = r.Fields.Clone()
	return r
}

// Snapshot is the full local copy of one kind's collection. Items keep the
// order returned by the server.
type Snapshot struct {
	Kind      Kind       `json:"kind"`
	Items     []Resource `json:"items"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Len returns the number of items in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Items)
}

// Find returns the resource with the given id.
func (s Snapshot) Find(id string) (Resource, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Resource{}, false
}

// IDs returns the item identifiers in snapshot order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	items := make([]Resource, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.Clone()
	}
	s.Items = items
	return s
}

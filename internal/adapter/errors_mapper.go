package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		return &RemoteError{Status: resp.StatusCode(), Message: remoteMessage(resp.StatusCode(), body)}
	}
}

// remoteMessage prefers the "message" or "error" field of a JSON error body
// (also inside a nested "response" object), then the raw body, then the
// status text.
func remoteMessage(status int, body string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		if nested, ok := payload["response"].(map[string]any); ok {
			if msg := messageField(nested); msg != "" {
				return msg
			}
		}
		if msg := messageField(payload); msg != "" {
			return msg
		}
	}

	if body != "" {
		return body
	}
	return http.StatusText(status)
}

func messageField(payload map[string]any) string {
	for _, key := range []string{"message", "error"} {
		switch v := payload[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, part := range v {
				parts = append(parts, fmt.Sprint(part))
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return ""
}

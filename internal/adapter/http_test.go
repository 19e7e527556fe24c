// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/monitor"
	"github.com/MKhiriev/inbox-admin/internal/utils"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	mu       sync.Mutex
	outcomes []models.Outcome
}

func (r *recordingReporter) Report(outcome models.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingReporter) types() []models.OutcomeType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]models.OutcomeType, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		types = append(types, o.Type)
	}
	return types
}

// newTestTransport создаёт httpTransport, направленный на тестовый сервер
func newTestTransport(t *testing.T, cfg config.Service, reporter Reporter) *httpTransport {
	t.Helper()
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 2 * time.Second
	}
	tr, err := NewHTTPTransport("chatwoot", cfg, reporter, nil, logger.Nop())
	require.NoError(t, err)
	return tr.(*httpTransport)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPTransport("chatwoot", config.Service{BaseURL: ""}, nil, nil, nil)
	require.Error(t, err)

	_, err = NewHTTPTransport("chatwoot", config.Service{BaseURL: "http://"}, nil, nil, nil)
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://chat.example.com/ ", want: "https://chat.example.com"},
		{raw: "https://evo.example.com/api/", want: "https://evo.example.com/api"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_Trims(t *testing.T) {
	tr := newTestTransport(t, config.Service{BaseURL: "http://localhost"}, nil)
	tr.SetToken("  abc  ")
	assert.Equal(t, "abc", tr.Token())
	assert.Equal(t, "chatwoot", tr.Service())
}

func TestRequest_ForwardsRequestIDFromContext(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get(RequestIDHeader))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, config.Service{BaseURL: srv.URL}, nil)
	ctx := utils.WithAccessToken(context.Background(), "tok")
	ctx = utils.WithRequestID(ctx, "trace-42")

	_, err := tr.Request(ctx, http.MethodGet, "/labels", nil)

	require.NoError(t, err)
	assert.Equal(t, "trace-42", got.Load())
}

// ── Request: success ────────────────────────────────────────────────────────

func TestRequest_Success_SendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/accounts/1/labels", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("api_access_token"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title":"vip"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"title":"vip"}`))
	}))
	defer srv.Close()

	reporter := &recordingReporter{}
	tr := newTestTransport(t, config.Service{
		BaseURL:          srv.URL,
		TokenHeaderName:  "api_access_token",
		TokenScheme:      "Bearer",
		APIKeyHeaderName: "apikey",
		APIKey:           "secret",
	}, reporter)
	tr.SetToken("tok")

	raw, err := tr.Request(context.Background(), http.MethodPost, "/api/v1/accounts/1/labels", map[string]any{"title": "vip"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"vip"}`, string(raw))
	assert.Equal(t, []models.OutcomeType{models.OutcomeAttempt, models.OutcomeReachable}, reporter.types())
}

func TestRequest_EmptyBody_ReturnsNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := newTestTransport(t, config.Service{BaseURL: srv.URL}, nil)
	tr.SetToken("tok")

	raw, err := tr.Request(context.Background(), http.MethodDelete, "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestRequest_NonJSONBody_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	defer srv.Close()

	tr := newTestTransport(t, config.Service{BaseURL: srv.URL}, nil)
	tr.SetToken("tok")

	_, err := tr.Request(context.Background(), http.MethodGet, "/x", nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// токен из контекста имеет приоритет над токеном адаптера
func TestRequest_ContextTokenWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller", r.Header.Get("api_access_token"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, config.Service{BaseURL: srv.URL, TokenHeaderName: "api_access_token"}, nil)
	tr.SetToken("own")

	ctx := utils.WithAccessToken(context.Background(), "caller")
	_, err := tr.Request(ctx, http.MethodGet, "/x", nil)
	require.NoError(t, err)
}

// ── Request: missing token ──────────────────────────────────────────────────

func TestRequest_MissingToken_NoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	reporter := &recordingReporter{}
	tr := newTestTransport(t, config.Service{BaseURL: srv.URL}, reporter)

	_, err := tr.Request(context.Background(), http.MethodGet, "/x", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, []models.OutcomeType{models.OutcomeAuthFailed}, reporter.types())
}

// ── Request: status mapping ─────────────────────────────────────────────────

func TestRequest_StatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantStatus  int
		wantMessage string
		wantOutcome models.OutcomeType
	}{
		{name: "401", status: http.StatusUnauthorized, body: "bad token", wantErr: ErrUnauthenticated, wantOutcome: models.OutcomeAuthFailed},
		{name: "403", status: http.StatusForbidden, wantErr: ErrUnauthenticated, wantOutcome: models.OutcomeAuthFailed},
		{name: "404", status: http.StatusNotFound, wantErr: ErrNotFound, wantOutcome: models.OutcomeReachable},
		{name: "500 json message", status: http.StatusInternalServerError, body: `{"message":"boom"}`, wantStatus: 500, wantMessage: "boom", wantOutcome: models.OutcomeReachable},
		{name: "422 json error", status: http.StatusUnprocessableEntity, body: `{"error":"title taken"}`, wantStatus: 422, wantMessage: "title taken", wantOutcome: models.OutcomeReachable},
		{name: "400 nested response", status: http.StatusBadRequest, body: `{"status":400,"error":"Bad Request","response":{"message":["name in use"]}}`, wantStatus: 400, wantMessage: "name in use", wantOutcome: models.OutcomeReachable},
		{name: "502 text", status: http.StatusBadGateway, body: "upstream down", wantStatus: 502, wantMessage: "upstream down", wantOutcome: models.OutcomeReachable},
		{name: "503 empty", status: http.StatusServiceUnavailable, wantStatus: 503, wantMessage: "Service Unavailable", wantOutcome: models.OutcomeReachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			reporter := &recordingReporter{}
			tr := newTestTransport(t, config.Service{BaseURL: srv.URL}, reporter)
			tr.SetToken("tok")

			_, err := tr.Request(context.Background(), http.MethodGet, "/x", nil)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var remoteErr *RemoteError
				require.True(t, errors.As(err, &remoteErr))
				assert.Equal(t, tt.wantStatus, remoteErr.Status)
				assert.Equal(t, tt.wantMessage, remoteErr.Message)
				assert.Equal(t, tt.wantStatus, StatusOf(err))
			}
			assert.Equal(t, []models.OutcomeType{models.OutcomeAttempt, tt.wantOutcome}, reporter.types())
		})
	}
}

// ── Request: unreachable ────────────────────────────────────────────────────

func TestRequest_ConnectionRefused_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	reporter := &recordingReporter{}
	tr := newTestTransport(t, config.Service{BaseURL: url}, reporter)
	tr.SetToken("tok")

	_, err := tr.Request(context.Background(), http.MethodGet, "/x", nil)

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.True(t, IsTransient(err))
	assert.False(t, IsTerminal(err))
	assert.Equal(t, []models.OutcomeType{models.OutcomeAttempt, models.OutcomeUnreachable}, reporter.types())
}

// запрос, превысивший таймаут, считается недоступностью сервиса
func TestRequest_Timeout_Unreachable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	tr := newTestTransport(t, config.Service{BaseURL: srv.URL, RequestTimeout: 50 * time.Millisecond}, nil)
	tr.SetToken("tok")

	_, err := tr.Request(context.Background(), http.MethodGet, "/slow", nil)
	assert.ErrorIs(t, err, ErrUnreachable)
}

// ── monitor and metrics integration ─────────────────────────────────────────

func TestRequest_DrivesMonitorAndMetrics(t *testing.T) {
	fail := atomic.Bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	mon := monitor.New("chatwoot", logger.Nop())
	m := metrics.New()
	tr, err := NewHTTPTransport("chatwoot", config.Service{BaseURL: srv.URL, RequestTimeout: time.Second}, mon, m, logger.Nop())
	require.NoError(t, err)
	tr.SetToken("tok")

	_, err = tr.Request(context.Background(), http.MethodGet, "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, models.Connected, mon.State().Status)

	fail.Store(true)
	_, err = tr.Request(context.Background(), http.MethodGet, "/x", nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, models.Error, mon.State().Status)
	assert.NotEmpty(t, mon.State().Reason)

	series, err := testutil.GatherAndCount(m.Registry(), "inbox_admin_transport_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestRemoteError_Error(t *testing.T) {
	err := &RemoteError{Status: 500, Message: "boom"}
	assert.Equal(t, "remote error 500: boom", err.Error())
	assert.Equal(t, 0, StatusOf(ErrNotFound))
	assert.False(t, IsTransient(err))
}

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/utils"
	"github.com/MKhiriev/inbox-admin/models"
)

// RequestIDHeader carries a per-request id to the remote service.
const RequestIDHeader = "X-Request-ID"

type httpTransport struct {
	service string
	cfg     config.Service
	client  *utils.HTTPClient

	mu    sync.RWMutex
	token string

	reporter Reporter
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewHTTPTransport constructs a resty-based [Transport] for service.
// cfg is copied and never changed afterwards. Every call is reported to
// reporter and recorded in m; both may be nil.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPTransport(service string, cfg config.Service, reporter Reporter, m *metrics.Metrics, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s base url: %w", service, err)
	}
	if log == nil {
		log = logger.Nop()
	}

	cfg.BaseURL = baseURL
	return &httpTransport{
		service:  service,
		cfg:      cfg,
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		reporter: reporter,
		metrics:  m,
		logger:   log.WithComponent("transport"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Service implements [Transport].
func (h *httpTransport) Service() string {
	return h.service
}

// SetToken implements [Transport]. The token is whitespace-trimmed.
func (h *httpTransport) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [Transport].
func (h *httpTransport) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Request implements [Transport].
//
// A token stored in ctx by [utils.WithAccessToken] takes precedence over the
// adapter token. Without any token the call fails with [ErrUnauthenticated]
// and nothing is sent.
func (h *httpTransport) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	token, ok := utils.AccessTokenFromContext(ctx)
	if !ok {
		token = h.Token()
	}
	if token == "" {
		h.finish(models.OutcomeAuthFailed, "missing access token", 0)
		return nil, fmt.Errorf("%w: missing access token", ErrUnauthenticated)
	}

	h.report(models.Outcome{Type: models.OutcomeAttempt})

	requestID, ok := utils.RequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if h.cfg.TokenHeaderName != "" {
		req.SetHeader(h.cfg.TokenHeaderName, h.tokenValue(token))
	}
	if h.cfg.APIKeyHeaderName != "" && h.cfg.APIKey != "" {
		req.SetHeader(h.cfg.APIKeyHeaderName, h.cfg.APIKey)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)

	if err != nil {
		h.finish(models.OutcomeUnreachable, err.Error(), elapsed)
		h.logger.Warn().Err(err).
			Str("service", h.service).
			Str("method", method).
			Str("path", path).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			h.finish(models.OutcomeAuthFailed, fmt.Sprintf("%s rejected the access token (%d)", h.service, resp.StatusCode()), elapsed)
		} else {
			h.finish(models.OutcomeReachable, "", elapsed)
		}
		h.logger.Debug().Err(err).
			Str("service", h.service).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return nil, err
	}

	h.finish(models.OutcomeReachable, "", elapsed)

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s %s returned non-JSON body", ErrMalformedResponse, method, path)
	}

	return json.RawMessage(raw), nil
}

func (h *httpTransport) tokenValue(token string) string {
	if h.cfg.TokenScheme == "" {
		return token
	}
	return h.cfg.TokenScheme + " " + token
}

func (h *httpTransport) finish(outcome models.OutcomeType, detail string, elapsed time.Duration) {
	h.report(models.Outcome{Type: outcome, Detail: detail})
	h.metrics.ObserveRequest(h.service, outcome, elapsed)
}

func (h *httpTransport) report(outcome models.Outcome) {
	if h.reporter != nil {
		h.reporter.Report(outcome)
	}
}

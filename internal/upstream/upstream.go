// Package upstream builds one transport and one connection monitor for each
// configured remote service and the resource APIs on top of them.
package upstream

import (
	"fmt"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/monitor"
	"github.com/MKhiriev/inbox-admin/internal/service"
	"github.com/MKhiriev/inbox-admin/models"
)

// Service names used in logs, metrics and status responses.
const (
	ChatwootService  = "chatwoot"
	EvolutionService = "evolution"
)

// Upstream is a remote service: the transport talking to it and the monitor
// tracking its reachability.
type Upstream struct {
	Transport adapter.Transport
	Monitor   *monitor.Monitor
}

// Upstreams holds every configured remote service. A field is nil when the
// service has no base URL.
type Upstreams struct {
	Chatwoot  *Upstream
	Evolution *Upstream

	accountID    string
	unsubscribes []func()
}

// New builds the upstreams of the enabled services. The access token, when
// not empty, is set on every transport.
func New(chatwoot, evolution config.Service, accessToken string, m *metrics.Metrics, log *logger.Logger) (*Upstreams, error) {
	u := &Upstreams{accountID: chatwoot.AccountID}

	var err error
	if chatwoot.Enabled() {
		if u.Chatwoot, err = u.build(ChatwootService, chatwoot, accessToken, m, log); err != nil {
			return nil, err
		}
	}
	if evolution.Enabled() {
		if u.Evolution, err = u.build(EvolutionService, evolution, accessToken, m, log); err != nil {
			u.Close()
			return nil, err
		}
	}
	if u.Chatwoot == nil && u.Evolution == nil {
		return nil, config.ErrNoServicesConfigured
	}
	return u, nil
}

func (u *Upstreams) build(name string, cfg config.Service, accessToken string, m *metrics.Metrics, log *logger.Logger) (*Upstream, error) {
	mon := monitor.New(name, log)
	transport, err := adapter.NewHTTPTransport(name, cfg, mon, m, log)
	if err != nil {
		return nil, fmt.Errorf("create %s transport: %w", name, err)
	}
	if accessToken != "" {
		transport.SetToken(accessToken)
	}
	u.unsubscribes = append(u.unsubscribes, m.ObserveMonitor(mon))
	return &Upstream{Transport: transport, Monitor: mon}, nil
}

// Services returns the resource APIs served by the configured upstreams.
func (u *Upstreams) Services() *service.Services {
	var chatwoot, evolution adapter.Transport
	if u.Chatwoot != nil {
		chatwoot = u.Chatwoot.Transport
	}
	if u.Evolution != nil {
		evolution = u.Evolution.Transport
	}
	return service.NewServices(chatwoot, u.accountID, evolution)
}

// Monitors returns the monitors of the configured upstreams.
func (u *Upstreams) Monitors() []*monitor.Monitor {
	var monitors []*monitor.Monitor
	for _, up := range []*Upstream{u.Chatwoot, u.Evolution} {
		if up != nil {
			monitors = append(monitors, up.Monitor)
		}
	}
	return monitors
}

// MonitorFor returns the monitor of the service owning kind.
func (u *Upstreams) MonitorFor(kind models.Kind) (*monitor.Monitor, bool) {
	up := u.Evolution
	if kind == models.KindLabels || kind == models.KindInboxes {
		up = u.Chatwoot
	}
	if up == nil {
		return nil, false
	}
	return up.Monitor, true
}

// Close detaches the metrics observers.
func (u *Upstreams) Close() {
	for _, unsubscribe := range u.unsubscribes {
		unsubscribe()
	}
	u.unsubscribes = nil
}

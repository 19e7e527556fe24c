// Package metrics exposes Prometheus instrumentation for transports and
// connection monitors on a dedicated registry.
//
// All methods are safe on a nil *Metrics, which disables instrumentation.
package metrics

import (
	"net/http"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/monitor"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inbox_admin"

var connectionStatuses = []models.ConnectionStatus{
	models.Connecting,
	models.Connected,
	models.Disconnected,
	models.Error,
}

// Metrics holds the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	connectionState *prometheus.GaugeVec
	cacheItems      *prometheus.GaugeVec
}

// New registers all collectors, plus Go runtime and process collectors, on a
// fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_requests_total",
			Help:      "Outbound requests by service and outcome",
		}, []string{"service", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transport_request_duration_seconds",
			Help:      "Outbound request latency by service",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),
		connectionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connection_state",
			Help:      "1 for the current connection status of each service, 0 otherwise",
		}, []string{"service", "state"}),
		cacheItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_items",
			Help:      "Number of resources in the local snapshot by kind",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.connectionState,
		m.cacheItems,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished outbound request.
func (m *Metrics) ObserveRequest(service string, outcome models.OutcomeType, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(service, outcome.String()).Inc()
	m.requestDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}

// SetConnectionState marks status as the current one for service.
func (m *Metrics) SetConnectionState(service string, status models.ConnectionStatus) {
	if m == nil {
		return
	}
	for _, s := range connectionStatuses {
		value := 0.0
		if s == status {
			value = 1
		}
		m.connectionState.WithLabelValues(service, s.String()).Set(value)
	}
}

// SetCacheItems records the snapshot size of kind.
func (m *Metrics) SetCacheItems(kind models.Kind, n int) {
	if m == nil {
		return
	}
	m.cacheItems.WithLabelValues(kind.String()).Set(float64(n))
}

// ObserveMonitor keeps the connection_state gauge of mon's service in sync
// with mon and returns the unsubscribe function.
func (m *Metrics) ObserveMonitor(mon *monitor.Monitor) (unsubscribe func()) {
	if m == nil {
		return func() {}
	}
	m.SetConnectionState(mon.Service(), mon.State().Status)
	return mon.Subscribe(func(state models.ConnectionState) {
		m.SetConnectionState(mon.Service(), state.Status)
	})
}

package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Screen metrics
	ScreensMounted  prometheus.Gauge
	ScreensTotal    *prometheus.CounterVec
	ScreensUnmounts prometheus.Counter

	// Protocol metrics
	Navigations       *prometheus.CounterVec
	MessagesAccepted  prometheus.Counter
	MessagesDiscarded *prometheus.CounterVec
	Broadcasts        prometheus.Counter
	DialogsOpened     prometheus.Counter
	LoadErrors        prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	SurfaceEvents *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardbridge_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boardbridge_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		ScreensMounted: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "boardbridge_screens_mounted",
				Help: "Number of currently mounted whiteboard screens",
			},
		),
		ScreensTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardbridge_screens_total",
				Help: "Total number of screens mounted since start",
			},
			[]string{"resolvable"},
		),
		ScreensUnmounts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardbridge_screen_unmounts_total",
				Help: "Total number of screens unmounted",
			},
		),

		Navigations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardbridge_navigations_total",
				Help: "Navigation attempts from embedded surfaces by decision",
			},
			[]string{"decision"},
		),
		MessagesAccepted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardbridge_messages_accepted_total",
				Help: "Credential messages that passed the schema gate",
			},
		),
		MessagesDiscarded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardbridge_messages_discarded_total",
				Help: "Credential messages discarded by reason",
			},
			[]string{"reason"},
		),
		Broadcasts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardbridge_metadata_broadcasts_total",
				Help: "Records published to the conference metadata channel",
			},
		),
		DialogsOpened: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardbridge_dialogs_opened_total",
				Help: "Error dialogs opened",
			},
		),
		LoadErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardbridge_surface_load_errors_total",
				Help: "Load failures reported by embedded surfaces",
			},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "boardbridge_ws_connections",
				Help: "Active embedded-surface WebSocket connections",
			},
		),
		SurfaceEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardbridge_surface_events_total",
				Help: "Events received from embedded surfaces by type",
			},
			[]string{"type"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "boardbridge_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordScreenMounted records a screen mount
func (m *Metrics) RecordScreenMounted(resolvable bool) {
	m.ScreensMounted.Inc()
	label := "true"
	if !resolvable {
		label = "false"
	}
	m.ScreensTotal.WithLabelValues(label).Inc()
}

// RecordScreenUnmounted records a screen unmount
func (m *Metrics) RecordScreenUnmounted() {
	m.ScreensMounted.Dec()
	m.ScreensUnmounts.Inc()
}

// RecordNavigation records a navigation decision
func (m *Metrics) RecordNavigation(allowed bool) {
	decision := "allowed"
	if !allowed {
		decision = "blocked"
	}
	m.Navigations.WithLabelValues(decision).Inc()
}

// RecordMessageAccepted records an accepted credential message
func (m *Metrics) RecordMessageAccepted() {
	m.MessagesAccepted.Inc()
}

// RecordMessageDiscarded records a discarded credential message
func (m *Metrics) RecordMessageDiscarded(reason string) {
	m.MessagesDiscarded.WithLabelValues(reason).Inc()
}

// RecordBroadcast records a metadata publish
func (m *Metrics) RecordBroadcast() {
	m.Broadcasts.Inc()
}

// RecordDialogOpened records an opened dialog
func (m *Metrics) RecordDialogOpened() {
	m.DialogsOpened.Inc()
}

// RecordLoadError records a surface load failure
func (m *Metrics) RecordLoadError() {
	m.LoadErrors.Inc()
}

// RecordWSConnect records a new surface connection
func (m *Metrics) RecordWSConnect() {
	m.WSConnections.Inc()
}

// RecordWSDisconnect records a closed surface connection
func (m *Metrics) RecordWSDisconnect() {
	m.WSConnections.Dec()
}

// RecordSurfaceEvent records an inbound surface event
func (m *Metrics) RecordSurfaceEvent(eventType string) {
	m.SurfaceEvents.WithLabelValues(eventType).Inc()
}

// UpdateUptime refreshes the uptime gauge
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

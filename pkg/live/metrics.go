package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "vexel"

// metrics holds the server's Prometheus instruments.
type metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	patchesSent    prometheus.Counter
	patchBytes     prometheus.Counter
	wsErrors       *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Number of connected viewer sessions.",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "Total sessions accepted since start.",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Total viewer events processed.",
		}, []string{"kind", "status"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "event_duration_seconds",
			Help:      "Event dispatch duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patches_sent_total",
			Help:      "Total document patches broadcast to viewers.",
		}),
		patchBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patch_bytes_total",
			Help:      "Total encoded patch bytes broadcast.",
		}),
		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "websocket_errors_total",
			Help:      "WebSocket read and write failures.",
		}, []string{"op"}),
	}
}

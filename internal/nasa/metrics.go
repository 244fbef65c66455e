package nasa

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeOK = "ok"

// Metrics records outbound calls to the NASA API. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nasa_upstream_requests_total",
				Help: "Total number of requests sent to the NASA Images API",
			},
			[]string{"endpoint", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nasa_upstream_request_duration_seconds",
				Help:    "Duration of NASA Images API requests in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) observe(endpoint string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = string(KindOf(err))
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

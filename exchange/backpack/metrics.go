package backpack

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

//
// Metrics holds the Prometheus collectors a client reports its traffic to. A nil *Metrics is valid
// and records nothing.
//
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	streamFrames *prometheus.CounterVec
}

//
// NewMetrics creates the client collectors and registers them with reg.
//
func NewMetrics(reg prometheus.Registerer) *Metrics {
	o := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bpx",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of REST requests dispatched to the exchange.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bpx",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Round trip duration of REST requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "path"},
		),
		streamFrames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bpx",
				Subsystem: "stream",
				Name:      "frames_total",
				Help:      "Total number of inbound websocket frames by outcome.",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(o.requests, o.duration, o.streamFrames)

	return o
}

//
// observeRequest records one dispatched request. A zero status means the transport failed.
//
func (o *Metrics) observeRequest(method string, path string, status int, elapsed time.Duration) {
	if o == nil {
		return
	}

	label := "transport_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}

	o.requests.WithLabelValues(method, path, label).Inc()
	o.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (o *Metrics) observeFrame(outcome string) {
	if o == nil {
		return
	}

	o.streamFrames.WithLabelValues(outcome).Inc()
}

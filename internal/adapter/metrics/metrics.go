package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	TradesCreated   prometheus.Counter
	EventsPublished *prometheus.CounterVec
}

func New(service string) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mall",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mall",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	trades := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mall",
		Subsystem: service,
		Name:      "trades_created_total",
		Help:      "Total number of trades created.",
	})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mall",
		Subsystem: service,
		Name:      "events_published_total",
		Help:      "Total number of trade events handed to the broker, by outcome.",
	}, []string{"tag", "status"})

	prometheus.MustRegister(requests, latency, trades, events)
	return &Metrics{
		Requests:        requests,
		LatencyMS:       latency,
		TradesCreated:   trades,
		EventsPublished: events,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

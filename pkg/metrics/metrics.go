package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса: входящий HTTP и исходящие
// вызовы SchedCore
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	outboundRequestsTotal   *prometheus.CounterVec
	outboundRequestDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		outboundRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_requests_total",
			Help:        "Total number of outbound requests to upstream services",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		outboundRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "outbound_request_duration_seconds",
			Help:        "Outbound request latency to upstream services",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),
	}
}

// ObserveHTTP фиксирует обработанный входящий запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveOutbound фиксирует исходящий вызов к upstream-сервису.
// status < 0 означает транспортную ошибку (ответ не получен).
func (m *Metrics) ObserveOutbound(target, method string, status int, duration time.Duration) {
	label := "transport_error"
	if status >= 0 {
		label = strconv.Itoa(status)
	}
	m.outboundRequestsTotal.WithLabelValues(target, method, label).Inc()
	m.outboundRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}

package metrics

import (
	"net/http"
	"time"
)

// Transport http.RoundTripper, снимающий метрики исходящих вызовов.
// Адаптация обёртки dbmetrics: вместо запросов к БД измеряются
// запросы к upstream-сервисам.
type Transport struct {
	target  string
	metrics *Metrics
	next    http.RoundTripper
}

// NewTransport оборачивает next (nil → http.DefaultTransport)
func NewTransport(target string, m *Metrics, next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{
		target:  target,
		metrics: m,
		next:    next,
	}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	status := -1
	if resp != nil {
		status = resp.StatusCode
	}
	t.metrics.ObserveOutbound(t.target, req.Method, status, time.Since(start))

	if err != nil {
		return nil, err
	}
	return resp, nil
}

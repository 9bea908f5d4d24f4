// Package metrics exposes Prometheus collectors for the web server.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects request and submission metrics.
type Recorder struct {
	registry        *prom.Registry
	requestDuration *prom.HistogramVec
	requestsTotal   *prom.CounterVec
	submissions     *prom.CounterVec
	emailFailures   prom.Counter
	honeypotHits    prom.Counter
}

// NewRecorder constructs and registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prom.NewRegistry()
	r := &Recorder{
		registry: reg,
		requestDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sqs",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "method"}),
		requestsTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sqs",
			Name:      "http_requests_total",
			Help:      "HTTP request counts by route and status class",
		}, []string{"route", "method", "status"}),
		submissions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sqs",
			Name:      "submissions_total",
			Help:      "Form submissions by kind and outcome",
		}, []string{"kind", "outcome"}),
		emailFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "sqs",
			Name:      "email_failures_total",
			Help:      "Transactional emails that could not be delivered",
		}),
		honeypotHits: prom.NewCounter(prom.CounterOpts{
			Namespace: "sqs",
			Name:      "honeypot_hits_total",
			Help:      "Submissions discarded because the honeypot field was filled",
		}),
	}
	reg.MustRegister(
		r.requestDuration, r.requestsTotal, r.submissions, r.emailFailures, r.honeypotHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler returns the HTTP handler serving the registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (r *Recorder) ObserveRequest(route, method string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
	r.requestsTotal.WithLabelValues(route, method, statusClass(status)).Inc()
}

// IncSubmission records one form submission outcome.
func (r *Recorder) IncSubmission(kind, outcome string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(kind, outcome).Inc()
}

// IncEmailFailure records a failed transactional email delivery.
func (r *Recorder) IncEmailFailure() {
	if r == nil {
		return
	}
	r.emailFailures.Inc()
}

// IncHoneypotHit records a discarded bot submission.
func (r *Recorder) IncHoneypotHit() {
	if r == nil {
		return
	}
	r.honeypotHits.Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

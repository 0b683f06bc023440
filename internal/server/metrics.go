package server

import (
	"net/http"
	"strconv"
	"time"

	"barbershop-backend/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and business collectors. It also records ledger
// events for the service layer.
type Metrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	entriesCreated  *prometheus.CounterVec
	payLaterSettled prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barbershop_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barbershop_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		entriesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barbershop_entries_created_total",
			Help: "Entries recorded, by payment method.",
		}, []string{"payment_method"}),
		payLaterSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barbershop_paylater_settled_total",
			Help: "Pay-later promises marked as paid.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.entriesCreated, m.payLaterSettled)
	return m
}

func (m *Metrics) EntryCreated(method domain.PaymentMethod) {
	m.entriesCreated.WithLabelValues(string(method)).Inc()
}

func (m *Metrics) PayLaterSettled() {
	m.payLaterSettled.Inc()
}

// Instrument records request counts and latency under the matched route
// pattern so path ids do not explode label cardinality.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

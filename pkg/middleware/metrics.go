package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics agrupa os coletores de requisições HTTP
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketing_intelligence",
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "marketing_intelligence",
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	registerer.MustRegister(m.requests, m.duration)
	return m
}

// Instrument registra contagem e duração usando o padrão da rota, não o caminho concreto
func (m *HTTPMetrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(sw.statusCode)).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

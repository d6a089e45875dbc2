package inspect

import (
	"net/http"
	"strconv"

	"github.com/0xalexb/hjarta-comment/container"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "hjarta_comment"
	unmatchedRoute   = "unmatched"
)

// metrics is scoped to one handler so several listeners can coexist.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

func newMetrics(compiled *container.Container) *metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "inspect",
		Name:      "requests_total",
		Help:      "Inspect requests by route and status code.",
	}, []string{"route", "status"})

	entries := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "container",
		Name:      "entries",
		Help:      "Entries in the compiled container by section.",
	}, []string{"section"})

	entries.WithLabelValues("parameters").Set(float64(len(compiled.Parameters())))
	entries.WithLabelValues("services").Set(float64(len(compiled.Definitions())))
	entries.WithLabelValues("aliases").Set(float64(len(compiled.Aliases())))
	entries.WithLabelValues("overrides").Set(float64(len(compiled.Overrides())))
	entries.WithLabelValues("mappings").Set(float64(len(compiled.Mappings())))

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, entries)

	return &metrics{registry: registry, requests: requests}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument counts requests by their matched chi route pattern.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(recorder, r)

		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.requests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
	})
}

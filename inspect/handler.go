package inspect

import (
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-comment/container"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// Sections served by the handler, in the order the index lists them.
//
//nolint:gochecknoglobals // fixed route table
var Sections = []string{"parameters", "services", "aliases", "overrides", "mappings"}

// Snapshot returns the named section of compiled, ready to encode.
func Snapshot(compiled *container.Container, section string) (any, bool) {
	switch section {
	case "parameters":
		return compiled.Parameters(), true
	case "services":
		return compiled.Definitions(), true
	case "aliases":
		return compiled.Aliases(), true
	case "overrides":
		return compiled.Overrides(), true
	case "mappings":
		return compiled.Mappings(), true
	default:
		return nil, false
	}
}

// NewHandler returns the inspect routes for compiled: GET /{section} for
// every entry of Sections, GET / for the section index and GET /metrics
// for Prometheus.
func NewHandler(compiled *container.Container) (http.Handler, error) {
	if compiled == nil {
		return nil, ErrNilContainer
	}

	stats := newMetrics(compiled)

	router := chi.NewRouter()
	router.Use(recovery, requestID, accessLog, stats.instrument)

	router.Method(http.MethodGet, "/metrics", stats.handler())

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"sections": Sections})
	})

	for _, section := range Sections {
		router.Get("/"+section, func(w http.ResponseWriter, _ *http.Request) {
			body, _ := Snapshot(compiled, section)
			writeJSON(w, http.StatusOK, body)
		})
	}

	return router, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		slog.Error("encoding inspect response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, _ = w.Write(payload)
}

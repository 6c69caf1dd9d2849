package jobs

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	jobmetrics "github.com/vendordesk/vendordesk/internal/jobs"
)

// NewMetricsServer exposes the worker's job metrics for scraping. The worker
// has no other HTTP surface.
func NewMetricsServer(addr string, metrics *jobmetrics.Metrics) *http.Server {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

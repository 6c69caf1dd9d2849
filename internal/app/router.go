package app

import (
	"log"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/observability"
	"github.com/vendordesk/vendordesk/internal/shared"
	"github.com/vendordesk/vendordesk/internal/vendors"
	"github.com/vendordesk/vendordesk/jobs"
	"github.com/vendordesk/vendordesk/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	AuthHandler    *auth.Handler
	VendorHandler  *vendors.Handler
	VendorAPI      *vendors.API
	JobHandler     *jobs.Handler
	Identity       auth.IdentityFunc
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router with the application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Get("/", params.VendorHandler.List)
	r.Route("/vendors", params.VendorHandler.MountRoutes)
	r.Route("/api/vendor", params.VendorAPI.MountRoutes)

	if params.JobHandler != nil {
		r.With(RequireIdentity(params.Identity)).Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(web.Static())))
	r.Handle("/static/*", staticCacheHandler(fileServer))

	return r
}

// Slim container images ship without /etc/mime.types.
func init() {
	for ext, typ := range map[string]string{
		".css": "text/css; charset=utf-8",
		".js":  "text/javascript; charset=utf-8",
	} {
		if mime.TypeByExtension(ext) != "" {
			continue
		}
		if err := mime.AddExtensionType(ext, typ); err != nil {
			log.Printf("app: register MIME type for %s: %v", ext, err)
		}
	}
}

// staticCacheHandler lets browsers keep embedded assets for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

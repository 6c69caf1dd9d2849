package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"

	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/observability"
	"github.com/vendordesk/vendordesk/internal/platform/httpx"
	"github.com/vendordesk/vendordesk/internal/shared"
)

// MiddlewareConfig aggregates dependencies shared by the middleware stack.
type MiddlewareConfig struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	Metrics        *observability.Metrics
}

// sessionWriter commits the session right before the first header write so
// redirects and rendered pages both carry the cookie.
type sessionWriter struct {
	http.ResponseWriter
	sess          *shared.Session
	manager       *shared.SessionManager
	ctx           context.Context
	logger        *slog.Logger
	headerWritten bool
}

func (w *sessionWriter) commit() {
	if w.headerWritten {
		return
	}
	w.headerWritten = true
	if err := w.manager.Commit(w.ctx, w.ResponseWriter, w.sess); err != nil {
		w.logger.Error("commit session", slog.Any("error", err))
	}
}

func (w *sessionWriter) WriteHeader(statusCode int) {
	w.commit()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionWriter) Write(data []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

// skipsSession reports requests that never touch cookie state.
func skipsSession(r *http.Request) bool {
	switch {
	case strings.HasPrefix(r.URL.Path, "/static/"):
		return true
	case r.URL.Path == "/healthz", r.URL.Path == "/metrics":
		return true
	}
	_, bearer := auth.BearerToken(r)
	return bearer
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// SessionMiddleware loads the cookie session into the request context and
// commits it once the handler starts responding.
func SessionMiddleware(logger *slog.Logger, manager *shared.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipsSession(r) {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			sess, err := manager.Load(ctx, r)
			if err != nil {
				logger.Error("failed to load session", slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			ctx = shared.ContextWithSession(ctx, sess)
			wrapped := &sessionWriter{ResponseWriter: w, sess: sess, manager: manager, ctx: ctx, logger: logger}
			next.ServeHTTP(wrapped, r.WithContext(ctx))
			wrapped.commit()
		})
	}
}

// CSRFMiddleware rejects unsafe requests that lack a valid token. Bearer
// requests carry no ambient credentials and are exempt, as is the token
// exchange. Anonymous API calls pass through so they are answered with 401.
func CSRFMiddleware(logger *slog.Logger, manager *shared.CSRFManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) || r.URL.Path == "/auth/token" {
				next.ServeHTTP(w, r)
				return
			}
			if _, bearer := auth.BearerToken(r); bearer {
				next.ServeHTTP(w, r)
				return
			}
			sess := shared.SessionFromContext(r.Context())
			if strings.HasPrefix(r.URL.Path, "/api/") && (sess == nil || sess.User() == "") {
				next.ServeHTTP(w, r)
				return
			}
			if sess == nil {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			token := r.Header.Get(shared.CSRFHeader)
			if token == "" {
				token = r.PostFormValue(shared.CSRFFormField)
			}
			if err := manager.VerifyToken(sess, token); err != nil {
				logger.Warn("csrf validation failed", slog.String("path", r.URL.Path), slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MiddlewareStack installs the application middleware chain.
func MiddlewareStack(cfg MiddlewareConfig) []func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           cfg.Config.IsProduction(),
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	timeout := 30 * time.Second
	if cfg.Config != nil && cfg.Config.AppRequestTimeout > 0 {
		timeout = cfg.Config.AppRequestTimeout
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.RealIP,
		middleware.RequestID,
		SessionMiddleware(cfg.Logger, cfg.SessionManager),
		middleware.Recoverer,
		middleware.Timeout(timeout),
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := secureMiddleware.Process(w, r); err != nil {
					cfg.Logger.Warn("secure headers blocked request", slog.Any("error", err))
					return
				}
				next.ServeHTTP(w, r)
			})
		},
		middleware.Compress(5),
		CSRFMiddleware(cfg.Logger, cfg.CSRFManager),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, cfg.Metrics.Middleware)
	}
	return middlewares
}

// RequireIdentity rejects requests without a resolvable identity with the API
// 401 body.
func RequireIdentity(identity auth.IdentityFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == nil {
				httpx.Unauthorized(w)
				return
			}
			if _, ok := identity(r); !ok {
				httpx.Unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

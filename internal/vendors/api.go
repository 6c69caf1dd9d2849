package vendors

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

// API serves the JSON vendor endpoints.
type API struct {
	logger   *slog.Logger
	service  *Service
	identity auth.IdentityFunc
}

// NewAPI constructs an API. identity is consulted before any other work on
// every request.
func NewAPI(logger *slog.Logger, service *Service, identity auth.IdentityFunc) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{logger: logger, service: service, identity: identity}
}

// MountRoutes registers the API under the router it is mounted on.
func (a *API) MountRoutes(r chi.Router) {
	r.Get("/", a.authed(a.list))
	r.Post("/", a.authed(a.create))
	r.Put("/", a.authed(a.missingID))
	r.Delete("/", a.authed(a.missingID))
	r.Get("/{id}", a.authed(a.get))
	r.Put("/{id}", a.authed(a.update))
	r.Delete("/{id}", a.authed(a.delete))
}

type authedHandler func(w http.ResponseWriter, r *http.Request, userID string)

func (a *API) authed(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := a.identity(r)
		if !ok {
			httpx.Unauthorized(w)
			return
		}
		next(w, r, userID)
	}
}

func (a *API) list(w http.ResponseWriter, r *http.Request, userID string) {
	vendors, err := a.service.List(r.Context(), userID)
	if err != nil {
		a.fail(w, r, err, "Unknown error fetching vendors")
		return
	}
	httpx.OK(w, http.StatusOK, vendors)
}

func (a *API) create(w http.ResponseWriter, r *http.Request, userID string) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	vendor, err := a.service.Create(r.Context(), userID, in)
	if err != nil {
		a.fail(w, r, err, "Unknown error creating vendor")
		return
	}
	httpx.JSON(w, http.StatusCreated, httpx.Envelope{Success: true, Message: "Vendor created successfully", Data: vendor})
}

func (a *API) get(w http.ResponseWriter, r *http.Request, userID string) {
	vendor, err := a.service.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		a.fail(w, r, err, "Unknown error fetching vendor")
		return
	}
	httpx.OK(w, http.StatusOK, vendor)
}

func (a *API) update(w http.ResponseWriter, r *http.Request, userID string) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		a.fail(w, r, ErrMissingID, "")
		return
	}
	var in UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	vendor, err := a.service.Update(r.Context(), id, userID, in)
	if err != nil {
		a.fail(w, r, err, "Unknown error updating vendor")
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Envelope{Success: true, Message: "Vendor updated successfully", Data: vendor})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request, userID string) {
	if err := a.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		a.fail(w, r, err, "Unknown error deleting vendor")
		return
	}
	httpx.Message(w, http.StatusOK, "Vendor deleted successfully")
}

func (a *API) missingID(w http.ResponseWriter, r *http.Request, _ string) {
	a.fail(w, r, ErrMissingID, "")
}

// fail converts err into a failed envelope. Only unexpected errors are logged.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if !expected(err) {
		a.logger.Error("vendor api",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
	httpx.RespondError(w, err, fallback)
}

func expected(err error) bool {
	return errors.Is(err, httpx.ErrValidation) || errors.Is(err, httpx.ErrNotFound) || errors.Is(err, httpx.ErrUnauthorized)
}

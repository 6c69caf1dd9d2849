package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
	"github.com/vendordesk/vendordesk/internal/shared"
	"github.com/vendordesk/vendordesk/internal/view"
)

const invalidCredentialsMessage = "Invalid email or password"

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	tokens         *TokenIssuer
	templates      *view.Engine
	sessionManager *shared.SessionManager
	csrfManager    *shared.CSRFManager
	validator      *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, tokens *TokenIssuer, templates *view.Engine, sessions *shared.SessionManager, csrf *shared.CSRFManager) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		service:        service,
		tokens:         tokens,
		templates:      templates,
		sessionManager: sessions,
		csrfManager:    csrf,
		validator:      validator.New(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sign-in", h.showSignIn)
	r.Post("/sign-in", h.handleSignIn)
	r.Get("/sign-up", h.showSignUp)
	r.Post("/sign-up", h.handleSignUp)
	r.Post("/sign-out", h.handleSignOut)
	r.Post("/token", h.issueToken)
}

type signInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signUpForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"required,eqfield=Password"`
}

type formPageData struct {
	Email  string
	Errors map[string]string
}

var fieldMessages = map[string]string{
	"Email.required":    "Email is required",
	"Email.email":       "Enter a valid email address",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 8 characters",
	"Confirm.required":  "Confirm your password",
	"Confirm.eqfield":   "Passwords do not match",
}

func (h *Handler) formErrors(form any) map[string]string {
	errs := make(map[string]string)
	err := h.validator.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["general"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[fe.Field()] = msg
	}
	return errs
}

func (h *Handler) showSignIn(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/sign_in.html", "Sign in", formPageData{}, http.StatusOK)
}

func (h *Handler) showSignUp(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/sign_up.html", "Sign up", formPageData{}, http.StatusOK)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := signInForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	errs := h.formErrors(form)
	if len(errs) == 0 {
		user, err := h.service.Authenticate(r.Context(), form.Email, form.Password)
		switch {
		case err == nil:
			h.startSession(w, r, user.ID, "Welcome back")
			return
		case errors.Is(err, ErrInvalidCredentials):
			errs["general"] = invalidCredentialsMessage
		default:
			h.logger.Error("authenticate", slog.Any("error", err))
			errs["general"] = "Sign in is unavailable, try again later"
		}
	}
	h.render(w, r, "pages/sign_in.html", "Sign in", formPageData{Email: form.Email, Errors: errs}, http.StatusBadRequest)
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := signUpForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
	}
	errs := h.formErrors(form)
	if len(errs) == 0 {
		user, err := h.service.Register(r.Context(), form.Email, form.Password)
		switch {
		case err == nil:
			h.startSession(w, r, user.ID, "Account created")
			return
		case errors.Is(err, ErrEmailTaken):
			errs["Email"] = "This email is already registered"
		default:
			h.logger.Error("register", slog.Any("error", err))
			errs["general"] = "Sign up is unavailable, try again later"
		}
	}
	h.render(w, r, "pages/sign_up.html", "Sign up", formPageData{Email: form.Email, Errors: errs}, http.StatusBadRequest)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, userID, greeting string) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("session missing during sign in")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.sessionManager.Renew(sess)
	sess.SetUser(userID)
	sess.AddFlash(shared.FlashMessage{Kind: shared.FlashSuccess, Message: greeting})
	expiresAt := time.Now().Add(h.sessionManager.TTL())
	if err := h.service.RegisterSession(r.Context(), sess.ID, userID, expiresAt, r.RemoteAddr, r.UserAgent()); err != nil {
		h.logger.Warn("register session", slog.Any("error", err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		if err := h.service.RemoveSession(r.Context(), sess.ID); err != nil {
			h.logger.Warn("remove session", slog.Any("error", err))
		}
		h.sessionManager.Destroy(sess)
	}
	http.Redirect(w, r, "/auth/sign-in", http.StatusSeeOther)
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.Fail(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		h.logger.Error("authenticate token", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Unknown error issuing token")
		return
	}
	token, expiresAt, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Unknown error issuing token")
		return
	}
	httpx.OK(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, data formPageData, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrfManager.EnsureToken(sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	viewData := view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, status, name, viewData); err != nil {
		h.logger.Error("render auth page", slog.Any("error", err), slog.String("template", name))
	}
}

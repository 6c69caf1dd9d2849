package vendors

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/shared"
	"github.com/vendordesk/vendordesk/internal/view"
)

// PageSize is the number of vendors shown per list page.
const PageSize = 10

// Handler serves the vendor pages.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	identity  auth.IdentityFunc
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager, identity auth.IdentityFunc) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf, identity: identity}
}

type listPage struct {
	Vendors    []Vendor
	Pagination shared.Pagination
}

type formPage struct {
	Heading  string
	Action   string
	Submit   string
	VendorID string
	Values   CreateInput
	Errors   map[string]string
}

// List renders the paginated vendor table.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	vendors, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("list vendors failed", slog.Any("error", err))
		h.renderError(w, r, http.StatusInternalServerError, "Failed to fetch vendors")
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pagination := shared.Paginate(len(vendors), page, PageSize)
	h.render(w, r, http.StatusOK, "pages/vendors_list.html", "Vendors", listPage{
		Vendors:    shared.PageOf(vendors, pagination),
		Pagination: pagination,
	})
}

// NewForm renders an empty create form.
func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	h.render(w, r, http.StatusOK, "pages/vendor_form.html", "Add New Vendor", newFormPage(CreateInput{}, nil))
}

// Create handles the create form submission.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	in := formInput(r)
	if _, err := h.service.Create(r.Context(), userID, in); err != nil {
		h.formFailure(w, r, "Add New Vendor", newFormPage(in, err), err, "Failed to add vendor")
		return
	}
	h.redirectWithFlash(w, r, "/", shared.FlashSuccess, "Vendor created successfully")
}

// EditForm renders the edit form prefilled with the stored vendor.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	vendor, err := h.service.Get(r.Context(), id, userID)
	if err != nil {
		h.lookupFailure(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/vendor_form.html", "Edit Vendor", editFormPage(vendor.ID, FromVendor(vendor), nil))
}

// Update handles the edit form submission.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	in := formInput(r)
	if _, err := h.service.Update(r.Context(), id, userID, FullUpdate(in)); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.lookupFailure(w, r, err)
			return
		}
		h.formFailure(w, r, "Edit Vendor", editFormPage(id, in, err), err, "Failed to update vendor")
		return
	}
	h.redirectWithFlash(w, r, "/", shared.FlashSuccess, "Vendor updated successfully")
}

// Delete removes a vendor after the confirmation dialog and returns to the list.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID)
	switch {
	case err == nil:
		h.redirectWithFlash(w, r, "/", shared.FlashSuccess, "Vendor deleted successfully")
	case errors.Is(err, ErrNotFound):
		h.redirectWithFlash(w, r, "/", shared.FlashError, ErrNotFound.Error())
	default:
		h.logger.Error("delete vendor failed", slog.Any("error", err))
		h.redirectWithFlash(w, r, "/", shared.FlashError, "Failed to delete vendor")
	}
}

func newFormPage(values CreateInput, err error) formPage {
	return formPage{
		Heading: "Add New Vendor",
		Action:  "/vendors",
		Submit:  "Add Vendor",
		Values:  values,
		Errors:  formErrors(err),
	}
}

func editFormPage(id string, values CreateInput, err error) formPage {
	return formPage{
		Heading:  "Edit Vendor",
		Action:   "/vendors/edit/" + id,
		Submit:   "Update Vendor",
		VendorID: id,
		Values:   values,
		Errors:   formErrors(err),
	}
}

func formErrors(err error) map[string]string {
	if fields := FieldErrors(err); fields != nil {
		return fields
	}
	return map[string]string{}
}

func formInput(r *http.Request) CreateInput {
	return CreateInput{
		VendorName:    r.PostFormValue("vendorName"),
		BankAccountNo: r.PostFormValue("bankAccountNo"),
		BankName:      r.PostFormValue("bankName"),
		AddressLine1:  r.PostFormValue("addressLine1"),
		AddressLine2:  r.PostFormValue("addressLine2"),
		City:          r.PostFormValue("city"),
		Country:       r.PostFormValue("country"),
		ZipCode:       r.PostFormValue("zipCode"),
	}
}

// formFailure re-renders the form with the failure surfaced as a toast.
func (h *Handler) formFailure(w http.ResponseWriter, r *http.Request, title string, page formPage, err error, fallback string) {
	status := http.StatusBadRequest
	message := err.Error()
	if !expected(err) {
		h.logger.Error("save vendor failed", slog.Any("error", err))
		status = http.StatusInternalServerError
		message = fallback
	}
	h.renderWithFlash(w, r, status, "pages/vendor_form.html", title, page, &shared.FlashMessage{Kind: shared.FlashError, Message: message})
}

func (h *Handler) lookupFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMissingID) {
		h.renderError(w, r, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	h.logger.Error("get vendor failed", slog.Any("error", err))
	h.renderError(w, r, http.StatusInternalServerError, "Failed to fetch vendor")
}

// requireUser redirects anonymous visitors to the sign-in page.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/auth/sign-in", http.StatusSeeOther)
		return "", false
	}
	return userID, true
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, "pages/error.html", http.StatusText(status), message)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, template, title string, data any) {
	var flash *shared.FlashMessage
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		flash = sess.PopFlash()
	}
	h.renderWithFlash(w, r, status, template, title, data, flash)
}

func (h *Handler) renderWithFlash(w http.ResponseWriter, r *http.Request, status int, template, title string, data any, flash *shared.FlashMessage) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(sess)
	viewData := view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		SignedIn:    true,
		Data:        data,
	}
	if err := h.templates.Render(w, status, template, viewData); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, location, kind, message string) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

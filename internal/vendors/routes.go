package vendors

import "github.com/go-chi/chi/v5"

// MountRoutes registers the vendor pages.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/new", h.NewForm)
	r.Post("/", h.Create)
	r.Get("/edit/{id}", h.EditForm)
	r.Post("/edit/{id}", h.Update)
	r.Post("/{id}/delete", h.Delete)
}

package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/vendordesk/vendordesk/internal/shared"
	"github.com/vendordesk/vendordesk/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	SignedIn    bool
	Data        any
}

// Field is the view model of a labelled text input.
type Field struct {
	Name     string
	Label    string
	Value    string
	Required bool
	Message  string
	Error    string
}

func newField(name, label, value string, required bool, errs map[string]string) Field {
	return Field{
		Name:     name,
		Label:    label,
		Value:    value,
		Required: required,
		Message:  label + " is required",
		Error:    errs[name],
	}
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006 15:04")
		},
		"field": newField,
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template and writes it with the given status. The
// page is buffered so a failing template never produces a partial response.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

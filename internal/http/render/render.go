package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageNames lists every page template. Each one is parsed together with
// the layout so pages can override the layout's content block.
var pageNames = []string{
	"products.tmpl",
	"product_new.tmpl",
	"review.tmpl",
	"error.tmpl",
}

// Renderer renders HTML pages from the embedded template set.
type Renderer struct {
	logger *slog.Logger
	pages  map[string]*template.Template
}

func New(logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		logger: logger,
		pages:  pages,
	}, nil
}

// Page writes the named page with the given status code. Render failures
// degrade to a plain 500 so a broken template never leaks a half page.
func (r *Renderer) Page(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.ErrorContext(req.Context(), "unknown page template", slog.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.ErrorContext(req.Context(), "error rendering page",
			slog.String("template", name), slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck
	buf.WriteTo(w)
}

package app

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/metinatakli/ev-charging-checkout/ui"
)

type templateData struct {
	CurrentYear int
	PublicKey   string
	Product     domain.Product
	Reference   string
}

func (app *Application) newTemplateData() templateData {
	return templateData{
		CurrentYear: time.Now().Year(),
		Product:     app.product,
	}
}

// NewTemplateCache parses every page under ui/html/pages together with the base layout.
func NewTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := path.Base(page)

		ts, err := template.New(name).ParseFS(ui.Files, "html/base.tmpl", page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}

		cache[name] = ts
	}

	return cache, nil
}

func (app *Application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}

	// Render into a buffer first so a template error can still become a 500.
	buf := new(bytes.Buffer)

	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	buf.WriteTo(w)
}

package admin

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/gin-gonic/gin/render"

	"github.com/vietanh2810/inventory-api/web"
)

const (
	pageDashboard = "dashboard.html"
	pageItems     = "items.html"
	pageItemForm  = "item_form.html"
	pageDelete    = "item_delete.html"
)

var pages = []string{pageDashboard, pageItems, pageItemForm, pageDelete}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": func(p float64) string {
			return fmt.Sprintf("%.2f", p)
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
	}
}

// Templates renders one page inside the shared layout. It satisfies
// gin's render.HTMLRender so pages are written with ctx.HTML.
type Templates struct {
	templates map[string]*template.Template
}

func LoadTemplates() (*Templates, error) {
	tfs, err := web.TemplatesFS()
	if err != nil {
		return nil, fmt.Errorf("web.TemplatesFS -> %w", err)
	}

	return parseTemplates(tfs)
}

func parseTemplates(tfs fs.FS) (*Templates, error) {
	ts := &Templates{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(FuncMap()).ParseFS(tfs, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s -> %w", page, err)
		}
		ts.templates[page] = tmpl
	}

	return ts, nil
}

func (ts *Templates) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: ts.templates[name],
		Name:     "layout",
		Data:     data,
	}
}

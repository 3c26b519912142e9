package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer executes the page templates. Each page is parsed together with the
// shared layout and must define "title" and "content".
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"add":  func(a, b int) int { return a + b },
	// str and num unwrap nullable columns so {{with}} skips "" and 0
	"str": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"num": func(n *int) int {
		if n == nil {
			return 0
		}
		return *n
	},
}

// NewRenderer parses every embedded page.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with data to w.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, path.Base(layoutFile), data)
}

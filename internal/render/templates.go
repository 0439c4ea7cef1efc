package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates
var templateFS embed.FS

// Page is the value every page template executes against.
type Page struct {
	Site  string
	Title string
	Path  string
	Data  interface{}
}

// Templates holds one parsed template set per page. Each set is the layout
// plus partials with a single page's "content" block.
type Templates struct {
	pages map[string]*template.Template
	print *template.Template
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatDate":    FormatDate,
		"formatDateISO": FormatDateISO,
		"postURL":       PostURL,
		"linkLabel":     LinkLabel,
		"title":         Title,
		"truncate":      Truncate,
		"validURL":      ValidURL,
		"take": func(n int, xs []string) []string {
			if len(xs) <= n {
				return xs
			}
			return xs[:n]
		},
		"sub": func(a, b int) int { return a - b },
	}
}

func NewTemplates() (*Templates, error) {
	base, err := template.New("base").Funcs(Funcs()).ParseFS(templateFS, "templates/layout/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	t := &Templates{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		t.pages[strings.TrimSuffix(path.Base(f), ".html")] = clone
	}
	t.print, err = template.New("print").Funcs(Funcs()).ParseFS(templateFS, "templates/print/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse print templates: %w", err)
	}
	return t, nil
}

// Render executes the named page inside the site layout.
func (t *Templates) Render(w io.Writer, name string, p Page) error {
	tpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tpl.ExecuteTemplate(w, "base", p)
}

// Has reports whether a page template exists.
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}

// RenderPrint executes a standalone print template, such as the document
// handed to the PDF renderer.
func (t *Templates) RenderPrint(w io.Writer, name string, data interface{}) error {
	tpl := t.print.Lookup(name + ".html")
	if tpl == nil {
		return fmt.Errorf("unknown print template %q", name)
	}
	return tpl.Execute(w, data)
}

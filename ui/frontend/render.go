package frontend

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
)

// renderer handles template rendering.
type renderer struct {
	tmpl *template.Template
}

// newRenderer parses the page shell and all fragment templates.
func newRenderer(templatesFS fs.FS) *renderer {
	tmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/*.html", "templates/fragments/*.html"))
	return &renderer{tmpl: tmpl}
}

// PageData contains common data for all pages.
type PageData struct {
	Title       string
	CurrentPath string
	Nav         []NavItem
	Content     template.HTML
}

// NavItem is one entry of the side navigation.
type NavItem struct {
	Path  string
	Label string
}

var navigation = []NavItem{
	{Path: "/accounts", Label: "Accounts"},
	{Path: "/projects", Label: "Projects"},
	{Path: "/schedule", Label: "Schedule"},
	{Path: "/finance", Label: "Finance"},
}

// render writes content wrapped in the page shell.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, content template.HTML) error {
	data := PageData{
		Title:       pageTitle(req.URL.Path),
		CurrentPath: req.URL.Path,
		Nav:         navigation,
		Content:     content,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// renderFragment renders a named fragment template (no layout).
func (r *renderer) renderFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render fragment %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func pageTitle(p string) string {
	segment, _ := splitPath(p)
	if segment == "" {
		return "casual"
	}
	return "casual | " + segment
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"humanize": humanize,
	}
}

// humanize turns "add-task" or "minutes_spent" into space separated words.
func humanize(s string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}

// decode percent-decodes s, falling back to s when it is malformed.
func decode(s string) string {
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}

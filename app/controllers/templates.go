package controllers

import (
	"embed"
	"html/template"
	"time"
)

//go:embed views/*.html
var viewsFS embed.FS

// templateFuncs mirrors the presentation helpers templates rely on: a
// human-readable date and a truncated preview for the index page.
var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"truncate": func(s string, length int) string {
		if len(s) <= length {
			return s
		}
		return s[:length] + "..."
	},
}

// loadTemplates loads and parses all templates
func loadTemplates() map[string]*template.Template {
	pages := map[string][]string{
		"index": {"views/layout.html", "views/index.html"},
		"show":  {"views/layout.html", "views/show.html"},
		"new":   {"views/layout.html", "views/new.html"},
		"edit":  {"views/layout.html", "views/edit.html"},
	}

	templates := make(map[string]*template.Template)
	for name, files := range pages {
		templates[name] = template.Must(
			template.New(name).Funcs(templateFuncs).ParseFS(viewsFS, files...))
	}
	return templates
}

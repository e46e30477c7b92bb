package frontend

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Templates Parse the embedded page templates.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		// Listings are numbered from 1
		"inc": func(i int) int { return i + 1 },
	}
	return template.New("").Funcs(funcs).ParseFS(templates, "templates/*.tmpl")
}

// Package web holds the embedded HTML views. Handlers treat them as
// opaque collaborators: they pick a view by name and hand it data.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded view. Embedding keeps rendering
// independent of the process working directory, which also makes the
// handlers testable without a deploy layout.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Package web holds the embedded HTML templates for the dashboard shell.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageTemplate is the entry point rendered for every dashboard request.
const PageTemplate = "page"

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.New("servicehub").ParseFS(templateFS, "templates/*.tmpl")
}

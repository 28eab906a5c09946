// Package web holds the HTML templates rendered by the handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded template set. The result is installed on the
// router with SetHTMLTemplate so handlers render by file name.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// Package templates holds the embedded HTML templates for the storefront
// pages. Product pages are executed once per generation into a static
// snapshot, not per request.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var (
	Product = template.Must(template.ParseFS(files, "product.html"))
	Error   = template.Must(template.ParseFS(files, "error.html"))
)

// ErrorPage is the view model for the error template.
type ErrorPage struct {
	Status    int
	Message   string
	RequestID string
}

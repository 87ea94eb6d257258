package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var content embed.FS

// TemplatesFS returns the admin page templates.
func TemplatesFS() (fs.FS, error) {
	return fs.Sub(content, "templates")
}

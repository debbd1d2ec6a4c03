package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateName is the document template rendered by default. A theme can
// point at another template through its "page" partial.
const TemplateName = "templates/page.tmpl"

// TemplatesFS exposes the embedded templates so callers can extend or copy
// them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

package heroflex

import (
	"io/fs"

	"github.com/goliatone/go-heroflex/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

package heroflex

import (
	"embed"
	"io/fs"
)

// StylesheetName is the base stylesheet inside RuntimeAssetsFS.
const StylesheetName = "heroflex.css"

//go:embed pkg/runtime/assets/*.css
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the base stylesheet (button variants and the fade-in
// animation) so Go applications can serve it next to rendered heroes.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(heroflex.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}

package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the decoded content.
type RenderOptions struct {
	// Theme carries the resolved theme selection. Page renderers emit its
	// tokens as CSS custom properties so `var(--color-<token>)` references in
	// hero styles resolve.
	Theme *theme.RendererConfig
	// Locale and Translator localise the fallback labels (CTA text, alt text).
	// Without a translator the English defaults are used.
	Locale     string
	Translator Translator
	// OnMissing decides the string used when a translation is unavailable.
	OnMissing MissingTranslationHandler
	// Title is the document title for renderers that emit a full page.
	Title string
	// Stylesheets are linked from the document head, in order.
	Stylesheets []string
	// Subset restricts rendering to matching blocks.
	Subset BlockSubset
}

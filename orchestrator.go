package heroflex

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/orchestrator"
	"github.com/goliatone/go-heroflex/pkg/render"
)

// HeroBlock aliases the content model so callers can build blocks in code.
type HeroBlock = content.HeroBlock

// RenderOptions describes per-request overrides such as locale, translator,
// stylesheets and block subsets.
type RenderOptions = render.RenderOptions

// BlockSubset aliases render.BlockSubset for callers rendering a subset of a
// page's hero blocks.
type BlockSubset = render.BlockSubset

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the source, decodes its hero blocks, and renders them
// with the named renderer ("fragment" or "page"). It is the simplest entry
// point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, source content.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromBlocks renders blocks that are already decoded, bypassing
// the loader.
func GenerateHTMLFromBlocks(ctx context.Context, blocks []content.HeroBlock, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Blocks:   blocks,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

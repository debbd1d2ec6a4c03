package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-heroflex/internal/content/loader"
	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
	"github.com/goliatone/go-heroflex/pkg/render"
	"github.com/goliatone/go-heroflex/pkg/renderers/fragment"
	"github.com/goliatone/go-heroflex/pkg/renderers/page"
)

const defaultRendererName = fragment.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom content loader.
func WithLoader(loader content.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry. The built-in renderers are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithImageBuilder sets the image URL builder handed to the built-in
// renderers.
func WithImageBuilder(builder imageurl.Builder) Option {
	return func(o *Orchestrator) {
		o.images = builder
	}
}

// WithTransformer registers transformers that run against every decoded block
// before rendering, in order.
func WithTransformer(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		for _, t := range transformers {
			if t != nil {
				o.transformers = append(o.transformers, t)
			}
		}
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme names the theme and variant used when a request leaves
// them blank.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks sets the partials used when the selected theme does not
// override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = copyStringMap(fallbacks)
	}
}

// Orchestrator coordinates the pipeline from content source to rendered
// output.
type Orchestrator struct {
	loader          content.Loader
	registry        *render.Registry
	defaultRenderer string
	images          imageurl.Builder
	transformers    []Transformer
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Source identifies where the content document lives. Optional when
	// Document or Blocks is supplied.
	Source content.Source

	// Document bypasses the loader when the payload is already in memory.
	Document *content.Document

	// Blocks bypasses loading and decoding entirely.
	Blocks []content.HeroBlock

	// Renderer names the renderer to use; empty means the default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Ignored when RenderOptions.Theme is already set.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Generate loads, decodes, transforms and renders the request.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	blocks, err := o.Blocks(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.themeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, blocks, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Blocks resolves the request's hero blocks and runs the transformers over
// them. The returned slice is a copy; request blocks are never mutated.
func (o *Orchestrator) Blocks(ctx context.Context, req Request) ([]content.HeroBlock, error) {
	var blocks []content.HeroBlock
	if len(req.Blocks) > 0 {
		blocks = append(blocks, req.Blocks...)
	} else {
		doc, err := o.resolveDocument(ctx, req)
		if err != nil {
			return nil, err
		}
		blocks, err = content.DecodePage(doc)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: decode %s: %w", doc.Location(), err)
		}
	}

	for i := range blocks {
		if err := o.applyTransformers(ctx, &blocks[i]); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

// Renderer returns the named renderer, falling back to the default when name
// is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (content.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return content.Document{}, errors.New("orchestrator: source, document or blocks are required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return content.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, block *content.HeroBlock) error {
	for _, t := range o.transformers {
		if err := t.Transform(ctx, block); err != nil {
			return fmt.Errorf("orchestrator: transform block %q: %w", block.Key, err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(content.NewLoaderOptions())
	}
	if o.images == nil {
		o.images = imageurl.New("", "")
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		frag := fragment.New(fragment.WithImageBuilder(o.images))
		o.registry.MustRegister(frag)

		doc, err := page.New(page.WithFragment(frag))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(doc)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

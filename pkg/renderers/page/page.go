// Package page renders hero blocks inside a complete HTML document: theme
// tokens become CSS custom properties, stylesheets are linked, and the Lottie
// player script is included only when a block needs it.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/render"
	rendertemplate "github.com/goliatone/go-heroflex/pkg/render/template"
	"github.com/goliatone/go-heroflex/pkg/render/template/gotemplate"
	"github.com/goliatone/go-heroflex/pkg/renderers/fragment"
)

// Name is the registry name of the page renderer.
const Name = "page"

// DefaultLottieScript is the web component loaded for Lottie media.
const DefaultLottieScript = "https://unpkg.com/@lottiefiles/lottie-player@2/dist/lottie-player.js"

// Translation keys used by the document shell.
const (
	TitleKey     = "page.title"
	defaultTitle = "Hero preview"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	fragment         *fragment.Renderer
	lottieScript     string
	native           bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// TemplateName or every template a theme refers to.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders the document through the go-template engine
// instead of the bundled pongo2 adapter. WithTemplateRenderer takes
// precedence.
func WithGoTemplateEngine() Option {
	return func(cfg *config) {
		cfg.native = true
	}
}

// WithFragment sets the renderer producing the hero markup.
func WithFragment(r *fragment.Renderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.fragment = r
		}
	}
}

// WithLottieScript overrides DefaultLottieScript. An empty URL leaves the
// script out entirely.
func WithLottieScript(url string) Option {
	return func(cfg *config) {
		cfg.lottieScript = strings.TrimSpace(url)
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	fragment     *fragment.Renderer
	lottieScript string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lottieScript: DefaultLottieScript}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.fragment == nil {
		cfg.fragment = fragment.New()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		build := func(opts ...gotemplate.Option) (rendertemplate.TemplateRenderer, error) {
			return gotemplate.New(opts...)
		}
		if cfg.native {
			build = gotemplate.NewNative
		}
		engine, err := build(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		fragment:     cfg.fragment,
		lottieScript: cfg.lottieScript,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps the fragment output in the document template. Template data
// also carries the translate/current_locale helpers so custom templates can
// localise their own copy.
func (r *Renderer) Render(ctx context.Context, blocks []content.HeroBlock, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}

	blocks = render.ApplySubset(blocks, options.Subset)
	options.Subset = render.BlockSubset{}

	markup, err := r.fragment.Render(ctx, blocks, options)
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}

	data := map[string]any{
		"lang":        lang(options.Locale),
		"locale":      options.Locale,
		"title":       pageTitle(blocks, options),
		"stylesheets": stylesheets(options),
		"root_style":  RootDeclarations(CSSVars(options.Theme)),
		"theme":       themeContext(options.Theme),
		"content":     string(markup),
	}
	if r.lottieScript != "" && UsesLottie(blocks) {
		data["lottie_script"] = r.lottieScript
	}
	for name, fn := range render.TemplateI18nFuncs(options.Translator, render.TemplateI18nConfig{OnMissing: options.OnMissing}) {
		data[name] = fn
	}

	// Both engines append the extension themselves.
	result, err := r.templates.RenderTemplate(strings.TrimSuffix(templateName(options.Theme), ".tmpl"), data)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func templateName(cfg *theme.RendererConfig) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[Name]); name != "" {
			return name
		}
	}
	return TemplateName
}

func lang(locale string) string {
	if locale = strings.TrimSpace(locale); locale != "" {
		return locale
	}
	return "en"
}

// pageTitle prefers the explicit title, then the first block title, then the
// localised default.
func pageTitle(blocks []content.HeroBlock, options render.RenderOptions) string {
	if title := strings.TrimSpace(options.Title); title != "" {
		return title
	}
	for _, block := range blocks {
		if title := content.CleanString(block.Title); title != "" {
			return title
		}
	}
	return options.Translate(TitleKey, defaultTitle)
}

// stylesheets lists the theme stylesheet (asset key "stylesheet") followed by
// the explicitly requested ones, without duplicates.
func stylesheets(options render.RenderOptions) []string {
	var candidates []string
	if cfg := options.Theme; cfg != nil && cfg.AssetURL != nil {
		candidates = append(candidates, cfg.AssetURL("stylesheet"))
	}
	candidates = append(candidates, options.Stylesheets...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, href := range candidates {
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}
		out = append(out, href)
	}
	return out
}

// CSSVars derives the custom properties for a theme. Each token becomes
// --color-<token>; explicit CSSVars entries win over derived ones.
func CSSVars(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil || (len(cfg.Tokens) == 0 && len(cfg.CSSVars) == 0) {
		return nil
	}
	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for token, value := range cfg.Tokens {
		if name := gotemplate.CSSVarName(token); name != "" {
			vars[name] = value
		}
	}
	for name, value := range cfg.CSSVars {
		if name = strings.TrimSpace(name); name != "" {
			vars[name] = value
		}
	}
	return vars
}

// RootDeclarations serialises custom properties as sorted "name:value;"
// declarations for a style element. Entries that could end the declaration
// or the element are dropped, since raw-text content is never entity decoded.
func RootDeclarations(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		value := strings.TrimSpace(vars[name])
		if !strings.HasPrefix(name, "--") || !safeCSS(name) || value == "" || !safeCSS(value) {
			continue
		}
		sb.WriteString(name)
		sb.WriteByte(':')
		sb.WriteString(value)
		sb.WriteByte(';')
	}
	return sb.String()
}

func safeCSS(s string) bool {
	return !strings.ContainsAny(s, ";{}<>\\\n\r")
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
}

// UsesLottie reports whether any block renders a Lottie animation, as media
// or as a shape fill.
func UsesLottie(blocks []content.HeroBlock) bool {
	for _, block := range blocks {
		if m := block.Media; m != nil && content.CleanString(m.Type) == "lottie" && m.Lottie.Source() != "" {
			return true
		}
		if s := block.Shape; s != nil && s.Enabled && content.CleanString(s.Fill) == "lottie" && s.Lottie.Source() != "" {
			return true
		}
	}
	return false
}

package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
	"github.com/goliatone/go-heroflex/pkg/richtext"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithImageBuilder sets the collaborator that turns image references into
// URLs. Without one, asset URLs carried by the content are used as-is.
func WithImageBuilder(builder imageurl.Builder) Option {
	return func(r *Renderer) {
		if builder != nil {
			r.images = builder
		}
	}
}

// WithRichText sets the body renderer.
func WithRichText(renderer richtext.Renderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.text = renderer
		}
	}
}

// WithLabels overrides the fallback copy. Empty fields keep their default.
func WithLabels(labels Labels) Option {
	return func(r *Renderer) {
		r.labels = labels.withDefaults()
	}
}

// Renderer maps hero blocks onto gomponents nodes. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	images imageurl.Builder
	text   richtext.Renderer
	labels Labels
}

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		images: imageurl.New("", ""),
		text:   richtext.New(),
		labels: DefaultLabels(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

const fadeIn = "fade-in"

func animate() g.Node {
	return g.Attr("data-animate", fadeIn)
}

// Render builds the <section> for a block. Every field is optional; missing or
// malformed values fall back to defaults and never fail the render.
func (r *Renderer) Render(block content.HeroBlock) g.Node {
	variant := ParseVariant(block.Variant)
	position := ParseMediaPosition(block.MediaPosition)
	stack := ParseMobileStack(block.MobileStack)

	tone := "text-foreground"
	if block.InvertText {
		tone = "text-white"
	}

	var mediaAlign string
	if block.Media != nil {
		mediaAlign = block.Media.Align
	}
	container, self := MediaAlignClasses(mediaAlign)

	var media g.Node
	if variant != VariantFullBleed {
		media = r.Media(block.Media, variant, "h-full w-full", nil)
	}

	body := layout{
		variant:        variant,
		position:       position,
		stack:          stack,
		contentGap:     ContentGap(block.ContentSpacing),
		textClasses:    cn(TextAlignClass(block.TextAlign), tone),
		text:           r.textStack(block),
		media:          media,
		mediaContainer: container,
		mediaSelf:      self,
		mediaStyle:     ResolveMediaStyle(block.Media),
		shape:          r.Shape(block.Shape),
	}.compose()

	sectionLayout := "flex flex-col justify-center"
	if variant == VariantCard {
		sectionLayout = "flex flex-col items-center justify-center"
	}

	style := Style{{Property: "min-height", Value: ResolveMinHeight(block.MinHeight, block.MinHeightCustom)}}
	style = style.Merge(ResolveBackgroundStyle(block.Background))

	var fullBleedMedia g.Node
	if variant == VariantFullBleed {
		fullBleedMedia = r.Media(block.Media, VariantFullBleed, "", nil)
	}

	var id g.Node
	if key := content.CleanString(block.Key); key != "" {
		id = h.ID("hero-" + key)
	}

	return h.Section(
		class("hero-flex relative isolate overflow-hidden", sectionLayout, SectionPadding(block.PaddingStrategy)),
		id,
		g.Attr("data-variant", string(variant)),
		style.attr(),
		r.backgroundLayer(block.Background),
		fullBleedMedia,
		h.Div(h.Class("relative z-10 w-full"), body),
	)
}

// textStack assembles eyebrow, title/body group and the CTA row.
func (r *Renderer) textStack(block content.HeroBlock) g.Node {
	var eyebrow, title, body g.Node

	if text := content.CleanString(block.Eyebrow); text != "" {
		eyebrow = h.P(
			h.Class("text-sm font-semibold uppercase tracking-[0.2em] text-primary-foreground/80"),
			animate(),
			g.Text(text),
		)
	}
	if text := content.CleanString(block.Title); text != "" {
		title = h.H1(
			class("leading-tight", TitleClasses(block.TitleStyles)),
			animate(),
			g.Text(text),
		)
	}
	if len(block.Body) > 0 {
		body = h.Div(
			h.Class("max-w-3xl text-base sm:text-lg"),
			animate(),
			r.text.Render(block.Body),
		)
	}

	var group g.Node
	if title != nil || body != nil {
		group = h.Div(class("flex flex-col", TitleBodyGap(block.TitleBodySpacing)), title, body)
	}

	return g.Group([]g.Node{eyebrow, group, r.ctaRow(block.CTAs, block.InvertText)})
}

func (r *Renderer) ctaRow(ctas []content.CTA, invert bool) g.Node {
	if len(ctas) == 0 {
		return nil
	}
	return h.Div(
		h.Class("flex flex-wrap gap-4 pt-2"),
		animate(),
		g.Map(ctas, func(cta content.CTA) g.Node {
			return r.cta(cta, invert)
		}),
	)
}

// cta renders a single button link. Links starting with "http" open in a new
// tab; everything else is treated as in-page.
func (r *Renderer) cta(cta content.CTA, invert bool) g.Node {
	label := content.CleanString(cta.Label)
	if label == "" {
		label = r.labels.CTA
	}
	href := content.CleanString(cta.Href)
	if href == "" {
		href = "#"
	}
	variant := ButtonVariantFor(cta.Style)

	tone := ""
	if invert && variant == ButtonGhost {
		tone = "text-white"
	}

	var aria, external g.Node
	if text := content.CleanString(cta.AriaLabel); text != "" {
		aria = g.Attr("aria-label", text)
	}
	if isExternal(href) {
		external = g.Group([]g.Node{
			h.Target("_blank"),
			h.Rel("noopener noreferrer"),
		})
	}

	return h.A(
		class(variant.Class(), tone),
		h.Href(href),
		g.Attr("data-variant", string(variant)),
		aria,
		external,
		g.Text(label),
	)
}

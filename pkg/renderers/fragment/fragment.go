// Package fragment renders hero blocks as bare HTML <section> markup, ready
// to be spliced into an existing page.
package fragment

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/hero"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
	"github.com/goliatone/go-heroflex/pkg/render"
	"github.com/goliatone/go-heroflex/pkg/richtext"
)

// Name is the registry name of the fragment renderer.
const Name = "fragment"

type Option func(*Renderer)

// WithImageBuilder sets the image URL builder used for every block.
func WithImageBuilder(builder imageurl.Builder) Option {
	return func(r *Renderer) {
		if builder != nil {
			r.images = builder
		}
	}
}

// WithRichText replaces the Portable Text renderer used for block bodies.
func WithRichText(text richtext.Renderer) Option {
	return func(r *Renderer) {
		if text != nil {
			r.text = text
		}
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	images imageurl.Builder
	text   richtext.Renderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the fragment renderer. Without options images resolve to
// their asset URL and bodies go through the sanitizing Portable Text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		images: imageurl.New("", ""),
		text:   richtext.New(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes one <section> per block, newline separated, after applying
// options.Subset. Localised fallback labels come from options.
func (r *Renderer) Render(ctx context.Context, blocks []content.HeroBlock, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fragment renderer: %w", err)
	}

	blocks = render.ApplySubset(blocks, options.Subset)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("fragment renderer: %w", content.ErrNoHeroBlock)
	}

	heroRenderer := hero.New(
		hero.WithImageBuilder(r.images),
		hero.WithRichText(r.text),
		hero.WithLabels(render.HeroLabels(options)),
	)

	var buf bytes.Buffer
	for i, block := range blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := heroRenderer.Render(block).Render(&buf); err != nil {
			return nil, fmt.Errorf("fragment renderer: render block %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

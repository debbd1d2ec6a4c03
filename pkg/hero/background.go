package hero

import (
	"math"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
)

const (
	DefaultGradientAngle = 90
	DefaultGradientFrom  = "rgba(15,15,15,1)"
	DefaultGradientTo    = "rgba(0,0,0,0.6)"
)

// tokenVar references a theme color token.
func tokenVar(token string) string {
	return "var(--color-" + token + ")"
}

// ResolveBackgroundStyle returns the section declarations for a background.
// Image backgrounds contribute no style; they render as a separate layer.
func ResolveBackgroundStyle(bg *content.Background) Style {
	if bg == nil {
		return nil
	}
	switch parseBackgroundMode(bg.Mode) {
	case backgroundColor:
		if token := content.CleanString(bg.Token); token != "" {
			return Style{{Property: "background-color", Value: tokenVar(token)}}
		}
		if color := content.CleanString(bg.Color); color != "" {
			return Style{{Property: "background-color", Value: color}}
		}
		return nil
	case backgroundGradient:
		angle := float64(DefaultGradientAngle)
		from, to := DefaultGradientFrom, DefaultGradientTo
		if grad := bg.Gradient; grad != nil {
			if grad.Angle != nil {
				angle = *grad.Angle
			}
			if v := content.CleanString(grad.From); v != "" {
				from = v
			}
			if v := content.CleanString(grad.To); v != "" {
				to = v
			}
		}
		value := "linear-gradient(" + formatNumber(angle) + "deg, " + from + ", " + to + ")"
		return Style{{Property: "background-image", Value: value}}
	default:
		return nil
	}
}

// OverlayAlpha converts an overlay percentage into an opacity in [0,1].
func OverlayAlpha(percent float64) float64 {
	return math.Max(0, math.Min(percent, 100)) / 100
}

// backgroundLayer renders the image backdrop and its dark overlay. It returns
// nil unless the background is in image mode with a resolvable asset.
func (r *Renderer) backgroundLayer(bg *content.Background) g.Node {
	if bg == nil || parseBackgroundMode(bg.Mode) != backgroundImage {
		return nil
	}
	img := bg.Image
	if img.AssetID() == "" {
		return nil
	}
	src := r.images.URL(img, imageurl.Params{Width: 2400, Height: 1600, Fit: imageurl.FitMax})
	if src == "" {
		return nil
	}

	layer := h.Div(
		h.Class("absolute inset-0"),
		picture{
			src:   src,
			alt:   altOr(img, r.labels.BackgroundAlt),
			class: "object-cover",
			sizes: "100vw",
			fill:  true,
			lqip:  img.LQIP(),
		}.node(),
	)

	alpha := OverlayAlpha(bg.OverlayOpacity)
	if alpha <= 0 {
		return layer
	}
	return g.Group([]g.Node{
		layer,
		h.Div(
			h.Class("absolute inset-0 bg-black"),
			Style{{Property: "opacity", Value: formatNumber(alpha)}}.attr(),
			g.Attr("aria-hidden", "true"),
		),
	})
}

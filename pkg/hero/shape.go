package hero

import (
	"math"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
)

const (
	roundedShapeRadius = 48
	defaultShapeRadius = 4
	maxShapeImageWidth = 2000
)

// ShapeRadius returns the explicit radius, else 48 for rounded shapes and 4
// otherwise. Explicit values are used as given.
func ShapeRadius(s *content.Shape) float64 {
	if s == nil {
		return defaultShapeRadius
	}
	if s.Radius != nil {
		return *s.Radius
	}
	if normalize(s.Type) == "rounded" {
		return roundedShapeRadius
	}
	return defaultShapeRadius
}

// ShapeInset returns the inset length applied to all four edges of the fill.
func ShapeInset(s *content.Shape) string {
	if s == nil {
		return "0"
	}
	padding := math.Max(s.Padding, 0)
	if padding > 0 {
		return px(padding)
	}
	return "0"
}

// Shape renders the decorative backdrop. Disabled shapes render nothing; a
// fill that fails validation leaves the inset container empty.
func (r *Renderer) Shape(s *content.Shape) g.Node {
	if s == nil || !s.Enabled {
		return nil
	}

	inset := ShapeInset(s)
	radius := Style{{Property: "border-radius", Value: px(ShapeRadius(s))}}
	shadow := ShadowClass(s.Shadow)

	var fill g.Node
	switch parseShapeFill(s.Fill) {
	case fillColor:
		color := "var(--color-card)"
		if token := content.CleanString(s.Token); token != "" {
			color = tokenVar(token)
		} else if v := content.CleanString(s.Color); v != "" {
			color = v
		}
		fill = h.Div(
			class("h-full w-full", shadow),
			radius.Set("background", color).attr(),
		)
	case fillImage:
		fill = r.shapeImage(s.Image, shadow, radius)
	case fillLottie:
		if src := s.Lottie.Source(); src != "" {
			fill = lottiePlayer(s.Lottie, src, fitCover, cn("relative h-full w-full overflow-hidden", shadow), radius)
		}
	}

	return h.Div(
		h.Class("pointer-events-none absolute inset-0 -z-10"),
		h.Div(
			h.Class("absolute"),
			Style{
				{Property: "top", Value: inset},
				{Property: "right", Value: inset},
				{Property: "bottom", Value: inset},
				{Property: "left", Value: inset},
			}.attr(),
			fill,
		),
	)
}

func (r *Renderer) shapeImage(img *content.Image, shadow string, radius Style) g.Node {
	if img.AssetID() == "" {
		return nil
	}
	width := defaultMediaWidth
	if w, _ := img.Dimensions(); w > 0 {
		width = int(math.Round(math.Min(w, maxShapeImageWidth)))
	}
	src := r.images.URL(img, imageurl.Params{Width: width, Quality: imageQuality, Fit: imageurl.FitCrop})
	if src == "" {
		return nil
	}
	return h.Div(
		class("relative h-full w-full overflow-hidden", shadow),
		picture{
			src:   src,
			alt:   altOr(img, r.labels.ShapeAlt),
			class: "object-cover",
			sizes: "100vw",
			fill:  true,
			lqip:  img.LQIP(),
			style: radius,
		}.node(),
	)
}

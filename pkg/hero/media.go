package hero

import (
	"math"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
)

const (
	maxMediaWidth      = 2400
	maxMediaHeight     = 1600
	defaultMediaWidth  = 1600
	defaultMediaHeight = 1200
	imageQuality       = 80
)

// ResolveMediaStyle returns the width declarations of the media wrapper, or
// nil when none apply.
func ResolveMediaStyle(m *content.Media) Style {
	if m == nil {
		return nil
	}
	var style Style
	if m.WidthValue != nil {
		switch normalize(m.WidthMode) {
		case "px":
			style = style.Set("width", px(math.Max(*m.WidthValue, 0)))
		case "percent":
			style = style.Set("width", formatNumber(math.Max(*m.WidthValue, 0))+"%")
		}
	}
	if m.MaxWidth > 0 {
		style = style.Set("max-width", px(m.MaxWidth))
	}
	return style
}

// Media renders the media element for the given variant. It returns nil when
// the media cannot be resolved so callers can omit the surrounding slot.
func (r *Renderer) Media(m *content.Media, variant Variant, wrapperClass string, style Style) g.Node {
	if m == nil {
		return nil
	}
	fit := parseFit(m.Fit)

	if parseMediaType(m.Type) == mediaLottie {
		src := m.Lottie.Source()
		if src == "" {
			return nil
		}
		minHeight := ""
		if variant == VariantFullBleed {
			minHeight = "min-h-[50vh]"
		}
		player := lottiePlayer(m.Lottie, src, fit, cn("h-full w-full", minHeight, wrapperClass), style)
		if variant == VariantFullBleed {
			return h.Div(h.Class("absolute inset-0 overflow-hidden"), player)
		}
		return h.Div(class("relative", wrapperClass), style.attr(), player)
	}

	img := m.Image
	if img.AssetID() == "" {
		return nil
	}
	width, height := boundedDimensions(img, maxMediaWidth, maxMediaHeight)
	params := imageurl.Params{Width: width, Quality: imageQuality}
	if fit == fitContain {
		params.Fit = imageurl.FitMax
	} else {
		params.Height = height
		params.Fit = imageurl.FitCrop
	}
	src := r.images.URL(img, params)
	if src == "" {
		return nil
	}

	if variant == VariantFullBleed {
		return h.Div(
			h.Class("absolute inset-0"),
			picture{
				src:      src,
				alt:      altOr(img, r.labels.BackgroundAlt),
				class:    fit.objectClass(),
				sizes:    "100vw",
				fill:     true,
				priority: true,
				lqip:     img.LQIP(),
			}.node(),
		)
	}

	return h.Div(
		class("relative", wrapperClass),
		style.attr(),
		picture{
			src:    src,
			alt:    altOr(img, r.labels.MediaAlt),
			class:  cn("h-full w-full rounded-3xl", fit.objectClass()),
			sizes:  "(min-width: 1024px) 40vw, 90vw",
			width:  width,
			height: height,
			lqip:   img.LQIP(),
		}.node(),
	)
}

// boundedDimensions returns the asset size capped at the given bounds, or the
// defaults when the asset carries no dimensions.
func boundedDimensions(img *content.Image, maxWidth, maxHeight float64) (int, int) {
	w, hgt := img.Dimensions()
	width, height := defaultMediaWidth, defaultMediaHeight
	if w > 0 {
		width = int(math.Round(math.Min(w, maxWidth)))
	}
	if hgt > 0 {
		height = int(math.Round(math.Min(hgt, maxHeight)))
	}
	return width, height
}

func altOr(img *content.Image, fallback string) string {
	if img != nil {
		if alt := content.CleanString(img.Alt); alt != "" {
			return alt
		}
	}
	return fallback
}

// picture describes an <img> element. fill images are absolutely positioned
// to cover their wrapper; others carry intrinsic width and height.
type picture struct {
	src      string
	alt      string
	class    string
	sizes    string
	width    int
	height   int
	fill     bool
	priority bool
	lqip     string
	style    Style
}

func (p picture) node() g.Node {
	var style Style
	if p.fill {
		style = Style{
			{Property: "position", Value: "absolute"},
			{Property: "inset", Value: "0"},
			{Property: "width", Value: "100%"},
			{Property: "height", Value: "100%"},
		}
	}
	style = style.Merge(p.style)
	if p.lqip != "" {
		style = style.Merge(Style{
			{Property: "background-size", Value: "cover"},
			{Property: "background-position", Value: "50% 50%"},
			{Property: "background-repeat", Value: "no-repeat"},
			{Property: "background-image", Value: `url("` + p.lqip + `")`},
		})
	}

	loading := "lazy"
	var fetchPriority g.Node
	if p.priority {
		loading = "eager"
		fetchPriority = g.Attr("fetchpriority", "high")
	}

	var dims g.Node
	if !p.fill && p.width > 0 && p.height > 0 {
		dims = g.Group([]g.Node{
			h.Width(strconv.Itoa(p.width)),
			h.Height(strconv.Itoa(p.height)),
		})
	}

	var placeholder g.Node
	if p.lqip != "" {
		placeholder = g.Attr("data-placeholder", "blur")
	}

	return h.Img(
		h.Src(p.src),
		h.Alt(p.alt),
		class(p.class),
		g.If(p.sizes != "", g.Attr("sizes", p.sizes)),
		dims,
		g.Attr("loading", loading),
		g.Attr("decoding", "async"),
		fetchPriority,
		placeholder,
		style.attr(),
	)
}

// lottiePlayer renders the <lottie-player> web component. autoplay and loop
// are on unless explicitly disabled.
func lottiePlayer(l *content.Lottie, src string, fit fitMode, classes string, style Style) g.Node {
	autoplay := l.Autoplay == nil || *l.Autoplay
	loop := l.Loop == nil || *l.Loop

	var speed g.Node
	if l.Speed != nil && *l.Speed > 0 && *l.Speed != 1 {
		speed = g.Attr("speed", formatNumber(*l.Speed))
	}

	var a11y g.Node
	if label := content.CleanString(l.AriaLabel); label != "" {
		a11y = g.Group([]g.Node{g.Attr("role", "img"), g.Attr("aria-label", label)})
	} else {
		a11y = g.Attr("aria-hidden", "true")
	}

	return g.El("lottie-player",
		h.Src(src),
		g.Attr("background", "transparent"),
		g.If(autoplay, g.Attr("autoplay")),
		g.If(loop, g.Attr("loop")),
		speed,
		g.Attr("preserveAspectRatio", fit.preserveAspectRatio()),
		a11y,
		class(classes),
		style.attr(),
	)
}

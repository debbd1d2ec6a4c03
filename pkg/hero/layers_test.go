package hero_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/hero"
	"github.com/goliatone/go-heroflex/pkg/imageurl"
	"github.com/goliatone/go-heroflex/pkg/testsupport"
)

func TestResolveBackgroundStyle(t *testing.T) {
	cases := []struct {
		name string
		bg   *content.Background
		want string
	}{
		{name: "nil", bg: nil, want: ""},
		{name: "none", bg: &content.Background{Mode: "none", Color: "#000"}, want: ""},
		{name: "unknown mode", bg: &content.Background{Mode: "video", Color: "#000"}, want: ""},
		{name: "token wins", bg: &content.Background{Mode: "color", Token: "brand", Color: "#000"}, want: "background-color:var(--color-brand)"},
		{name: "literal color", bg: &content.Background{Mode: "color", Token: "  ", Color: "#112233"}, want: "background-color:#112233"},
		{name: "color without values", bg: &content.Background{Mode: "color"}, want: ""},
		{name: "gradient defaults", bg: &content.Background{Mode: "gradient"}, want: "background-image:linear-gradient(90deg, rgba(15,15,15,1), rgba(0,0,0,0.6))"},
		{
			name: "gradient values",
			bg: &content.Background{Mode: "gradient", Gradient: &content.Gradient{
				Angle: testsupport.Float(0), From: "#fff", To: "",
			}},
			want: "background-image:linear-gradient(0deg, #fff, rgba(0,0,0,0.6))",
		},
		{name: "image mode", bg: &content.Background{Mode: "image", Color: "#000"}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hero.ResolveBackgroundStyle(tc.bg).String(); got != tc.want {
				t.Fatalf("style = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOverlayAlpha(t *testing.T) {
	cases := map[float64]float64{-20: 0, 0: 0, 45: 0.45, 100: 1, 150: 1}
	for in, want := range cases {
		if got := hero.OverlayAlpha(in); got != want {
			t.Fatalf("OverlayAlpha(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRender_BackgroundImageOverlay(t *testing.T) {
	bg := &content.Background{
		Mode:           "image",
		OverlayOpacity: 150,
		Image:          image("image-bg-4000x3000-jpg", 4000, 3000),
	}
	builder := &recordingBuilder{}
	root := parse(t, newRenderer(builder).Render(content.HeroBlock{Background: bg}))

	overlay := testsupport.Find(root, testsupport.ByClass("bg-black"))
	if overlay == nil {
		t.Fatalf("overlay should render for a clamped opacity")
	}
	if got := attr(t, overlay, "style"); got != "opacity:1" {
		t.Fatalf("overlay style = %q", got)
	}
	if attr(t, overlay, "aria-hidden") != "true" {
		t.Fatalf("overlay should be hidden from assistive tech")
	}

	img := testsupport.Find(root, testsupport.ByTag("img"))
	if attr(t, img, "alt") != "Hero background" || attr(t, img, "loading") != "lazy" {
		t.Fatalf("background image attrs wrong: alt=%q loading=%q", attr(t, img, "alt"), attr(t, img, "loading"))
	}
	want := imageurl.Params{Width: 2400, Height: 1600, Fit: imageurl.FitMax}
	if len(builder.calls) != 1 || builder.calls[0] != want {
		t.Fatalf("params = %+v, want %+v", builder.calls, want)
	}

	bg.OverlayOpacity = 0
	root = parse(t, newRenderer(nil).Render(content.HeroBlock{Background: bg}))
	if testsupport.Find(root, testsupport.ByClass("bg-black")) != nil {
		t.Fatalf("zero opacity should omit the overlay node")
	}
	if testsupport.Find(root, testsupport.ByTag("img")) == nil {
		t.Fatalf("image should still render without an overlay")
	}

	bg.Image = &content.Image{}
	root = parse(t, newRenderer(nil).Render(content.HeroBlock{Background: bg}))
	if testsupport.Find(root, testsupport.ByTag("img")) != nil {
		t.Fatalf("background without asset id should render nothing")
	}
}

func TestMedia_UnresolvableRendersNothing(t *testing.T) {
	r := newRenderer(nil)
	cases := []struct {
		name  string
		media *content.Media
	}{
		{name: "nil", media: nil},
		{name: "image without asset", media: &content.Media{Type: "image", Image: &content.Image{Alt: "x"}}},
		{name: "image without reference", media: &content.Media{Type: "image"}},
		{name: "lottie without file", media: &content.Media{Type: "lottie", Lottie: &content.Lottie{}}},
		{name: "lottie with blank url", media: &content.Media{Type: "lottie", Lottie: lottie(" \u200b ")}},
		{name: "lottie ignores image", media: &content.Media{Type: "lottie", Image: image("image-a-1x1-png", 1, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, variant := range []hero.Variant{hero.VariantSplit, hero.VariantCard, hero.VariantFullBleed} {
				if node := r.Media(tc.media, variant, "h-full w-full", nil); node != nil {
					t.Fatalf("%s: expected nil node, got %s", variant, testsupport.RenderNode(t, node))
				}
			}
		})
	}
}

func TestMedia_EmptyURLFromBuilderRendersNothing(t *testing.T) {
	empty := imageurl.BuilderFunc(func(*content.Image, imageurl.Params) string { return "" })
	r := hero.New(hero.WithImageBuilder(empty))
	media := &content.Media{Image: image("image-a-10x10-png", 10, 10)}
	if node := r.Media(media, hero.VariantSplit, "", nil); node != nil {
		t.Fatalf("expected nil node when no url can be built")
	}
}

func TestMedia_ImageDimensions(t *testing.T) {
	cases := []struct {
		name string
		img  *content.Image
		fit  string
		want imageurl.Params
		w, h string
	}{
		{
			name: "clamped cover",
			img:  image("image-a-5000x4000-jpg", 5000, 4000),
			want: imageurl.Params{Width: 2400, Height: 1600, Quality: 80, Fit: imageurl.FitCrop},
			w:    "2400", h: "1600",
		},
		{
			name: "defaults without metadata",
			img:  image("image-a-10x10-jpg", 0, 0),
			want: imageurl.Params{Width: 1600, Height: 1200, Quality: 80, Fit: imageurl.FitCrop},
			w:    "1600", h: "1200",
		},
		{
			name: "contain skips height",
			img:  image("image-a-900x700-png", 900, 700),
			fit:  "contain",
			want: imageurl.Params{Width: 900, Quality: 80, Fit: imageurl.FitMax},
			w:    "900", h: "700",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder := &recordingBuilder{}
			r := newRenderer(builder)
			node := r.Media(&content.Media{Image: tc.img, Fit: tc.fit}, hero.VariantSplit, "h-full w-full", nil)
			root := parse(t, node)

			if len(builder.calls) != 1 || builder.calls[0] != tc.want {
				t.Fatalf("params = %+v, want %+v", builder.calls, tc.want)
			}
			wrapper := testsupport.Children(root)[0]
			if attr(t, wrapper, "class") != "relative h-full w-full" {
				t.Fatalf("wrapper class = %q", attr(t, wrapper, "class"))
			}
			img := testsupport.Find(root, testsupport.ByTag("img"))
			if attr(t, img, "width") != tc.w || attr(t, img, "height") != tc.h {
				t.Fatalf("img size = %sx%s", attr(t, img, "width"), attr(t, img, "height"))
			}
			if attr(t, img, "sizes") != "(min-width: 1024px) 40vw, 90vw" {
				t.Fatalf("sizes = %q", attr(t, img, "sizes"))
			}
			if !testsupport.HasClass(img, "rounded-3xl") {
				t.Fatalf("img class = %q", attr(t, img, "class"))
			}
		})
	}
}

func TestMedia_LQIPPlaceholder(t *testing.T) {
	img := image("image-a-800x600-jpg", 800, 600)
	img.Asset.Metadata.LQIP = "data:image/jpeg;base64,AAA"
	root := parse(t, newRenderer(nil).Render(content.HeroBlock{Media: &content.Media{Image: img}}))

	el := testsupport.Find(root, testsupport.ByTag("img"))
	if attr(t, el, "data-placeholder") != "blur" {
		t.Fatalf("lqip should mark the image as blurred")
	}
	want := `background-size:cover;background-position:50% 50%;background-repeat:no-repeat;background-image:url("data:image/jpeg;base64,AAA")`
	if got := attr(t, el, "style"); got != want {
		t.Fatalf("style = %q, want %q", got, want)
	}
}

func TestMedia_Lottie(t *testing.T) {
	l := lottie("https://cdn.test/a.json")
	l.Loop = testsupport.Bool(false)
	l.Speed = testsupport.Float(1.5)
	l.AriaLabel = "Spinning logo"

	r := newRenderer(nil)
	root := parse(t, r.Media(&content.Media{Type: "lottie", Lottie: l, Fit: "contain"}, hero.VariantSplit, "h-full w-full", nil))

	player := testsupport.Find(root, testsupport.ByTag("lottie-player"))
	if player == nil {
		t.Fatalf("lottie player missing")
	}
	if attr(t, player, "src") != "https://cdn.test/a.json" {
		t.Fatalf("src = %q", attr(t, player, "src"))
	}
	if _, ok := testsupport.Attr(player, "autoplay"); !ok {
		t.Fatalf("autoplay should default on")
	}
	if _, ok := testsupport.Attr(player, "loop"); ok {
		t.Fatalf("loop=false should be honoured")
	}
	if attr(t, player, "speed") != "1.5" {
		t.Fatalf("speed = %q", attr(t, player, "speed"))
	}
	if attr(t, player, "aria-label") != "Spinning logo" || attr(t, player, "role") != "img" {
		t.Fatalf("aria attributes missing")
	}
	if attr(t, player, "preserveaspectratio") != "xMidYMid meet" {
		t.Fatalf("contain should map to meet, got %q", attr(t, player, "preserveaspectratio"))
	}
	if attr(t, player, "class") != "h-full w-full" {
		t.Fatalf("player class = %q", attr(t, player, "class"))
	}

	root = parse(t, r.Media(&content.Media{Type: "lottie", Lottie: lottie("https://cdn.test/b.json")}, hero.VariantFullBleed, "", nil))
	wrapper := testsupport.Children(root)[0]
	if attr(t, wrapper, "class") != "absolute inset-0 overflow-hidden" {
		t.Fatalf("full bleed wrapper = %q", attr(t, wrapper, "class"))
	}
	player = testsupport.Find(root, testsupport.ByTag("lottie-player"))
	if !testsupport.HasClass(player, "min-h-[50vh]") {
		t.Fatalf("full bleed lottie should have a minimum height")
	}
	if attr(t, player, "aria-hidden") != "true" {
		t.Fatalf("unlabelled lottie should be decorative")
	}
}

func TestResolveMediaStyle(t *testing.T) {
	cases := []struct {
		name  string
		media *content.Media
		want  string
	}{
		{name: "nil", media: nil, want: ""},
		{name: "auto", media: &content.Media{WidthMode: "auto", WidthValue: testsupport.Float(300)}, want: ""},
		{name: "px", media: &content.Media{WidthMode: "px", WidthValue: testsupport.Float(320)}, want: "width:320px"},
		{name: "negative px", media: &content.Media{WidthMode: "px", WidthValue: testsupport.Float(-5)}, want: "width:0px"},
		{name: "percent", media: &content.Media{WidthMode: "percent", WidthValue: testsupport.Float(75)}, want: "width:75%"},
		{name: "mode without value", media: &content.Media{WidthMode: "px"}, want: ""},
		{name: "max width", media: &content.Media{MaxWidth: 640}, want: "max-width:640px"},
		{name: "non-positive max width", media: &content.Media{MaxWidth: -1}, want: ""},
		{name: "both", media: &content.Media{WidthMode: "percent", WidthValue: testsupport.Float(50), MaxWidth: 480}, want: "width:50%;max-width:480px"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			style := hero.ResolveMediaStyle(tc.media)
			if got := style.String(); got != tc.want {
				t.Fatalf("style = %q, want %q", got, tc.want)
			}
			if tc.want == "" && len(style) != 0 {
				t.Fatalf("expected no declarations, got %v", style)
			}
		})
	}
}

func TestShapeRadiusAndInset(t *testing.T) {
	cases := []struct {
		shape  *content.Shape
		radius float64
		inset  string
	}{
		{shape: &content.Shape{}, radius: 4, inset: "0"},
		{shape: &content.Shape{Type: "rounded"}, radius: 48, inset: "0"},
		{shape: &content.Shape{Type: "rounded", Radius: testsupport.Float(0)}, radius: 0, inset: "0"},
		{shape: &content.Shape{Radius: testsupport.Float(-8), Padding: -12}, radius: -8, inset: "0"},
		{shape: &content.Shape{Padding: 24}, radius: 4, inset: "24px"},
	}
	for _, tc := range cases {
		if got := hero.ShapeRadius(tc.shape); got != tc.radius {
			t.Fatalf("radius = %v, want %v", got, tc.radius)
		}
		if got := hero.ShapeInset(tc.shape); got != tc.inset {
			t.Fatalf("inset = %q, want %q", got, tc.inset)
		}
	}
}

func TestShape_Fills(t *testing.T) {
	r := newRenderer(nil)

	if node := r.Shape(nil); node != nil {
		t.Fatalf("nil shape should render nothing")
	}
	if node := r.Shape(&content.Shape{Color: "#fff"}); node != nil {
		t.Fatalf("disabled shape should render nothing")
	}

	root := parse(t, r.Shape(&content.Shape{Enabled: true, Type: "rounded", Padding: 16, Shadow: "soft", Token: "accent"}))
	inset := testsupport.Find(root, testsupport.ByTag("div"), testsupport.ByAttr("class", "absolute"))
	if got := attr(t, inset, "style"); got != "top:16px;right:16px;bottom:16px;left:16px" {
		t.Fatalf("inset style = %q", got)
	}
	fill := testsupport.Children(inset)[0]
	if got := attr(t, fill, "class"); got != "h-full w-full shadow-lg shadow-black/10" {
		t.Fatalf("fill class = %q", got)
	}
	if got := attr(t, fill, "style"); got != "border-radius:48px;background:var(--color-accent)" {
		t.Fatalf("fill style = %q", got)
	}

	root = parse(t, r.Shape(&content.Shape{Enabled: true}))
	fill = testsupport.Children(testsupport.Find(root, testsupport.ByAttr("class", "absolute")))[0]
	if got := attr(t, fill, "style"); got != "border-radius:4px;background:var(--color-card)" {
		t.Fatalf("default fill style = %q", got)
	}

	invalid := []*content.Shape{
		{Enabled: true, Fill: "image", Image: &content.Image{}},
		{Enabled: true, Fill: "lottie", Lottie: &content.Lottie{}},
	}
	for _, shape := range invalid {
		root = parse(t, r.Shape(shape))
		outer := testsupport.Find(root, testsupport.ByClass("pointer-events-none"))
		if outer == nil {
			t.Fatalf("%s fill: container should still render", shape.Fill)
		}
		inset := testsupport.Find(outer, testsupport.ByAttr("class", "absolute"))
		if inset == nil || len(testsupport.Children(inset)) != 0 {
			t.Fatalf("%s fill: inset container should be empty", shape.Fill)
		}
	}
}

func TestShape_ImageAndLottieFills(t *testing.T) {
	builder := &recordingBuilder{}
	r := newRenderer(builder)

	root := parse(t, r.Shape(&content.Shape{
		Enabled: true,
		Fill:    "image",
		Radius:  testsupport.Float(12),
		Image:   image("image-s-3000x900-png", 3000, 900),
	}))
	want := []imageurl.Params{{Width: 2000, Quality: 80, Fit: imageurl.FitCrop}}
	if diff := cmp.Diff(want, builder.calls); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	img := testsupport.Find(root, testsupport.ByTag("img"))
	if attr(t, img, "alt") != "Decorative hero shape" {
		t.Fatalf("shape alt = %q", attr(t, img, "alt"))
	}
	if got := attr(t, img, "style"); got != "position:absolute;inset:0;width:100%;height:100%;border-radius:12px" {
		t.Fatalf("shape img style = %q", got)
	}

	root = parse(t, r.Shape(&content.Shape{Enabled: true, Fill: "lottie", Shadow: "strong", Lottie: lottie("https://cdn.test/s.json")}))
	player := testsupport.Find(root, testsupport.ByTag("lottie-player"))
	if player == nil {
		t.Fatalf("lottie fill missing")
	}
	if got := attr(t, player, "class"); got != "relative h-full w-full overflow-hidden shadow-2xl shadow-black/20" {
		t.Fatalf("lottie fill class = %q", got)
	}
	if attr(t, player, "preserveaspectratio") != "xMidYMid slice" {
		t.Fatalf("shape lottie should cover")
	}
}

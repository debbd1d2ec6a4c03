package content

// HeroFlexType is the `_type` discriminator of hero blocks in the content store.
const HeroFlexType = "hero-flex"

// HeroBlock is the root configuration entity for a hero section. Every field is
// optional; enumerated keys are kept as raw strings so the renderer can apply
// its own "unknown key → default" policy.
type HeroBlock struct {
	Type             string       `json:"_type,omitempty" yaml:"_type,omitempty"`
	Key              string       `json:"_key,omitempty" yaml:"_key,omitempty"`
	Variant          string       `json:"variant,omitempty" yaml:"variant,omitempty"`
	MinHeight        string       `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
	MinHeightCustom  float64      `json:"minHeightCustom,omitempty" yaml:"minHeightCustom,omitempty"`
	ContentSpacing   string       `json:"contentSpacing,omitempty" yaml:"contentSpacing,omitempty"`
	PaddingStrategy  string       `json:"paddingStrategy,omitempty" yaml:"paddingStrategy,omitempty"`
	TextAlign        string       `json:"textAlign,omitempty" yaml:"textAlign,omitempty"`
	InvertText       bool         `json:"invertText,omitempty" yaml:"invertText,omitempty"`
	MobileStack      string       `json:"mobileStack,omitempty" yaml:"mobileStack,omitempty"`
	MediaPosition    string       `json:"mediaPosition,omitempty" yaml:"mediaPosition,omitempty"`
	Eyebrow          string       `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Title            string       `json:"title,omitempty" yaml:"title,omitempty"`
	TitleStyles      *TitleStyles `json:"titleStyles,omitempty" yaml:"titleStyles,omitempty"`
	TitleBodySpacing string       `json:"titleBodySpacing,omitempty" yaml:"titleBodySpacing,omitempty"`
	Body             []Block      `json:"body,omitempty" yaml:"body,omitempty"`
	CTAs             []CTA        `json:"ctas,omitempty" yaml:"ctas,omitempty"`
	Media            *Media       `json:"media,omitempty" yaml:"media,omitempty"`
	Background       *Background  `json:"background,omitempty" yaml:"background,omitempty"`
	Shape            *Shape       `json:"shape,omitempty" yaml:"shape,omitempty"`
}

// TitleStyles groups the typography keys for the hero title.
type TitleStyles struct {
	Font     string `json:"font,omitempty" yaml:"font,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
	Weight   string `json:"weight,omitempty" yaml:"weight,omitempty"`
	Tracking string `json:"tracking,omitempty" yaml:"tracking,omitempty"`
}

// CTA is a single call-to-action button.
type CTA struct {
	Key       string `json:"_key,omitempty" yaml:"_key,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Href      string `json:"href,omitempty" yaml:"href,omitempty"`
	Style     string `json:"style,omitempty" yaml:"style,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// Media describes the visual element placed next to (or behind) the text.
type Media struct {
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Image      *Image   `json:"image,omitempty" yaml:"image,omitempty"`
	Lottie     *Lottie  `json:"lottie,omitempty" yaml:"lottie,omitempty"`
	WidthMode  string   `json:"widthMode,omitempty" yaml:"widthMode,omitempty"`
	WidthValue *float64 `json:"widthValue,omitempty" yaml:"widthValue,omitempty"`
	MaxWidth   float64  `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
	Fit        string   `json:"fit,omitempty" yaml:"fit,omitempty"`
	Align      string   `json:"align,omitempty" yaml:"align,omitempty"`
}

// Background configures the section backdrop. Only the fields relevant to Mode
// are consulted.
type Background struct {
	Mode           string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Token          string    `json:"token,omitempty" yaml:"token,omitempty"`
	Color          string    `json:"color,omitempty" yaml:"color,omitempty"`
	Image          *Image    `json:"image,omitempty" yaml:"image,omitempty"`
	OverlayOpacity float64   `json:"overlayOpacity,omitempty" yaml:"overlayOpacity,omitempty"`
	Gradient       *Gradient `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// Gradient holds the linear gradient parameters of a background.
type Gradient struct {
	Angle *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	From  string   `json:"from,omitempty" yaml:"from,omitempty"`
	To    string   `json:"to,omitempty" yaml:"to,omitempty"`
}

// Shape is the decorative panel drawn behind the text stack.
type Shape struct {
	Enabled bool     `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Type    string   `json:"type,omitempty" yaml:"type,omitempty"`
	Radius  *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Padding float64  `json:"padding,omitempty" yaml:"padding,omitempty"`
	Shadow  string   `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Fill    string   `json:"fill,omitempty" yaml:"fill,omitempty"`
	Color   string   `json:"color,omitempty" yaml:"color,omitempty"`
	Token   string   `json:"token,omitempty" yaml:"token,omitempty"`
	Image   *Image   `json:"image,omitempty" yaml:"image,omitempty"`
	Lottie  *Lottie  `json:"lottie,omitempty" yaml:"lottie,omitempty"`
}

// Image is a CMS image reference with its resolved asset metadata.
type Image struct {
	Asset   *ImageAsset `json:"asset,omitempty" yaml:"asset,omitempty"`
	Hotspot *Hotspot    `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
	Crop    *Crop       `json:"crop,omitempty" yaml:"crop,omitempty"`
	Alt     string      `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// AssetID returns the cleaned asset identifier or "" when the reference is
// unresolved.
func (i *Image) AssetID() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return CleanString(i.Asset.ID)
}

// LQIP returns the low-quality placeholder data URI, if any.
func (i *Image) LQIP() string {
	if i == nil || i.Asset == nil || i.Asset.Metadata == nil {
		return ""
	}
	return CleanString(i.Asset.Metadata.LQIP)
}

// Dimensions returns the intrinsic asset size; zero values mean unknown.
func (i *Image) Dimensions() (width, height float64) {
	if i == nil || i.Asset == nil || i.Asset.Metadata == nil || i.Asset.Metadata.Dimensions == nil {
		return 0, 0
	}
	d := i.Asset.Metadata.Dimensions
	return d.Width, d.Height
}

// ImageAsset is the dereferenced asset document.
type ImageAsset struct {
	ID       string         `json:"_id,omitempty" yaml:"_id,omitempty"`
	URL      string         `json:"url,omitempty" yaml:"url,omitempty"`
	MimeType string         `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Metadata *ImageMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ImageMetadata carries the placeholder and intrinsic dimensions.
type ImageMetadata struct {
	LQIP       string      `json:"lqip,omitempty" yaml:"lqip,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// Dimensions is the intrinsic pixel size of an asset.
type Dimensions struct {
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Hotspot is the editor-selected focal area, expressed as fractions.
type Hotspot struct {
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Crop trims each edge by the given fraction of the asset size.
type Crop struct {
	Top    float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Right  float64 `json:"right,omitempty" yaml:"right,omitempty"`
}

// IsZero reports whether the crop leaves the asset untouched.
func (c *Crop) IsZero() bool {
	return c == nil || (c.Top == 0 && c.Bottom == 0 && c.Left == 0 && c.Right == 0)
}

// Lottie references a vector animation file and its playback options.
type Lottie struct {
	File      *FileRef `json:"file,omitempty" yaml:"file,omitempty"`
	Autoplay  *bool    `json:"autoplay,omitempty" yaml:"autoplay,omitempty"`
	Loop      *bool    `json:"loop,omitempty" yaml:"loop,omitempty"`
	Speed     *float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	AriaLabel string   `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// Source returns the cleaned animation URL or "" when unresolved.
func (l *Lottie) Source() string {
	if l == nil || l.File == nil || l.File.Asset == nil {
		return ""
	}
	return CleanString(l.File.Asset.URL)
}

// FileRef wraps a dereferenced file asset.
type FileRef struct {
	Asset *FileAsset `json:"asset,omitempty" yaml:"asset,omitempty"`
}

// FileAsset is the `asset->{_id,url}` projection of a file.
type FileAsset struct {
	ID  string `json:"_id,omitempty" yaml:"_id,omitempty"`
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Block is one Portable Text block. Custom block types keep their raw payload
// in Fields so rich text renderers can decide how to handle them.
type Block struct {
	Type     string         `json:"_type,omitempty" yaml:"_type,omitempty"`
	Key      string         `json:"_key,omitempty" yaml:"_key,omitempty"`
	Style    string         `json:"style,omitempty" yaml:"style,omitempty"`
	ListItem string         `json:"listItem,omitempty" yaml:"listItem,omitempty"`
	Level    int            `json:"level,omitempty" yaml:"level,omitempty"`
	Children []Span         `json:"children,omitempty" yaml:"children,omitempty"`
	MarkDefs []MarkDef      `json:"markDefs,omitempty" yaml:"markDefs,omitempty"`
	Fields   map[string]any `json:"-" yaml:"-"`
}

// Span is an inline run of text carrying decorator or annotation marks.
type Span struct {
	Type  string   `json:"_type,omitempty" yaml:"_type,omitempty"`
	Key   string   `json:"_key,omitempty" yaml:"_key,omitempty"`
	Text  string   `json:"text,omitempty" yaml:"text,omitempty"`
	Marks []string `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from Span.Marks by key.
type MarkDef struct {
	Type string `json:"_type,omitempty" yaml:"_type,omitempty"`
	Key  string `json:"_key,omitempty" yaml:"_key,omitempty"`
	Href string `json:"href,omitempty" yaml:"href,omitempty"`
}

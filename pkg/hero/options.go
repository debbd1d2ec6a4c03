package hero

import (
	"strings"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Every resolver below accepts the raw CMS key. Missing or unrecognised keys
// resolve to the documented default for that dimension.

func normalize(key string) string {
	return content.CleanString(key)
}

// Variant selects the overall layout arrangement.
type Variant string

const (
	VariantFullBleed Variant = "fullBleed"
	VariantSplit     Variant = "split"
	VariantCard      Variant = "card"
)

// ParseVariant resolves a variant key, defaulting to split.
func ParseVariant(key string) Variant {
	switch v := Variant(normalize(key)); v {
	case VariantFullBleed, VariantSplit, VariantCard:
		return v
	default:
		return VariantSplit
	}
}

// Spacing is the shared scale for section padding and the text/media gap.
type Spacing string

const (
	SpacingCompact  Spacing = "compact"
	SpacingCozy     Spacing = "cozy"
	SpacingRoomy    Spacing = "roomy"
	SpacingSpacious Spacing = "spacious"
)

// ParseSpacing resolves a spacing key, defaulting to cozy.
func ParseSpacing(key string) Spacing {
	switch s := Spacing(normalize(key)); s {
	case SpacingCompact, SpacingCozy, SpacingRoomy, SpacingSpacious:
		return s
	default:
		return SpacingCozy
	}
}

// SectionPadding returns the responsive padding classes for the section.
func SectionPadding(key string) string {
	switch ParseSpacing(key) {
	case SpacingCompact:
		return "px-4 py-12 sm:px-6 sm:py-14 lg:px-12 lg:py-16"
	case SpacingRoomy:
		return "px-4 py-20 sm:px-8 sm:py-24 lg:px-20 lg:py-28"
	case SpacingSpacious:
		return "px-6 py-24 sm:px-10 sm:py-32 lg:px-24 lg:py-36"
	default:
		return "px-4 py-16 sm:px-8 sm:py-20 lg:px-16 lg:py-24"
	}
}

// ContentGap returns the gap classes between the text stack and the media.
func ContentGap(key string) string {
	switch ParseSpacing(key) {
	case SpacingCompact:
		return "gap-6 md:gap-8"
	case SpacingRoomy:
		return "gap-10 md:gap-12"
	case SpacingSpacious:
		return "gap-12 md:gap-16"
	default:
		return "gap-8 md:gap-10"
	}
}

// TitleSpacing is the vertical rhythm between title and body.
type TitleSpacing string

const (
	TitleSpacingTight   TitleSpacing = "tight"
	TitleSpacingSnug    TitleSpacing = "snug"
	TitleSpacingNormal  TitleSpacing = "normal"
	TitleSpacingRelaxed TitleSpacing = "relaxed"
)

// TitleBodyGap returns the row gap classes of the title/body group.
func TitleBodyGap(key string) string {
	switch TitleSpacing(normalize(key)) {
	case TitleSpacingTight:
		return "gap-y-2 md:gap-y-3"
	case TitleSpacingSnug:
		return "gap-y-3 md:gap-y-4"
	case TitleSpacingRelaxed:
		return "gap-y-6 md:gap-y-8"
	default:
		return "gap-y-4 md:gap-y-6"
	}
}

// TextAlignClass returns the flex/text alignment classes of the text stack.
func TextAlignClass(key string) string {
	switch normalize(key) {
	case "center":
		return "items-center text-center"
	case "right":
		return "items-end text-right"
	default:
		return "items-start text-left"
	}
}

// MediaAlignClasses returns the container justification and the self
// alignment for the media slot.
func MediaAlignClasses(key string) (container, self string) {
	switch normalize(key) {
	case "start":
		return "justify-start", "self-start"
	case "end":
		return "justify-end", "self-end"
	default:
		return "justify-center", "self-center"
	}
}

// TitleFontClass resolves the title font family.
func TitleFontClass(key string) string {
	switch normalize(key) {
	case "display":
		return "font-[var(--font-display)]"
	case "serif":
		return "font-serif"
	case "mono":
		return "font-mono"
	default:
		return "font-sans"
	}
}

// TitleSizeClass resolves the responsive title size, defaulting to lg.
func TitleSizeClass(key string) string {
	switch normalize(key) {
	case "xs":
		return "text-3xl sm:text-4xl md:text-5xl"
	case "sm":
		return "text-4xl sm:text-5xl md:text-6xl"
	case "base":
		return "text-4xl sm:text-6xl md:text-7xl"
	case "xl":
		return "text-6xl sm:text-[3.8rem] lg:text-[4.8rem]"
	case "2xl":
		return "text-6xl sm:text-[4.2rem] lg:text-[5.2rem]"
	case "3xl":
		return "text-6xl sm:text-[4.6rem] lg:text-[5.6rem]"
	case "4xl":
		return "text-6xl sm:text-[5rem] lg:text-[6rem]"
	case "5xl":
		return "text-7xl sm:text-[5.4rem] lg:text-[6.4rem]"
	case "6xl":
		return "text-7xl sm:text-[5.8rem] lg:text-[6.8rem]"
	default:
		return "text-5xl sm:text-7xl lg:text-[4.5rem]"
	}
}

// TitleWeightClass resolves the numeric weight key, defaulting to 700.
func TitleWeightClass(key string) string {
	switch normalize(key) {
	case "300":
		return "font-light"
	case "400":
		return "font-normal"
	case "500":
		return "font-medium"
	case "600":
		return "font-semibold"
	case "800":
		return "font-extrabold"
	default:
		return "font-bold"
	}
}

// TitleTrackingClass resolves letter spacing, defaulting to normal.
func TitleTrackingClass(key string) string {
	switch k := normalize(key); k {
	case "tighter", "tight", "wide":
		return "tracking-" + k
	default:
		return "tracking-normal"
	}
}

// TitleClasses combines font, size, weight and tracking for the title.
func TitleClasses(styles *content.TitleStyles) string {
	if styles == nil {
		styles = &content.TitleStyles{}
	}
	return cn(
		TitleFontClass(styles.Font),
		TitleSizeClass(styles.Size),
		TitleWeightClass(styles.Weight),
		TitleTrackingClass(styles.Tracking),
	)
}

// ButtonVariant names the visual treatment of a CTA button.
type ButtonVariant string

const (
	ButtonDefault   ButtonVariant = "default"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonVariantFor maps a CTA style key onto a button variant. primary and
// anything unknown map to the default button.
func ButtonVariantFor(style string) ButtonVariant {
	switch normalize(style) {
	case "secondary":
		return ButtonSecondary
	case "ghost":
		return ButtonGhost
	default:
		return ButtonDefault
	}
}

// Class returns the button classes for the variant.
func (v ButtonVariant) Class() string {
	switch v {
	case ButtonSecondary:
		return "btn btn-secondary"
	case ButtonGhost:
		return "btn btn-ghost"
	default:
		return "btn btn-primary"
	}
}

// ShadowClass resolves the shape shadow intensity. none and unknown keys
// produce no classes.
func ShadowClass(key string) string {
	switch normalize(key) {
	case "soft":
		return "shadow-lg shadow-black/10"
	case "medium":
		return "shadow-xl shadow-black/15"
	case "strong":
		return "shadow-2xl shadow-black/20"
	default:
		return ""
	}
}

// MobileStack decides which slot comes first on narrow viewports.
type MobileStack string

const (
	MobileStackMediaFirst MobileStack = "mediaFirst"
	MobileStackTextFirst  MobileStack = "textFirst"
)

// ParseMobileStack defaults to mediaFirst.
func ParseMobileStack(key string) MobileStack {
	if MobileStack(normalize(key)) == MobileStackTextFirst {
		return MobileStackTextFirst
	}
	return MobileStackMediaFirst
}

// MediaPosition places the media column on wide viewports.
type MediaPosition string

const (
	MediaLeft  MediaPosition = "left"
	MediaRight MediaPosition = "right"
)

// ParseMediaPosition defaults to right.
func ParseMediaPosition(key string) MediaPosition {
	if MediaPosition(normalize(key)) == MediaLeft {
		return MediaLeft
	}
	return MediaRight
}

// MobileOrder returns the narrow-viewport order classes for the text and
// media slots.
func MobileOrder(stack MobileStack) (text, media string) {
	if stack == MobileStackTextFirst {
		return "order-1", "order-2"
	}
	return "order-2", "order-1"
}

// DesktopOrder returns the wide-viewport order classes for the text and media
// columns of the split layout.
func DesktopOrder(position MediaPosition) (text, media string) {
	if position == MediaLeft {
		return "lg:order-2", "lg:order-1"
	}
	return "lg:order-1", "lg:order-2"
}

// CardDirection returns the wide-viewport flex direction of the card panel.
func CardDirection(position MediaPosition) string {
	if position == MediaLeft {
		return "lg:flex-row-reverse"
	}
	return "lg:flex-row"
}

type mediaType string

const (
	mediaImage  mediaType = "image"
	mediaLottie mediaType = "lottie"
)

func parseMediaType(key string) mediaType {
	if mediaType(normalize(key)) == mediaLottie {
		return mediaLottie
	}
	return mediaImage
}

type fitMode string

const (
	fitCover   fitMode = "cover"
	fitContain fitMode = "contain"
)

func parseFit(key string) fitMode {
	if fitMode(normalize(key)) == fitContain {
		return fitContain
	}
	return fitCover
}

func (f fitMode) objectClass() string {
	if f == fitContain {
		return "object-contain"
	}
	return "object-cover"
}

// preserveAspectRatio is the lottie-player equivalent of object-fit.
func (f fitMode) preserveAspectRatio() string {
	if f == fitContain {
		return "xMidYMid meet"
	}
	return "xMidYMid slice"
}

type backgroundMode string

const (
	backgroundNone     backgroundMode = "none"
	backgroundColor    backgroundMode = "color"
	backgroundImage    backgroundMode = "image"
	backgroundGradient backgroundMode = "gradient"
)

func parseBackgroundMode(key string) backgroundMode {
	switch m := backgroundMode(normalize(key)); m {
	case backgroundColor, backgroundImage, backgroundGradient:
		return m
	default:
		return backgroundNone
	}
}

type shapeFill string

const (
	fillColor  shapeFill = "color"
	fillImage  shapeFill = "image"
	fillLottie shapeFill = "lottie"
)

func parseShapeFill(key string) shapeFill {
	switch f := shapeFill(normalize(key)); f {
	case fillImage, fillLottie:
		return f
	default:
		return fillColor
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http")
}

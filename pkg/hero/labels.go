package hero

// Translation keys for the fallback strings the renderer emits.
const (
	LabelKeyCTA           = "hero.cta.default"
	LabelKeyMediaAlt      = "hero.media.alt"
	LabelKeyBackgroundAlt = "hero.background.alt"
	LabelKeyShapeAlt      = "hero.shape.alt"
)

// Labels holds the fallback copy used when content leaves a string empty.
type Labels struct {
	CTA           string
	MediaAlt      string
	BackgroundAlt string
	ShapeAlt      string
}

// DefaultLabels returns the built-in English fallbacks.
func DefaultLabels() Labels {
	return Labels{
		CTA:           "Learn more",
		MediaAlt:      "Hero media",
		BackgroundAlt: "Hero background",
		ShapeAlt:      "Decorative hero shape",
	}
}

// Keyed returns the labels indexed by translation key.
func (l Labels) Keyed() map[string]string {
	return map[string]string{
		LabelKeyCTA:           l.CTA,
		LabelKeyMediaAlt:      l.MediaAlt,
		LabelKeyBackgroundAlt: l.BackgroundAlt,
		LabelKeyShapeAlt:      l.ShapeAlt,
	}
}

// LabelsFromKeyed builds Labels from a key → text map. Missing entries keep
// their default.
func LabelsFromKeyed(values map[string]string) Labels {
	return Labels{
		CTA:           values[LabelKeyCTA],
		MediaAlt:      values[LabelKeyMediaAlt],
		BackgroundAlt: values[LabelKeyBackgroundAlt],
		ShapeAlt:      values[LabelKeyShapeAlt],
	}.withDefaults()
}

func (l Labels) withDefaults() Labels {
	def := DefaultLabels()
	if normalize(l.CTA) == "" {
		l.CTA = def.CTA
	}
	if normalize(l.MediaAlt) == "" {
		l.MediaAlt = def.MediaAlt
	}
	if normalize(l.BackgroundAlt) == "" {
		l.BackgroundAlt = def.BackgroundAlt
	}
	if normalize(l.ShapeAlt) == "" {
		l.ShapeAlt = def.ShapeAlt
	}
	return l
}

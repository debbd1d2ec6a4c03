// Package query declares the content projection the hero renderer depends on
// and renders it as GROQ text for the content store.
package query

import (
	"sort"
	"strings"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Spread is the field name rendered as `...`, selecting every attribute of the
// enclosing object.
const Spread = "..."

// Field is one node of a projection. Array fields render as `name[]`,
// dereferenced fields as `name->`.
type Field struct {
	Name     string
	Deref    bool
	Array    bool
	Children []Field
}

// Leaf returns a plain attribute selection.
func Leaf(name string) Field {
	return Field{Name: name}
}

// Object returns a nested projection.
func Object(name string, children ...Field) Field {
	return Field{Name: name, Children: children}
}

// Each returns an array projection applied to every element.
func Each(name string, children ...Field) Field {
	return Field{Name: name, Array: true, Children: children}
}

// Deref returns a reference followed into the referenced document.
func Deref(name string, children ...Field) Field {
	return Field{Name: name, Deref: true, Children: children}
}

func leaves(names ...string) []Field {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		out = append(out, Leaf(n))
	}
	return out
}

// Projection is a conditional projection applied to blocks of one `_type`.
type Projection struct {
	Type   string
	Fields []Field
}

// ImageFields is the shared image projection: the dereferenced asset with its
// placeholder and dimensions, plus the editor hotspot, crop and alt text.
func ImageFields() []Field {
	return []Field{
		Deref("asset",
			Leaf("_id"),
			Leaf("url"),
			Leaf("mimeType"),
			Object("metadata",
				Leaf("lqip"),
				Object("dimensions", leaves("width", "height")...),
			),
		),
		Leaf("hotspot"),
		Leaf("crop"),
		Leaf("alt"),
	}
}

// BodyFields is the Portable Text projection. Link annotations are kept in
// markDefs.
func BodyFields() []Field {
	return []Field{
		Leaf(Spread),
		Each("markDefs", leaves(Spread, "_type", "_key", "href")...),
	}
}

// LottieFields projects a Lottie animation and its playback options.
func LottieFields() []Field {
	fields := leaves("autoplay", "loop", "speed", "ariaLabel")
	return append(fields, Object("file", Deref("asset", leaves("_id", "url")...)))
}

// HeroFlex returns the projection of a hero-flex block.
func HeroFlex() Projection {
	fields := leaves(
		"_type", "_key", "variant", "minHeight", "minHeightCustom",
		"contentSpacing", "paddingStrategy", "textAlign", "invertText",
		"mobileStack", "mediaPosition", "eyebrow", "title",
	)
	fields = append(fields,
		Object("titleStyles", leaves("font", "size", "weight", "tracking")...),
		Leaf("titleBodySpacing"),
		Each("body", BodyFields()...),
		Each("ctas", leaves("_key", "label", "href", "style", "ariaLabel")...),
		Object("media", append(
			leaves("type", "widthMode", "widthValue", "maxWidth", "fit", "align"),
			Object("image", ImageFields()...),
			Object("lottie", LottieFields()...),
		)...),
		Object("background", append(
			leaves("mode", "token", "color", "overlayOpacity"),
			Object("image", ImageFields()...),
			Object("gradient", leaves("angle", "from", "to")...),
		)...),
		Object("shape", append(
			leaves("enabled", "type", "radius", "padding", "shadow", "fill", "color", "token"),
			Object("image", ImageFields()...),
			Object("lottie", LottieFields()...),
		)...),
	)
	return Projection{Type: content.HeroFlexType, Fields: fields}
}

// GROQ renders the conditional projection, e.g. `_type == "hero-flex" => {...}`.
func (p Projection) GROQ() string {
	var b strings.Builder
	writeConditional(&b, p, 0)
	return b.String()
}

func writeConditional(b *strings.Builder, p Projection, depth int) {
	b.WriteString(`_type == "`)
	b.WriteString(p.Type)
	b.WriteString(`" => {`)
	b.WriteString("\n")
	writeFields(b, p.Fields, depth+1)
	indent(b, depth)
	b.WriteString("}")
}

func writeFields(b *strings.Builder, fields []Field, depth int) {
	for i, f := range fields {
		indent(b, depth)
		b.WriteString(f.Name)
		if f.Array {
			b.WriteString("[]")
		}
		if f.Deref {
			b.WriteString("->")
		}
		if len(f.Children) > 0 {
			if !f.Array && !f.Deref {
				b.WriteString(" ")
			}
			b.WriteString("{\n")
			writeFields(b, f.Children, depth+1)
			indent(b, depth)
			b.WriteString("}")
		}
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

// Paths lists the dotted path of every declared field, interior nodes
// included, sorted. Spread selections are reported as `<parent>.*`.
func (p Projection) Paths() []string {
	var out []string
	var walk func(prefix string, fields []Field)
	walk = func(prefix string, fields []Field) {
		for _, f := range fields {
			name := f.Name
			if name == Spread {
				name = "*"
			}
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			out = append(out, path)
			walk(path, f.Children)
		}
	}
	walk("", p.Fields)
	sort.Strings(out)
	return out
}

// Covers reports whether every path is selected by the projection. A path is
// selected when it is declared, or when a declared leaf or spread is one of
// its ancestors: a leaf selects the whole stored value below it.
func (p Projection) Covers(paths ...string) bool {
	return len(p.Missing(paths...)) == 0
}

// Missing returns the paths the projection does not select, in input order.
func (p Projection) Missing(paths ...string) []string {
	declared := make(map[string]bool)
	var walk func(prefix string, fields []Field)
	walk = func(prefix string, fields []Field) {
		for _, f := range fields {
			if f.Name == Spread {
				declared[prefix+".*"] = true
				continue
			}
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			declared[path] = len(f.Children) == 0
			walk(path, f.Children)
		}
	}
	walk("", p.Fields)

	var missing []string
	for _, path := range paths {
		if !selected(declared, path) {
			missing = append(missing, path)
		}
	}
	return missing
}

func selected(declared map[string]bool, path string) bool {
	if _, ok := declared[path]; ok {
		return true
	}
	parts := strings.Split(path, ".")
	for i := len(parts) - 1; i > 0; i-- {
		parent := strings.Join(parts[:i], ".")
		if declared[parent+".*"] {
			return true
		}
		if leaf, ok := declared[parent]; ok && leaf {
			return true
		}
	}
	return false
}

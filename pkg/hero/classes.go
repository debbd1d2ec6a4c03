package hero

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// cn joins class lists, dropping empty entries and repeated tokens while
// keeping first-seen order.
func cn(parts ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(parts)*2)
	for _, part := range parts {
		for _, token := range strings.Fields(part) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}

func class(parts ...string) g.Node {
	value := cn(parts...)
	if value == "" {
		return nil
	}
	return h.Class(value)
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of inline CSS declarations.
type Style []Declaration

// Set replaces an existing property or appends a new one.
func (s Style) Set(property, value string) Style {
	for i := range s {
		if s[i].Property == property {
			s[i].Value = value
			return s
		}
	}
	return append(s, Declaration{Property: property, Value: value})
}

// Merge appends the declarations of other, overriding duplicates.
func (s Style) Merge(other Style) Style {
	for _, d := range other {
		s = s.Set(d.Property, d.Value)
	}
	return s
}

// Get returns the value of a property.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// String renders the declarations in inline style attribute form.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, d := range s {
		if d.Property == "" || d.Value == "" {
			continue
		}
		parts = append(parts, d.Property+":"+d.Value)
	}
	return strings.Join(parts, ";")
}

func (s Style) attr() g.Node {
	value := s.String()
	if value == "" {
		return nil
	}
	return g.Attr("style", value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return formatNumber(v) + "px"
}

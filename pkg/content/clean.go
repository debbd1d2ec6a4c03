package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// CleanString strips invisible format characters (zero-width joiners, BOMs,
// tag characters) and surrounding whitespace. Visual-editing previews encode
// source maps into strings with exactly these characters, so every string read
// from the content store passes through here before it is compared or printed.
func CleanString(value string) string {
	if value == "" {
		return ""
	}
	if strings.IndexFunc(value, isFormatRune) >= 0 {
		cleaned, _, err := transform.String(runes.Remove(runes.In(unicode.Cf)), value)
		if err == nil {
			value = cleaned
		}
	}
	return strings.TrimSpace(value)
}

func isFormatRune(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}

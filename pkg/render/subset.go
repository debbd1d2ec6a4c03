package render

import (
	"strings"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/hero"
)

// BlockSubset selects hero blocks by `_key` and layout variant. Empty lists
// match everything; both filters must match when both are set.
type BlockSubset struct {
	Keys     []string
	Variants []string
}

// Empty reports whether the subset filters nothing.
func (s BlockSubset) Empty() bool {
	return newSubsetMatcher(s).empty()
}

// ApplySubset returns the blocks matching subset, preserving order. An empty
// subset returns blocks unchanged.
func ApplySubset(blocks []content.HeroBlock, subset BlockSubset) []content.HeroBlock {
	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return blocks
	}

	filtered := make([]content.HeroBlock, 0, len(blocks))
	for _, block := range blocks {
		if matcher.matches(block) {
			filtered = append(filtered, block)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

type subsetMatcher struct {
	keys     map[string]struct{}
	variants map[hero.Variant]struct{}
	// filterVariants stays set when every requested variant was unknown, so
	// the subset then matches nothing instead of everything.
	filterVariants bool
}

func newSubsetMatcher(subset BlockSubset) subsetMatcher {
	m := subsetMatcher{keys: normaliseTokens(subset.Keys)}
	for _, v := range subset.Variants {
		if content.CleanString(v) == "" {
			continue
		}
		m.filterVariants = true
		variant, ok := knownVariant(v)
		if !ok {
			continue
		}
		if m.variants == nil {
			m.variants = make(map[hero.Variant]struct{})
		}
		m.variants[variant] = struct{}{}
	}
	return m
}

// knownVariant resolves a filter token without the renderer's split
// fallback.
func knownVariant(token string) (hero.Variant, bool) {
	variant := hero.ParseVariant(token)
	if string(variant) != content.CleanString(token) {
		return "", false
	}
	return variant, true
}

func (m subsetMatcher) empty() bool {
	return len(m.keys) == 0 && !m.filterVariants
}

func (m subsetMatcher) matches(block content.HeroBlock) bool {
	if len(m.keys) > 0 {
		if _, ok := m.keys[normaliseToken(block.Key)]; !ok {
			return false
		}
	}
	if m.filterVariants {
		if _, ok := m.variants[hero.ParseVariant(block.Variant)]; !ok {
			return false
		}
	}
	return true
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(values))
	for _, value := range values {
		token := normaliseToken(value)
		if token == "" {
			continue
		}
		result[token] = struct{}{}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseToken(value string) string {
	return strings.ToLower(content.CleanString(value))
}

// ParseTokenList splits a comma separated flag value into trimmed tokens,
// dropping empties and duplicates.
func ParseTokenList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	var tokens []string
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

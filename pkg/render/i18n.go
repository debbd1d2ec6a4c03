package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-heroflex/pkg/hero"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler returns the string used when key has no
// translation. err is ErrMissingTranslator when no translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// missingTranslationDefault returns the "default" argument when present,
// otherwise the key itself.
func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// HeroLabels localises the hero fallback labels. Each label is looked up by
// its message key; missing translations keep the English default unless
// opts.OnMissing says otherwise.
func HeroLabels(opts RenderOptions) hero.Labels {
	defaults := hero.DefaultLabels()
	if opts.Translator == nil && opts.OnMissing == nil {
		return defaults
	}

	keyed := defaults.Keyed()
	for key, fallback := range keyed {
		keyed[key] = opts.Translate(key, fallback)
	}
	return hero.LabelsFromKeyed(keyed)
}

// Translate resolves key for the configured locale, returning fallback when no
// translation exists and no OnMissing handler overrides it.
func (o RenderOptions) Translate(key, fallback string) string {
	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(o.Locale, key, fallback, o.Translator, onMissing)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	args := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, args, err)
}

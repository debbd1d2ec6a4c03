package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heroflex/pkg/hero"
	"github.com/goliatone/go-heroflex/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestHeroLabels_DefaultsWithoutTranslator(t *testing.T) {
	if diff := cmp.Diff(hero.DefaultLabels(), render.HeroLabels(render.RenderOptions{})); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestHeroLabels_TranslatesAndFallsBack(t *testing.T) {
	labels := render.HeroLabels(render.RenderOptions{
		Locale: "es",
		Translator: stubTranslator{
			hero.LabelKeyCTA:      "Saber más",
			hero.LabelKeyMediaAlt: "   ",
		},
	})

	want := hero.Labels{
		CTA:           "Saber más",
		MediaAlt:      "Hero media",
		BackgroundAlt: "Hero background",
		ShapeAlt:      "Decorative hero shape",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestHeroLabels_OnMissingReceivesContext(t *testing.T) {
	var gotErrs []error
	labels := render.HeroLabels(render.RenderOptions{
		Locale: "fr",
		OnMissing: func(locale, key string, args []any, err error) string {
			gotErrs = append(gotErrs, err)
			if locale != "fr" {
				t.Fatalf("locale = %q", locale)
			}
			defaults, _ := args[0].(map[string]any)
			return "[" + key + ":" + defaults["default"].(string) + "]"
		},
	})

	if labels.CTA != "[hero.cta.default:Learn more]" {
		t.Fatalf("cta = %q", labels.CTA)
	}
	if len(gotErrs) != 4 {
		t.Fatalf("expected four lookups, got %d", len(gotErrs))
	}
	for _, err := range gotErrs {
		if !errors.Is(err, render.ErrMissingTranslator) {
			t.Fatalf("expected ErrMissingTranslator, got %v", err)
		}
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"page.skip": "Saltar"}, render.TemplateI18nConfig{})

	translate, ok := funcs["translate"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("translate helper missing")
	}
	if got := translate("es", "page.skip"); got != "Saltar" {
		t.Fatalf("translate = %q", got)
	}
	if got := translate("es", "page.unknown"); got != "page.unknown" {
		t.Fatalf("missing key should fall back to the key, got %q", got)
	}
	if got := translate("es", "page.title", map[string]any{"default": "Home"}); got != "Home" {
		t.Fatalf("missing key should use the default arg, got %q", got)
	}

	current, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("current_locale helper missing")
	}
	if got := current(map[string]any{"locale": "de"}); got != "de" {
		t.Fatalf("current_locale = %q", got)
	}
	if got := current(map[string]string{"lang": "de"}); got != "" {
		t.Fatalf("unexpected locale %q", got)
	}
}

func TestTemplateI18nFuncs_CustomName(t *testing.T) {
	funcs := render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{FuncName: "t"})
	fn, ok := funcs["t"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("custom helper name not honoured")
	}
	if got := fn(nil, "hero.cta.default"); got != "hero.cta.default" {
		t.Fatalf("nil translator should surface the key, got %q", got)
	}
}

func TestRenderOptions_Translate(t *testing.T) {
	opts := render.RenderOptions{Translator: stubTranslator{"page.title": "Inicio"}}
	if got := opts.Translate("page.title", "Home"); got != "Inicio" {
		t.Fatalf("Translate = %q", got)
	}
	if got := opts.Translate("page.other", "Other"); got != "Other" {
		t.Fatalf("missing key should use the fallback, got %q", got)
	}
	if got := (render.RenderOptions{}).Translate(" ", "Blank"); got != "Blank" {
		t.Fatalf("blank key should use the fallback, got %q", got)
	}
}

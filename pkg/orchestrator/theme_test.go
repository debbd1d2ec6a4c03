package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/orchestrator"
	"github.com/goliatone/go-heroflex/pkg/render"
)

const auroraManifest = `
name: aurora
version: 1.0.0
tokens:
  brand: "#2563eb"
  surface: "#ffffff"
templates:
  page: themes/aurora/page.tmpl
assets:
  prefix: /assets/aurora
  files:
    stylesheet: aurora.css
    logo: https://cdn.test/logo.svg
variants:
  dark:
    tokens:
      surface: "#0f172a"
    assets:
      files:
        stylesheet: aurora-dark.css
`

func auroraSelector(t *testing.T) *orchestrator.ManifestSelector {
	t.Helper()

	manifest, err := orchestrator.ParseManifest([]byte(auroraManifest))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	selector, err := orchestrator.NewManifestSelector("aurora", "", manifest)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	return selector
}

func TestGenerate_ThemeSelection(t *testing.T) {
	orch, capture := captureOrchestrator(t, orchestrator.WithThemeSelector(auroraSelector(t)))

	req := orchestrator.Request{
		Blocks:       []content.HeroBlock{{Key: "a"}},
		ThemeName:    "aurora",
		ThemeVariant: "dark",
	}
	if _, err := orch.Generate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := capture.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config")
	}
	if cfg.Theme != "aurora" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	wantTokens := map[string]string{"brand": "#2563eb", "surface": "#0f172a"}
	if diff := cmp.Diff(wantTokens, cfg.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if cfg.Partials["page"] != "themes/aurora/page.tmpl" {
		t.Fatalf("theme template should override the fallback, got %q", cfg.Partials["page"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/aurora/aurora-dark.css" {
		t.Fatalf("stylesheet url = %q", got)
	}
	if got := cfg.AssetURL("logo"); got != "https://cdn.test/logo.svg" {
		t.Fatalf("absolute asset urls should pass through, got %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve to empty, got %q", got)
	}
}

func TestGenerate_DefaultThemeAndFallbacks(t *testing.T) {
	manifest := &theme.Manifest{Name: "plain", Tokens: map[string]string{"brand": "red"}}
	selector, err := orchestrator.NewManifestSelector("", "", manifest)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	orch, capture := captureOrchestrator(t,
		orchestrator.WithThemeSelector(selector),
		orchestrator.WithDefaultTheme("plain", ""),
		orchestrator.WithThemeFallbacks(map[string]string{"page": "custom.tmpl"}),
	)

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Blocks: []content.HeroBlock{{}}}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	cfg := capture.options.Theme
	if cfg == nil || cfg.Theme != "plain" {
		t.Fatalf("expected default theme, got %+v", cfg)
	}
	if cfg.Partials["page"] != "custom.tmpl" {
		t.Fatalf("expected fallback partial, got %q", cfg.Partials["page"])
	}
}

func TestGenerate_ExplicitThemeConfigWins(t *testing.T) {
	orch, capture := captureOrchestrator(t, orchestrator.WithThemeSelector(auroraSelector(t)))
	preset := &theme.RendererConfig{Theme: "preset"}

	req := orchestrator.Request{
		Blocks:        []content.HeroBlock{{}},
		ThemeName:     "aurora",
		RenderOptions: render.RenderOptions{Theme: preset},
	}
	if _, err := orch.Generate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.options.Theme != preset {
		t.Fatalf("explicit theme config should not be replaced")
	}
}

func TestGenerate_NoThemeRequestedLeavesThemeNil(t *testing.T) {
	orch, capture := captureOrchestrator(t)

	req := orchestrator.Request{Blocks: []content.HeroBlock{{}}}
	if _, err := orch.Generate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.options.Theme != nil {
		t.Fatalf("expected nil theme when none is requested")
	}
}

func TestGenerate_ThemeWithoutSelectorFails(t *testing.T) {
	cases := map[string]struct {
		opts []orchestrator.Option
		req  orchestrator.Request
	}{
		"requested": {req: orchestrator.Request{Blocks: []content.HeroBlock{{}}, ThemeName: "aurora"}},
		"default": {
			opts: []orchestrator.Option{orchestrator.WithDefaultTheme("aurora", "")},
			req:  orchestrator.Request{Blocks: []content.HeroBlock{{}}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			orch, capture := captureOrchestrator(t, tc.opts...)
			_, err := orch.Generate(context.Background(), tc.req)
			if !errors.Is(err, orchestrator.ErrUnknownTheme) {
				t.Fatalf("expected ErrUnknownTheme, got %v", err)
			}
			if capture.blocks != nil {
				t.Fatalf("renderer should not run")
			}
		})
	}
}

func TestGenerate_UnknownThemeFails(t *testing.T) {
	orch, _ := captureOrchestrator(t, orchestrator.WithThemeSelector(auroraSelector(t)))

	cases := []orchestrator.Request{
		{Blocks: []content.HeroBlock{{}}, ThemeName: "nope"},
		{Blocks: []content.HeroBlock{{}}, ThemeName: "aurora", ThemeVariant: "sepia"},
	}
	for _, req := range cases {
		_, err := orch.Generate(context.Background(), req)
		if err == nil || !strings.Contains(err.Error(), "orchestrator: select theme") {
			t.Fatalf("expected selection error for %s/%s, got %v", req.ThemeName, req.ThemeVariant, err)
		}
		if !errors.Is(err, orchestrator.ErrUnknownTheme) {
			t.Fatalf("expected ErrUnknownTheme, got %v", err)
		}
	}
}

func TestManifestSelector_Register(t *testing.T) {
	selector, err := orchestrator.NewManifestSelector("", "")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if err := selector.Register(&theme.Manifest{Name: "b"}); err != nil {
		t.Fatalf("register b: %v", err)
	}
	if err := selector.Register(&theme.Manifest{Name: "a"}); err != nil {
		t.Fatalf("register a: %v", err)
	}
	if err := selector.Register(&theme.Manifest{Name: "a"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := selector.Register(&theme.Manifest{}); err == nil {
		t.Fatalf("expected missing name error")
	}
	if err := selector.Register(nil); err == nil {
		t.Fatalf("expected nil manifest error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, selector.Themes()); diff != "" {
		t.Fatalf("themes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadManifests(t *testing.T) {
	fsys := fstest.MapFS{
		"aurora.yaml":   {Data: []byte(auroraManifest)},
		"mono.json":     {Data: []byte(`{"name":"mono","tokens":{"brand":"#000"}}`)},
		"README.md":     {Data: []byte("# themes")},
		"nested/x.yaml": {Data: []byte("name: nested")},
	}

	manifests, err := orchestrator.LoadManifests(fsys)
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	var names []string
	for _, m := range manifests {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{"aurora", "mono"}, names); diff != "" {
		t.Fatalf("manifest names mismatch (-want +got):\n%s", diff)
	}
	if manifests[0].Variants["dark"].Assets.Files["stylesheet"] != "aurora-dark.css" {
		t.Fatalf("variant assets not decoded: %+v", manifests[0].Variants)
	}
	if manifests[1].Tokens["brand"] != "#000" {
		t.Fatalf("json manifest tokens not decoded: %+v", manifests[1].Tokens)
	}
}

func TestParseManifest_RequiresName(t *testing.T) {
	if _, err := orchestrator.ParseManifest([]byte("tokens:\n  brand: red\n")); err == nil {
		t.Fatalf("expected missing name error")
	}
	if _, err := orchestrator.ParseManifest([]byte("name: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRendererConfig_NilManifest(t *testing.T) {
	cfg := orchestrator.RendererConfig(&theme.Selection{Theme: "bare"}, map[string]string{"page": "p.tmpl"})
	if cfg.Theme != "bare" || cfg.Partials["page"] != "p.tmpl" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if orchestrator.RendererConfig(nil, nil) != nil {
		t.Fatalf("nil selection should yield nil config")
	}
}

package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/render"
)

type namedRenderer string

func (r namedRenderer) Name() string        { return string(r) }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, []content.HeroBlock, render.RenderOptions) ([]byte, error) {
	return []byte(r), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("page"))
	registry.MustRegister(namedRenderer("fragment"))

	if err := registry.Register(namedRenderer("page")); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("nil renderer should fail")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("unnamed renderer should fail")
	}

	if diff := cmp.Diff([]string{"fragment", "page"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("page") || registry.Has("json") {
		t.Fatalf("Has reported wrong membership")
	}

	got, err := registry.Resolve("  ", "fragment")
	if err != nil || got.Name() != "fragment" {
		t.Fatalf("Resolve fallback = %v, %v", got, err)
	}
	if _, err := registry.Resolve("json", "fragment"); err == nil {
		t.Fatalf("unknown renderer should fail")
	}
	if _, err := registry.Resolve("", ""); err == nil {
		t.Fatalf("blank name without fallback should fail")
	}
}

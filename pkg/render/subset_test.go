package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/render"
)

func sampleBlocks() []content.HeroBlock {
	return []content.HeroBlock{
		{Key: "intro", Variant: "fullBleed"},
		{Key: "Pricing", Variant: "card"},
		{Key: "features"},
		{Key: "outro", Variant: "masonry"},
	}
}

func keys(blocks []content.HeroBlock) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Key)
	}
	return out
}

func TestApplySubset(t *testing.T) {
	cases := []struct {
		name   string
		subset render.BlockSubset
		want   []string
	}{
		{name: "empty", subset: render.BlockSubset{}, want: []string{"intro", "Pricing", "features", "outro"}},
		{name: "blank tokens", subset: render.BlockSubset{Keys: []string{" ", ""}}, want: []string{"intro", "Pricing", "features", "outro"}},
		{name: "keys case insensitive", subset: render.BlockSubset{Keys: []string{"pricing", "INTRO"}}, want: []string{"intro", "Pricing"}},
		{name: "split includes defaults", subset: render.BlockSubset{Variants: []string{"split"}}, want: []string{"features", "outro"}},
		{name: "both filters", subset: render.BlockSubset{Keys: []string{"intro", "features"}, Variants: []string{"split"}}, want: []string{"features"}},
		{name: "unknown variant matches nothing", subset: render.BlockSubset{Variants: []string{"bogus"}}, want: []string{}},
		{name: "unknown variant dropped", subset: render.BlockSubset{Variants: []string{"masonry", "card"}}, want: []string{"Pricing"}},
		{name: "blank variants ignored", subset: render.BlockSubset{Variants: []string{" "}}, want: []string{"intro", "Pricing", "features", "outro"}},
		{name: "no match", subset: render.BlockSubset{Keys: []string{"missing"}}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := keys(render.ApplySubset(sampleBlocks(), tc.subset))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockSubset_Empty(t *testing.T) {
	if !(render.BlockSubset{Variants: []string{""}}).Empty() {
		t.Fatalf("blank variants should leave the subset empty")
	}
	if (render.BlockSubset{Variants: []string{"bogus"}}).Empty() {
		t.Fatalf("an unknown variant still filters")
	}
}

func TestParseTokenList(t *testing.T) {
	got := render.ParseTokenList(" intro, ,pricing,intro ")
	if diff := cmp.Diff([]string{"intro", "pricing"}, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if render.ParseTokenList("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}

package heroflex

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, class := range []string{".btn-primary", ".btn-secondary", ".btn-ghost", `[data-animate="fade-in"]`} {
		if !strings.Contains(string(data), class) {
			t.Fatalf("expected stylesheet to define %s", class)
		}
	}
}

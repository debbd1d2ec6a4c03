package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// LoadDocument reads a fixture into a content.Document backed by a file source.
func LoadDocument(t *testing.T, path string) content.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (content.Document, error) {
	if path == "" {
		return content.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return content.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := content.NewDocument(content.SourceFromFile(path), data)
	if err != nil {
		return content.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadHeroBlock decodes the first hero block of a JSON or YAML fixture.
func MustLoadHeroBlock(t *testing.T, path string) content.HeroBlock {
	t.Helper()

	block, err := content.Decode(LoadDocument(t, path))
	if err != nil {
		t.Fatalf("decode hero block: %v", err)
	}
	return block
}

// MustLoadHeroPage decodes every hero block of a fixture.
func MustLoadHeroPage(t *testing.T, path string) []content.HeroBlock {
	t.Helper()

	blocks, err := content.DecodePage(LoadDocument(t, path))
	if err != nil {
		t.Fatalf("decode hero page: %v", err)
	}
	return blocks
}

// RenderNode serialises a node, returning "" for nil.
func RenderNode(t *testing.T, node g.Node) string {
	t.Helper()

	if node == nil {
		return ""
	}
	var sb strings.Builder
	if err := node.Render(&sb); err != nil {
		t.Fatalf("render node: %v", err)
	}
	return sb.String()
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Float returns a pointer to v, for optional numeric content fields.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v, for optional boolean content fields.
func Bool(v bool) *bool {
	return &v
}

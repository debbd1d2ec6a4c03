package render

import (
	"context"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Renderer converts hero blocks into a byte representation (an HTML fragment,
// a full document, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, blocks []content.HeroBlock, options RenderOptions) ([]byte, error)
}

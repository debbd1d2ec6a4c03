// Package imageurl builds CDN URLs for content-store image references. The
// hero renderer never composes image URLs itself; it asks a Builder.
package imageurl

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Fit mirrors the CDN fit modes.
type Fit string

const (
	FitMax  Fit = "max"
	FitCrop Fit = "crop"
	FitClip Fit = "clip"
	FitFill Fit = "fill"
	FitMin  Fit = "min"
)

// Params describes the requested rendition. Zero values are omitted.
type Params struct {
	Width   int
	Height  int
	Quality int
	Fit     Fit
}

// Builder turns an image reference into a fully qualified URL. An empty string
// means the reference cannot be resolved.
type Builder interface {
	URL(img *content.Image, params Params) string
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(img *content.Image, params Params) string

// URL implements Builder.
func (f BuilderFunc) URL(img *content.Image, params Params) string {
	return f(img, params)
}

const defaultBaseURL = "https://cdn.sanity.io"

// assetIDPattern matches `image-<hash>-<width>x<height>-<format>`.
var assetIDPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+)x(\d+)-([a-z0-9]+)$`)

// Option configures a CDN builder.
type Option func(*CDN)

// WithBaseURL overrides the CDN origin, e.g. for a custom image domain.
func WithBaseURL(base string) Option {
	return func(c *CDN) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithAutoFormat toggles `auto=format` so the CDN can negotiate WebP/AVIF.
func WithAutoFormat(enabled bool) Option {
	return func(c *CDN) {
		c.autoFormat = enabled
	}
}

// CDN builds image URLs for a project/dataset pair. When the asset id cannot be
// parsed (or no project is configured) the asset's own URL is used as base.
type CDN struct {
	projectID  string
	dataset    string
	baseURL    string
	autoFormat bool
}

var _ Builder = (*CDN)(nil)

// New constructs a CDN builder.
func New(projectID, dataset string, options ...Option) *CDN {
	c := &CDN{
		projectID:  strings.TrimSpace(projectID),
		dataset:    strings.TrimSpace(dataset),
		baseURL:    defaultBaseURL,
		autoFormat: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Asset is the parsed form of an image asset id.
type Asset struct {
	Hash   string
	Width  int
	Height int
	Format string
}

// ParseAssetID splits an image asset id into its parts.
func ParseAssetID(id string) (Asset, bool) {
	m := assetIDPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return Asset{}, false
	}
	w, _ := strconv.Atoi(m[2])
	h, _ := strconv.Atoi(m[3])
	return Asset{Hash: m[1], Width: w, Height: h, Format: m[4]}, true
}

// URL implements Builder.
func (c *CDN) URL(img *content.Image, params Params) string {
	if img == nil || img.Asset == nil {
		return ""
	}

	asset, parsed := ParseAssetID(img.AssetID())
	var base string
	switch {
	case parsed && c.projectID != "" && c.dataset != "":
		base = fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s",
			c.baseURL, url.PathEscape(c.projectID), url.PathEscape(c.dataset),
			asset.Hash, asset.Width, asset.Height, asset.Format)
	case content.CleanString(img.Asset.URL) != "":
		base = content.CleanString(img.Asset.URL)
	default:
		return ""
	}

	width, height := float64(asset.Width), float64(asset.Height)
	if !parsed {
		width, height = img.Dimensions()
	}

	query := c.query(img, params, width, height)
	if len(query) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + query.Encode()
}

func (c *CDN) query(img *content.Image, params Params, assetWidth, assetHeight float64) url.Values {
	q := url.Values{}
	if rect := cropRect(img.Crop, assetWidth, assetHeight); rect != "" {
		q.Set("rect", rect)
	}
	if params.Width > 0 {
		q.Set("w", strconv.Itoa(params.Width))
	}
	if params.Height > 0 {
		q.Set("h", strconv.Itoa(params.Height))
	}
	if params.Quality > 0 {
		q.Set("q", strconv.Itoa(params.Quality))
	}
	if params.Fit != "" {
		q.Set("fit", string(params.Fit))
	}
	if params.Fit == FitCrop && img.Hotspot != nil && (img.Hotspot.X > 0 || img.Hotspot.Y > 0) {
		q.Set("crop", "focalpoint")
		q.Set("fp-x", formatFraction(img.Hotspot.X))
		q.Set("fp-y", formatFraction(img.Hotspot.Y))
	}
	if c.autoFormat {
		q.Set("auto", "format")
	}
	return q
}

// cropRect converts fractional edge crops into the CDN `rect=x,y,w,h` form.
func cropRect(crop *content.Crop, width, height float64) string {
	if crop.IsZero() || width <= 0 || height <= 0 {
		return ""
	}
	left := math.Round(crop.Left * width)
	top := math.Round(crop.Top * height)
	w := math.Round((1 - crop.Left - crop.Right) * width)
	h := math.Round((1 - crop.Top - crop.Bottom) * height)
	if w <= 0 || h <= 0 {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", int(left), int(top), int(w), int(h))
}

func formatFraction(v float64) string {
	v = math.Max(0, math.Min(v, 1))
	return strconv.FormatFloat(v, 'f', 3, 64)
}

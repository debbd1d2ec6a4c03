package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Transformer mutates a hero block after decoding and before rendering.
type Transformer interface {
	Transform(ctx context.Context, block *content.HeroBlock) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, block *content.HeroBlock) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, block *content.HeroBlock) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, block)
}

// PresetTransformer applies declarative layout presets loaded from YAML or
// JSON. Defaults fill keys the editor left empty; block patches keyed by
// `_key` override whatever is set:
//
//	defaults:
//	  variant: split
//	  paddingStrategy: compact
//	blocks:
//	  hero-1:
//	    variant: card
//	    title: Launch week
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Defaults presetPatch            `yaml:"defaults"`
	Blocks   map[string]presetPatch `yaml:"blocks"`
}

type presetPatch struct {
	Variant          string               `yaml:"variant"`
	MinHeight        string               `yaml:"minHeight"`
	MinHeightCustom  float64              `yaml:"minHeightCustom"`
	ContentSpacing   string               `yaml:"contentSpacing"`
	PaddingStrategy  string               `yaml:"paddingStrategy"`
	TextAlign        string               `yaml:"textAlign"`
	InvertText       *bool                `yaml:"invertText"`
	MobileStack      string               `yaml:"mobileStack"`
	MediaPosition    string               `yaml:"mediaPosition"`
	Eyebrow          string               `yaml:"eyebrow"`
	Title            string               `yaml:"title"`
	TitleBodySpacing string               `yaml:"titleBodySpacing"`
	TitleStyles      *content.TitleStyles `yaml:"titleStyles"`
}

// NewPresetTransformer parses a preset document.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the defaults and then the patch matching the block key.
func (t *PresetTransformer) Transform(ctx context.Context, block *content.HeroBlock) error {
	if block == nil {
		return errors.New("preset transformer: hero block is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	applyDefaults(block, t.document.Defaults)
	if patch, ok := t.document.Blocks[block.Key]; ok && block.Key != "" {
		applyPatch(block, patch)
	}
	return nil
}

func applyDefaults(block *content.HeroBlock, patch presetPatch) {
	fill := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	fill(&block.Variant, patch.Variant)
	fill(&block.MinHeight, patch.MinHeight)
	fill(&block.ContentSpacing, patch.ContentSpacing)
	fill(&block.PaddingStrategy, patch.PaddingStrategy)
	fill(&block.TextAlign, patch.TextAlign)
	fill(&block.MobileStack, patch.MobileStack)
	fill(&block.MediaPosition, patch.MediaPosition)
	fill(&block.Eyebrow, patch.Eyebrow)
	fill(&block.Title, patch.Title)
	fill(&block.TitleBodySpacing, patch.TitleBodySpacing)
	if block.MinHeightCustom == 0 {
		block.MinHeightCustom = patch.MinHeightCustom
	}
	if block.TitleStyles == nil && patch.TitleStyles != nil {
		styles := *patch.TitleStyles
		block.TitleStyles = &styles
	}
}

func applyPatch(block *content.HeroBlock, patch presetPatch) {
	set := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	set(&block.Variant, patch.Variant)
	set(&block.MinHeight, patch.MinHeight)
	set(&block.ContentSpacing, patch.ContentSpacing)
	set(&block.PaddingStrategy, patch.PaddingStrategy)
	set(&block.TextAlign, patch.TextAlign)
	set(&block.MobileStack, patch.MobileStack)
	set(&block.MediaPosition, patch.MediaPosition)
	set(&block.Eyebrow, patch.Eyebrow)
	set(&block.Title, patch.Title)
	set(&block.TitleBodySpacing, patch.TitleBodySpacing)
	if patch.MinHeightCustom != 0 {
		block.MinHeightCustom = patch.MinHeightCustom
	}
	if patch.InvertText != nil {
		block.InvertText = *patch.InvertText
	}
	if patch.TitleStyles != nil {
		styles := *patch.TitleStyles
		block.TitleStyles = &styles
	}
}

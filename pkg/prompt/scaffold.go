package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-heroflex/pkg/content"
	"github.com/goliatone/go-heroflex/pkg/hero"
)

// MaxCTAs caps how many call-to-action buttons the scaffold asks for.
const MaxCTAs = 3

var (
	variantOptions    = []string{string(hero.VariantSplit), string(hero.VariantFullBleed), string(hero.VariantCard)}
	ctaStyleOptions   = []string{"primary", "secondary", "ghost"}
	mediaOptions      = []string{"none", "image", "lottie"}
	backgroundOptions = []string{"none", "color", "gradient", "image"}
	alignOptions      = []string{"left", "center", "right"}
	minHeightOptions  = []string{"80vh", "60vh", "100vh"}
)

// Scaffold walks the user through the main hero settings and returns the
// resulting block. Anything not asked keeps the renderer defaults.
func Scaffold(ctx context.Context, driver Driver) (content.HeroBlock, error) {
	if driver == nil {
		return content.HeroBlock{}, errors.New("prompt: driver is nil")
	}

	block := content.HeroBlock{Type: content.HeroFlexType, Key: "hero"}
	s := &scaffolder{driver: driver}

	block.Variant = s.choose(ctx, "Layout variant", variantOptions, 0)
	block.Eyebrow = s.input(ctx, InputConfig{Message: "Eyebrow (optional)"})
	block.Title = s.input(ctx, InputConfig{Message: "Title", Validator: required("title")})
	block.Body = paragraphs(s.textArea(ctx, TextAreaConfig{
		Message: "Body copy (optional)",
		Help:    "Separate paragraphs with a blank line.",
	}))

	for len(block.CTAs) < MaxCTAs {
		message := "Add a call to action?"
		if len(block.CTAs) > 0 {
			message = "Add another call to action?"
		}
		if !s.confirm(ctx, ConfirmConfig{Message: message, Default: len(block.CTAs) == 0}) {
			break
		}
		n := len(block.CTAs) + 1
		block.CTAs = append(block.CTAs, content.CTA{
			Key:   fmt.Sprintf("cta-%d", n),
			Label: s.input(ctx, InputConfig{Message: "Button label", Validator: required("label")}),
			Href:  s.input(ctx, InputConfig{Message: "Button link", Default: "/", Validator: link}),
			Style: s.choose(ctx, "Button style", ctaStyleOptions, 0),
		})
	}

	switch s.choose(ctx, "Media", mediaOptions, 0) {
	case "image":
		block.Media = &content.Media{
			Type:  "image",
			Image: externalImage("media", s.input(ctx, InputConfig{Message: "Image URL", Validator: absoluteURL})),
		}
		block.Media.Image.Alt = s.input(ctx, InputConfig{Message: "Alt text"})
	case "lottie":
		src := s.input(ctx, InputConfig{Message: "Lottie JSON URL", Validator: absoluteURL})
		block.Media = &content.Media{
			Type:   "lottie",
			Lottie: &content.Lottie{File: &content.FileRef{Asset: &content.FileAsset{ID: "file-media", URL: src}}},
		}
	}

	switch s.choose(ctx, "Background", backgroundOptions, 0) {
	case "color":
		bg := &content.Background{Mode: "color"}
		bg.Token = s.input(ctx, InputConfig{Message: "Theme color token (optional)"})
		if strings.TrimSpace(bg.Token) == "" {
			bg.Color = s.input(ctx, InputConfig{Message: "CSS color", Validator: required("color")})
		}
		block.Background = bg
	case "gradient":
		block.Background = &content.Background{
			Mode: "gradient",
			Gradient: &content.Gradient{
				From: s.input(ctx, InputConfig{Message: "Gradient from", Default: hero.DefaultGradientFrom}),
				To:   s.input(ctx, InputConfig{Message: "Gradient to", Default: hero.DefaultGradientTo}),
			},
		}
	case "image":
		bg := &content.Background{
			Mode:  "image",
			Image: externalImage("background", s.input(ctx, InputConfig{Message: "Background image URL", Validator: absoluteURL})),
		}
		raw := s.input(ctx, InputConfig{Message: "Overlay opacity (0-100)", Default: "40", Validator: percentage})
		bg.OverlayOpacity, _ = strconv.ParseFloat(strings.TrimSpace(raw), 64)
		block.Background = bg
		block.InvertText = true
	}

	block.TextAlign = s.choose(ctx, "Text alignment", alignOptions, 0)
	block.MinHeight = s.choose(ctx, "Minimum height", minHeightOptions, 0)

	if s.err != nil {
		return content.HeroBlock{}, s.err
	}
	return block, nil
}

// MarshalYAML renders the block as a YAML document ready for a content
// directory.
func MarshalYAML(block content.HeroBlock) ([]byte, error) {
	data, err := yaml.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("prompt: encode yaml: %w", err)
	}
	return data, nil
}

// scaffolder threads the first driver error through the flow so each step
// stays a single expression.
type scaffolder struct {
	driver Driver
	err    error
}

func (s *scaffolder) input(ctx context.Context, cfg InputConfig) string {
	if s.err != nil {
		return ""
	}
	value, err := s.driver.Input(ctx, cfg)
	if err != nil {
		s.err = err
		return ""
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			s.err = fmt.Errorf("prompt: %s: %w", strings.ToLower(cfg.Message), err)
			return ""
		}
	}
	return value
}

func (s *scaffolder) textArea(ctx context.Context, cfg TextAreaConfig) string {
	if s.err != nil {
		return ""
	}
	value, err := s.driver.TextArea(ctx, cfg)
	if err != nil {
		s.err = err
		return ""
	}
	return value
}

func (s *scaffolder) confirm(ctx context.Context, cfg ConfirmConfig) bool {
	if s.err != nil {
		return false
	}
	ok, err := s.driver.Confirm(ctx, cfg)
	if err != nil {
		s.err = err
		return false
	}
	return ok
}

func (s *scaffolder) choose(ctx context.Context, message string, options []string, def int) string {
	if s.err != nil {
		return ""
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def})
	if err != nil {
		s.err = err
		return ""
	}
	if idx < 0 || idx >= len(options) {
		idx = def
	}
	return options[idx]
}

func paragraphs(text string) []content.Block {
	var blocks []content.Block
	for _, chunk := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		chunk = strings.Join(strings.Fields(chunk), " ")
		if chunk == "" {
			continue
		}
		key := fmt.Sprintf("body-%d", len(blocks)+1)
		blocks = append(blocks, content.Block{
			Type:     "block",
			Key:      key,
			Style:    "normal",
			Children: []content.Span{{Type: "span", Key: key + "-span", Text: chunk}},
		})
	}
	return blocks
}

// externalImage wraps a plain URL as an image reference. The asset id is not
// a CDN id so URL builders fall back to the raw URL.
func externalImage(name, src string) *content.Image {
	return &content.Image{Asset: &content.ImageAsset{ID: "external-" + name, URL: src}}
}

func required(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func link(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("link is required")
	}
	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, "#") || strings.HasPrefix(value, "mailto:") {
		return nil
	}
	return absoluteURL(value)
}

func absoluteURL(value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", value)
	}
	return nil
}

func percentage(value string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	if f < 0 || f > 100 {
		return fmt.Errorf("%v is outside 0-100", f)
	}
	return nil
}

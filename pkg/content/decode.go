package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoHeroBlock is returned when a document holds no hero-flex block.
var ErrNoHeroBlock = errors.New("content: no hero-flex block found")

// pageKeys are the wrapper fields searched for block arrays, in order. "result"
// is the envelope used by the content store's query API.
var pageKeys = []string{"result", "blocks", "content", "sections"}

// Decode parses the document and returns its first hero block. A document may
// hold a bare block, an array of blocks, or a page object wrapping blocks.
func Decode(doc Document) (HeroBlock, error) {
	blocks, err := DecodePage(doc)
	if err != nil {
		return HeroBlock{}, err
	}
	return blocks[0], nil
}

// DecodePage parses the document and returns every hero block it contains, in
// document order. Blocks of other types are skipped.
func DecodePage(doc Document) ([]HeroBlock, error) {
	payload, err := parsePayload(doc)
	if err != nil {
		return nil, err
	}

	var out []HeroBlock
	collectBlocks(payload, &out, 0)
	if len(out) == 0 {
		return nil, ErrNoHeroBlock
	}
	return out, nil
}

// DecodeBytes is a convenience wrapper for in-memory payloads.
func DecodeBytes(name string, data []byte) (HeroBlock, error) {
	doc, err := NewDocument(SourceFromBytes(name, data), data)
	if err != nil {
		return HeroBlock{}, err
	}
	return Decode(doc)
}

func parsePayload(doc Document) (any, error) {
	if len(doc.raw) == 0 {
		return nil, ErrEmptyDocument
	}

	var payload any
	switch doc.Format() {
	case FormatJSON:
		if err := json.Unmarshal(doc.raw, &payload); err != nil {
			return nil, fmt.Errorf("content: decode json %s: %w", doc.Location(), err)
		}
	default:
		if err := yaml.Unmarshal(doc.raw, &payload); err != nil {
			return nil, fmt.Errorf("content: decode yaml %s: %w", doc.Location(), err)
		}
	}
	return payload, nil
}

func collectBlocks(value any, out *[]HeroBlock, depth int) {
	if depth > 4 {
		return
	}
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if m := asMap(item); m != nil && isHeroBlock(m) {
				*out = append(*out, DecodeBlock(m))
			}
		}
	case map[string]any:
		if isHeroBlock(v) && !hasPageKey(v) {
			*out = append(*out, DecodeBlock(v))
			return
		}
		for _, key := range pageKeys {
			if nested, ok := v[key]; ok {
				collectBlocks(nested, out, depth+1)
			}
		}
	}
}

func isHeroBlock(m map[string]any) bool {
	typ, ok := m["_type"]
	if !ok {
		return true
	}
	s, ok := typ.(string)
	return ok && CleanString(s) == HeroFlexType
}

func hasPageKey(m map[string]any) bool {
	if _, ok := m["_type"]; ok {
		return false
	}
	for _, key := range pageKeys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

// DecodeBlock maps a generic object onto a HeroBlock. Fields that are missing
// or carry the wrong type are left at their zero value rather than failing.
func DecodeBlock(m map[string]any) HeroBlock {
	block := HeroBlock{
		Type:             str(m, "_type"),
		Key:              str(m, "_key"),
		Variant:          key(m, "variant"),
		MinHeight:        key(m, "minHeight"),
		ContentSpacing:   key(m, "contentSpacing"),
		PaddingStrategy:  key(m, "paddingStrategy"),
		TextAlign:        key(m, "textAlign"),
		InvertText:       boolean(m, "invertText"),
		MobileStack:      key(m, "mobileStack"),
		MediaPosition:    key(m, "mediaPosition"),
		Eyebrow:          str(m, "eyebrow"),
		Title:            str(m, "title"),
		TitleBodySpacing: key(m, "titleBodySpacing"),
	}
	if v, ok := number(m, "minHeightCustom"); ok {
		block.MinHeightCustom = v
	}
	if styles := object(m, "titleStyles"); styles != nil {
		block.TitleStyles = &TitleStyles{
			Font:     key(styles, "font"),
			Size:     key(styles, "size"),
			Weight:   key(styles, "weight"),
			Tracking: key(styles, "tracking"),
		}
	}
	for _, item := range list(m, "body") {
		if raw := asMap(item); raw != nil {
			block.Body = append(block.Body, decodeTextBlock(raw))
		}
	}
	for _, item := range list(m, "ctas") {
		if raw := asMap(item); raw != nil {
			block.CTAs = append(block.CTAs, CTA{
				Key:       str(raw, "_key"),
				Label:     str(raw, "label"),
				Href:      str(raw, "href"),
				Style:     key(raw, "style"),
				AriaLabel: str(raw, "ariaLabel"),
			})
		}
	}
	block.Media = decodeMedia(object(m, "media"))
	block.Background = decodeBackground(object(m, "background"))
	block.Shape = decodeShape(object(m, "shape"))
	return block
}

func decodeMedia(m map[string]any) *Media {
	if m == nil {
		return nil
	}
	media := &Media{
		Type:      key(m, "type"),
		Image:     decodeImage(object(m, "image")),
		Lottie:    decodeLottie(object(m, "lottie")),
		WidthMode: key(m, "widthMode"),
		Fit:       key(m, "fit"),
		Align:     key(m, "align"),
	}
	if v, ok := number(m, "widthValue"); ok {
		media.WidthValue = &v
	}
	if v, ok := number(m, "maxWidth"); ok {
		media.MaxWidth = v
	}
	return media
}

func decodeBackground(m map[string]any) *Background {
	if m == nil {
		return nil
	}
	bg := &Background{
		Mode:  key(m, "mode"),
		Token: str(m, "token"),
		Color: str(m, "color"),
		Image: decodeImage(object(m, "image")),
	}
	if v, ok := number(m, "overlayOpacity"); ok {
		bg.OverlayOpacity = v
	}
	if g := object(m, "gradient"); g != nil {
		bg.Gradient = &Gradient{
			From: str(g, "from"),
			To:   str(g, "to"),
		}
		if v, ok := number(g, "angle"); ok {
			bg.Gradient.Angle = &v
		}
	}
	return bg
}

func decodeShape(m map[string]any) *Shape {
	if m == nil {
		return nil
	}
	shape := &Shape{
		Enabled: boolean(m, "enabled"),
		Type:    key(m, "type"),
		Shadow:  key(m, "shadow"),
		Fill:    key(m, "fill"),
		Color:   str(m, "color"),
		Token:   str(m, "token"),
		Image:   decodeImage(object(m, "image")),
		Lottie:  decodeLottie(object(m, "lottie")),
	}
	if v, ok := number(m, "radius"); ok {
		shape.Radius = &v
	}
	if v, ok := number(m, "padding"); ok {
		shape.Padding = v
	}
	return shape
}

func decodeImage(m map[string]any) *Image {
	if m == nil {
		return nil
	}
	img := &Image{Alt: str(m, "alt")}
	if asset := object(m, "asset"); asset != nil {
		img.Asset = &ImageAsset{
			ID:       str(asset, "_id"),
			URL:      str(asset, "url"),
			MimeType: str(asset, "mimeType"),
		}
		if meta := object(asset, "metadata"); meta != nil {
			img.Asset.Metadata = &ImageMetadata{LQIP: str(meta, "lqip")}
			if dims := object(meta, "dimensions"); dims != nil {
				w, _ := number(dims, "width")
				h, _ := number(dims, "height")
				img.Asset.Metadata.Dimensions = &Dimensions{Width: w, Height: h}
			}
		}
	}
	if hs := object(m, "hotspot"); hs != nil {
		img.Hotspot = &Hotspot{}
		img.Hotspot.X, _ = number(hs, "x")
		img.Hotspot.Y, _ = number(hs, "y")
		img.Hotspot.Width, _ = number(hs, "width")
		img.Hotspot.Height, _ = number(hs, "height")
	}
	if c := object(m, "crop"); c != nil {
		img.Crop = &Crop{}
		img.Crop.Top, _ = number(c, "top")
		img.Crop.Bottom, _ = number(c, "bottom")
		img.Crop.Left, _ = number(c, "left")
		img.Crop.Right, _ = number(c, "right")
	}
	return img
}

func decodeLottie(m map[string]any) *Lottie {
	if m == nil {
		return nil
	}
	lottie := &Lottie{AriaLabel: str(m, "ariaLabel")}
	if file := object(m, "file"); file != nil {
		lottie.File = &FileRef{}
		if asset := object(file, "asset"); asset != nil {
			lottie.File.Asset = &FileAsset{ID: str(asset, "_id"), URL: str(asset, "url")}
		}
	}
	if v, ok := m["autoplay"].(bool); ok {
		lottie.Autoplay = &v
	}
	if v, ok := m["loop"].(bool); ok {
		lottie.Loop = &v
	}
	if v, ok := number(m, "speed"); ok {
		lottie.Speed = &v
	}
	return lottie
}

func decodeTextBlock(m map[string]any) Block {
	block := Block{
		Type:     str(m, "_type"),
		Key:      str(m, "_key"),
		Style:    str(m, "style"),
		ListItem: str(m, "listItem"),
	}
	if v, ok := number(m, "level"); ok && v > 0 {
		block.Level = int(v)
	}
	for _, item := range list(m, "children") {
		raw := asMap(item)
		if raw == nil {
			continue
		}
		span := Span{Type: str(raw, "_type"), Key: str(raw, "_key"), Text: str(raw, "text")}
		for _, mark := range list(raw, "marks") {
			if s, ok := mark.(string); ok && s != "" {
				span.Marks = append(span.Marks, s)
			}
		}
		block.Children = append(block.Children, span)
	}
	for _, item := range list(m, "markDefs") {
		raw := asMap(item)
		if raw == nil {
			continue
		}
		block.MarkDefs = append(block.MarkDefs, MarkDef{
			Type: str(raw, "_type"),
			Key:  str(raw, "_key"),
			Href: str(raw, "href"),
		})
	}
	if block.Type != "" && block.Type != "block" {
		block.Fields = m
	}
	return block
}

func asMap(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if s, ok := k.(string); ok {
				out[s] = item
			}
		}
		return out
	}
	return nil
}

func object(m map[string]any, name string) map[string]any {
	if m == nil {
		return nil
	}
	return asMap(m[name])
}

func list(m map[string]any, name string) []any {
	if m == nil {
		return nil
	}
	items, _ := m[name].([]any)
	return items
}

func str(m map[string]any, name string) string {
	if m == nil {
		return ""
	}
	s, _ := m[name].(string)
	return s
}

// key reads an enumerated option. YAML turns `weight: 700` into an integer, so
// whole numbers are accepted and formatted back into their key form.
func key(m map[string]any, name string) string {
	if m == nil {
		return ""
	}
	switch v := m[name].(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func number(m map[string]any, name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[name].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func boolean(m map[string]any, name string) bool {
	if m == nil {
		return false
	}
	v, _ := m[name].(bool)
	return v
}

// String gives a short identification of the block for logs.
func (b HeroBlock) String() string {
	var parts []string
	if b.Key != "" {
		parts = append(parts, "key="+b.Key)
	}
	if b.Variant != "" {
		parts = append(parts, "variant="+b.Variant)
	}
	if t := CleanString(b.Title); t != "" {
		parts = append(parts, fmt.Sprintf("title=%q", t))
	}
	return "hero-flex{" + strings.Join(parts, " ") + "}"
}

// Package richtext renders Portable Text blocks into sanitized HTML nodes.
package richtext

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-heroflex/pkg/content"
)

// Renderer turns an ordered slice of rich text blocks into a node. A nil node
// means nothing renderable was found.
type Renderer interface {
	Render(blocks []content.Block) g.Node
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(blocks []content.Block) g.Node

// Render implements Renderer.
func (f RendererFunc) Render(blocks []content.Block) g.Node {
	return f(blocks)
}

// BlockFunc renders a custom (non "block") Portable Text type.
type BlockFunc func(block content.Block) g.Node

// Option customises the Portable renderer.
type Option func(*Portable)

// WithBlockType registers a renderer for a custom block `_type`. Unregistered
// custom types are skipped.
func WithBlockType(typ string, fn BlockFunc) Option {
	return func(p *Portable) {
		if typ == "" || fn == nil {
			return
		}
		p.custom[typ] = fn
	}
}

// WithoutSanitizer disables the HTML policy. Only use it with trusted content.
func WithoutSanitizer() Option {
	return func(p *Portable) {
		p.sanitize = false
	}
}

// Portable renders Portable Text blocks.
type Portable struct {
	custom   map[string]BlockFunc
	sanitize bool
}

var _ Renderer = (*Portable)(nil)

// New constructs a Portable renderer.
func New(opts ...Option) *Portable {
	p := &Portable{
		custom:   make(map[string]BlockFunc),
		sanitize: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Render implements Renderer. Output is serialised once and passed through
// the sanitizer before being returned as raw markup.
func (p *Portable) Render(blocks []content.Block) g.Node {
	nodes := p.nodes(blocks)
	if len(nodes) == 0 {
		return nil
	}

	var buf strings.Builder
	if err := g.Group(nodes).Render(&buf); err != nil {
		return nil
	}
	markup := buf.String()
	if p.sanitize {
		markup = sanitizeMarkup(markup)
	}
	if markup == "" {
		return nil
	}
	return g.Raw(markup)
}

func (p *Portable) nodes(blocks []content.Block) []g.Node {
	var out []g.Node
	for i := 0; i < len(blocks); {
		block := blocks[i]
		if block.Type != "" && block.Type != "block" {
			if fn, ok := p.custom[block.Type]; ok {
				if node := fn(block); node != nil {
					out = append(out, node)
				}
			}
			i++
			continue
		}
		if block.ListItem != "" {
			end := i + 1
			for end < len(blocks) && isListItem(blocks[end]) {
				end++
			}
			out = append(out, buildList(blocks[i:end], levelOf(block)))
			i = end
			continue
		}
		if node := renderBlock(block); node != nil {
			out = append(out, node)
		}
		i++
	}
	return out
}

func isListItem(b content.Block) bool {
	return (b.Type == "" || b.Type == "block") && b.ListItem != ""
}

func levelOf(b content.Block) int {
	if b.Level < 1 {
		return 1
	}
	return b.Level
}

// buildList groups consecutive items at the given level, nesting deeper levels
// under the preceding item and splitting when the list kind changes.
func buildList(items []content.Block, level int) g.Node {
	var lists []g.Node
	var current []g.Node
	kind := ""

	flush := func() {
		if len(current) == 0 {
			return
		}
		if kind == "number" {
			lists = append(lists, h.Ol(current...))
		} else {
			lists = append(lists, h.Ul(current...))
		}
		current = nil
	}

	for i := 0; i < len(items); {
		item := items[i]
		if levelOf(item) > level {
			// orphan deeper item with no parent at this level
			end := i + 1
			for end < len(items) && levelOf(items[end]) > level {
				end++
			}
			current = append(current, h.Li(buildList(items[i:end], level+1)))
			i = end
			continue
		}
		if item.ListItem != kind {
			flush()
			kind = item.ListItem
		}
		children := spans(item)
		end := i + 1
		for end < len(items) && levelOf(items[end]) > level {
			end++
		}
		if end > i+1 {
			children = append(children, buildList(items[i+1:end], level+1))
		}
		current = append(current, h.Li(children...))
		i = end
	}
	flush()

	if len(lists) == 1 {
		return lists[0]
	}
	return g.Group(lists)
}

func renderBlock(block content.Block) g.Node {
	children := spans(block)
	if len(children) == 0 {
		return nil
	}
	switch block.Style {
	case "h1":
		return h.H1(children...)
	case "h2":
		return h.H2(children...)
	case "h3":
		return h.H3(children...)
	case "h4":
		return h.H4(children...)
	case "blockquote":
		return h.BlockQuote(children...)
	default:
		return h.P(children...)
	}
}

func spans(block content.Block) []g.Node {
	defs := make(map[string]content.MarkDef, len(block.MarkDefs))
	for _, def := range block.MarkDefs {
		defs[def.Key] = def
	}

	var out []g.Node
	for _, span := range block.Children {
		if span.Type != "" && span.Type != "span" {
			continue
		}
		if span.Text == "" {
			continue
		}
		node := textWithBreaks(span.Text)
		for i := len(span.Marks) - 1; i >= 0; i-- {
			node = applyMark(span.Marks[i], defs, node)
		}
		out = append(out, node)
	}
	return out
}

func textWithBreaks(text string) g.Node {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return g.Text(text)
	}
	nodes := make([]g.Node, 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		if line != "" {
			nodes = append(nodes, g.Text(line))
		}
	}
	return g.Group(nodes)
}

func applyMark(mark string, defs map[string]content.MarkDef, node g.Node) g.Node {
	switch mark {
	case "strong":
		return h.Strong(node)
	case "em":
		return h.Em(node)
	case "code":
		return h.Code(node)
	case "underline":
		return g.El("u", node)
	case "strike-through":
		return g.El("s", node)
	}
	def, ok := defs[mark]
	if !ok {
		return node
	}
	if def.Type == "link" {
		href := content.CleanString(def.Href)
		if href == "" {
			return node
		}
		return h.A(h.Href(href), node)
	}
	return node
}

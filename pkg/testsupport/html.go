package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matcher selects element nodes.
type Matcher func(n *html.Node) bool

// ParseFragment parses markup as body content and returns a synthetic root
// holding the parsed nodes.
func ParseFragment(t *testing.T, markup string) *html.Node {
	t.Helper()

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}

// ParseDocument parses a full HTML document.
func ParseDocument(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// FindAll returns every element below root, in document order, that matches
// all the given matchers.
func FindAll(root *html.Node, matchers ...Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && matchAll(n, matchers) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	return out
}

// Find returns the first match or nil.
func Find(root *html.Node, matchers ...Matcher) *html.Node {
	if found := FindAll(root, matchers...); len(found) > 0 {
		return found[0]
	}
	return nil
}

func matchAll(n *html.Node, matchers []Matcher) bool {
	for _, m := range matchers {
		if !m(n) {
			return false
		}
	}
	return true
}

// ByTag matches elements by tag name.
func ByTag(tag string) Matcher {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// ByClass matches elements carrying every given class token.
func ByClass(classes ...string) Matcher {
	return func(n *html.Node) bool {
		for _, c := range classes {
			if !HasClass(n, c) {
				return false
			}
		}
		return true
	}
}

// ByAttr matches elements with the attribute set to value.
func ByAttr(name, value string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, name)
		return ok && v == value
	}
}

// HasAttr matches elements carrying the attribute, whatever its value.
func HasAttr(name string) Matcher {
	return func(n *html.Node) bool {
		_, ok := Attr(n, name)
		return ok
	}
}

// Attr returns an attribute value.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the element's class list contains class.
func HasClass(n *html.Node, class string) bool {
	value, _ := Attr(n, "class")
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// TextContent concatenates the text below n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return sb.String()
}

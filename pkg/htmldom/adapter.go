package htmldom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/hydrate/pkg/dom"
)

// Wrap exposes a parsed *html.Node as a dom.Node. Returns nil for nil.
func Wrap(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode:
		return element{base{n}}
	case html.TextNode:
		return text{base{n}}
	case html.CommentNode:
		return comment{base{n}}
	default:
		return other{base{n}}
	}
}

// base carries the traversal shared by every node kind.
type base struct {
	n *html.Node
}

func (b base) NextSibling() dom.Node { return Wrap(b.n.NextSibling) }
func (b base) FirstChild() dom.Node  { return Wrap(b.n.FirstChild) }

// Unwrap returns the underlying parser node, for callers that need to
// reach past the dom view (e.g. serialization).
func Unwrap(n dom.Node) *html.Node {
	type unwrapper interface{ unwrap() *html.Node }
	if u, ok := n.(unwrapper); ok {
		return u.unwrap()
	}
	return nil
}

func (b base) unwrap() *html.Node { return b.n }

type element struct{ base }

func (element) Kind() dom.NodeKind { return dom.ElementNode }

func (e element) TagName() string { return e.n.Data }

func (e element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (e element) Attrs() []dom.Attr {
	if len(e.n.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		attrs = append(attrs, dom.Attr{Key: a.Key, Value: a.Val})
	}
	return attrs
}

type text struct{ base }

func (text) Kind() dom.NodeKind { return dom.TextNode }

func (t text) Data() string { return t.n.Data }

type comment struct{ base }

func (comment) Kind() dom.NodeKind { return dom.CommentNode }

func (c comment) Data() string { return c.n.Data }

// other covers doctypes and any node kind hydration cannot represent.
type other struct{ base }

func (other) Kind() dom.NodeKind { return dom.OtherNode }

// Parse parses a full HTML document and returns its document node.
func Parse(r io.Reader) (dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return Wrap(doc), nil
}

// ParseFragment parses markup as body content and returns a synthetic
// container holding the fragment's top-level nodes. The container is
// not an element, matching the "container root" case of diagnostics.
func ParseFragment(markup string) (dom.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return Wrap(container), nil
}

// Body returns the body element of a parsed document, or nil.
func Body(doc dom.Node) dom.Node {
	n := Unwrap(doc)
	if n == nil {
		return nil
	}
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(n)
	return Wrap(body)
}

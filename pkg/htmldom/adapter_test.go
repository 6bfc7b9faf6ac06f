package htmldom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/hydrate/pkg/dom"
)

func parseFragment(t *testing.T, markup string) dom.Node {
	t.Helper()
	container, err := ParseFragment(markup)
	if err != nil {
		t.Fatalf("ParseFragment(%q): %v", markup, err)
	}
	return container
}

func TestWrapClassification(t *testing.T) {
	container := parseFragment(t, `<!--c--><div id="d">text</div>`)

	comment := container.FirstChild()
	if comment.Kind() != dom.CommentNode {
		t.Errorf("comment Kind = %v", comment.Kind())
	}
	if c, ok := comment.(dom.Text); !ok || c.Data() != "c" {
		t.Errorf("comment data = %v", comment)
	}

	div := comment.NextSibling()
	el, ok := div.(dom.Element)
	if !ok || el.Kind() != dom.ElementNode {
		t.Fatalf("div = %v, want element", div)
	}
	if el.TagName() != "div" {
		t.Errorf("TagName = %q", el.TagName())
	}

	txt := el.FirstChild()
	if tn, ok := txt.(dom.Text); !ok || tn.Data() != "text" {
		t.Errorf("text child = %v", txt)
	}

	if Wrap(nil) != nil {
		t.Error("Wrap(nil) != nil")
	}
	doctype := Wrap(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if doctype.Kind() != dom.OtherNode {
		t.Errorf("doctype Kind = %v, want Other", doctype.Kind())
	}
}

func TestElementAttrs(t *testing.T) {
	container := parseFragment(t, `<input type="text" VALUE="x" disabled>`)
	el := container.FirstChild().(dom.Element)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		if v, ok := el.Attr("value"); !ok || v != "x" {
			t.Errorf("Attr(value) = %q, %v", v, ok)
		}
		if v, ok := el.Attr("TYPE"); !ok || v != "text" {
			t.Errorf("Attr(TYPE) = %q, %v", v, ok)
		}
	})

	t.Run("boolean attribute", func(t *testing.T) {
		if v, ok := el.Attr("disabled"); !ok || v != "" {
			t.Errorf("Attr(disabled) = %q, %v", v, ok)
		}
	})

	t.Run("missing attribute", func(t *testing.T) {
		if _, ok := el.Attr("name"); ok {
			t.Error("Attr(name) found, want absent")
		}
	})

	t.Run("attrs keep rendered order", func(t *testing.T) {
		attrs := el.Attrs()
		if len(attrs) != 3 || attrs[0].Key != "type" || attrs[1].Key != "value" || attrs[2].Key != "disabled" {
			t.Errorf("Attrs = %v", attrs)
		}
	})
}

func TestParseFragmentContainer(t *testing.T) {
	t.Run("container is not an element", func(t *testing.T) {
		container := parseFragment(t, `<div></div>`)
		if container.Kind() == dom.ElementNode {
			t.Error("fragment container must not be an element")
		}
	})

	t.Run("top-level siblings", func(t *testing.T) {
		container := parseFragment(t, `<div></div>text<span></span>`)
		kinds := []dom.NodeKind{}
		for c := container.FirstChild(); c != nil; c = c.NextSibling() {
			kinds = append(kinds, c.Kind())
		}
		want := []dom.NodeKind{dom.ElementNode, dom.TextNode, dom.ElementNode}
		if len(kinds) != len(want) {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
		for i := range want {
			if kinds[i] != want[i] {
				t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
			}
		}
	})

	t.Run("entities decode at parse time", func(t *testing.T) {
		container := parseFragment(t, `a&amp;b`)
		txt := container.FirstChild().(dom.Text)
		if txt.Data() != "a&b" {
			t.Errorf("Data = %q, want decoded entity", txt.Data())
		}
	})
}

func TestParseAndBody(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!DOCTYPE html><html><body><main id="app"></main></body></html>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	body := Body(doc)
	if body == nil || body.Kind() != dom.ElementNode {
		t.Fatalf("Body = %v, want body element", body)
	}
	main, ok := body.FirstChild().(dom.Element)
	if !ok || main.TagName() != "main" {
		t.Errorf("body first child = %v, want main", body.FirstChild())
	}

	if Body(Wrap(&html.Node{Type: html.TextNode})) != nil {
		t.Error("Body of a bodyless tree should be nil")
	}
}

func TestUnwrap(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}
	if Unwrap(Wrap(n)) != n {
		t.Error("Unwrap(Wrap(n)) != n")
	}
	if Unwrap(nil) != nil {
		t.Error("Unwrap(nil) != nil")
	}
}

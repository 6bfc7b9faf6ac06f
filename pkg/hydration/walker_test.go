package hydration

import (
	"testing"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/htmldom"
)

// mustFragment parses markup into a synthetic container for tests.
func mustFragment(t *testing.T, markup string) dom.Node {
	t.Helper()
	container, err := htmldom.ParseFragment(markup)
	if err != nil {
		t.Fatalf("ParseFragment(%q): %v", markup, err)
	}
	return container
}

func TestIsHydratable(t *testing.T) {
	container := mustFragment(t, `<!--marker--><div></div>text`)

	comment := container.FirstChild()
	if comment.Kind() != dom.CommentNode {
		t.Fatalf("first child kind = %v, want Comment", comment.Kind())
	}
	if IsHydratable(comment) {
		t.Error("comment should not be hydratable")
	}

	div := comment.NextSibling()
	if !IsHydratable(div) {
		t.Error("element should be hydratable")
	}

	txt := div.NextSibling()
	if !IsHydratable(txt) {
		t.Error("text should be hydratable")
	}

	if IsHydratable(nil) {
		t.Error("nil should not be hydratable")
	}
}

func TestFirstHydratableChild(t *testing.T) {
	t.Run("skips leading comments", func(t *testing.T) {
		container := mustFragment(t, `<!--a--><!--b--><span></span>`)
		first := FirstHydratableChild(container)
		if first == nil || first.Kind() != dom.ElementNode {
			t.Fatalf("FirstHydratableChild = %v, want span element", first)
		}
	})

	t.Run("empty parent", func(t *testing.T) {
		container := mustFragment(t, ``)
		if got := FirstHydratableChild(container); got != nil {
			t.Errorf("FirstHydratableChild = %v, want nil", got)
		}
	})

	t.Run("only comments", func(t *testing.T) {
		container := mustFragment(t, `<!--a--><!--b-->`)
		if got := FirstHydratableChild(container); got != nil {
			t.Errorf("FirstHydratableChild = %v, want nil", got)
		}
	})

	t.Run("nil parent", func(t *testing.T) {
		if got := FirstHydratableChild(nil); got != nil {
			t.Errorf("FirstHydratableChild(nil) = %v, want nil", got)
		}
	})
}

func TestNextHydratableSibling(t *testing.T) {
	container := mustFragment(t, `<div></div><!--x-->text<!--y--><span></span>`)

	div := FirstHydratableChild(container)
	txt := NextHydratableSibling(div)
	if txt == nil || txt.Kind() != dom.TextNode {
		t.Fatalf("sibling after div = %v, want text", txt)
	}

	span := NextHydratableSibling(txt)
	if span == nil || span.Kind() != dom.ElementNode {
		t.Fatalf("sibling after text = %v, want span", span)
	}

	if got := NextHydratableSibling(span); got != nil {
		t.Errorf("sibling after last = %v, want nil", got)
	}

	if got := NextHydratableSibling(nil); got != nil {
		t.Errorf("NextHydratableSibling(nil) = %v, want nil", got)
	}
}

package hydration

import "github.com/vango-dev/hydrate/pkg/dom"

// IsHydratable reports whether an existing node is a candidate for
// matching. Only elements and text nodes are; comments and other node
// kinds are structurally inert and skipped by the walk.
func IsHydratable(n dom.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case dom.ElementNode, dom.TextNode:
		return true
	}
	return false
}

// NextHydratableSibling returns the first hydratable node among n's
// following siblings, or nil if the sibling list is exhausted.
func NextHydratableSibling(n dom.Node) dom.Node {
	if n == nil {
		return nil
	}
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if IsHydratable(s) {
			return s
		}
	}
	return nil
}

// FirstHydratableChild returns the first hydratable child of parent,
// or nil if parent has none.
func FirstHydratableChild(parent dom.Node) dom.Node {
	if parent == nil {
		return nil
	}
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if IsHydratable(c) {
			return c
		}
	}
	return nil
}

package hydration

import (
	"html"
	"strings"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// CanMatchElement returns the candidate reinterpreted as an element if
// it can stand in for an expected element with the given tag: the
// candidate must be an element and the tag names must match
// case-insensitively. Returns nil otherwise.
func CanMatchElement(candidate dom.Node, expectedTag string) dom.Element {
	if candidate == nil || candidate.Kind() != dom.ElementNode {
		return nil
	}
	el, ok := candidate.(dom.Element)
	if !ok {
		return nil
	}
	if !strings.EqualFold(el.TagName(), expectedTag) {
		return nil
	}
	return el
}

// CanMatchText returns the candidate reinterpreted as text if it can
// stand in for the expected text content. An empty expectation never
// matches: the markup format cannot represent a zero-length text node
// distinctly from "absent", so an empty expectation must neither claim
// an existing text node nor be reported as missing.
func CanMatchText(candidate dom.Node, expectedText string) dom.Text {
	if expectedText == "" {
		return nil
	}
	if candidate == nil || candidate.Kind() != dom.TextNode {
		return nil
	}
	txt, ok := candidate.(dom.Text)
	if !ok {
		return nil
	}
	return txt
}

// normalizeMarkupText maps platform-specific text representation
// artifacts (entity encoding, line ending flavor) to a canonical form
// so that values differing only in representation never count as a
// mismatch.
func normalizeMarkupText(s string) string {
	if strings.ContainsRune(s, '&') {
		s = html.UnescapeString(s)
	}
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return s
}

// TextMatches reports whether existing and expected text content agree
// after normalization.
func TextMatches(existing, expected string) bool {
	return normalizeMarkupText(existing) == normalizeMarkupText(expected)
}

// HydrateElement claims a matched element: it asks the host adapter for
// the attribute changes needed to align the element with the expected
// props and reports server-only attributes. The returned payload is
// opaque to hydration; the host applies it.
func (h *Hydrator) HydrateElement(el dom.Element, expected *vdom.VNode, differ dom.AttributeDiffer) []dom.Patch {
	if el == nil || expected == nil || differ == nil {
		return nil
	}
	h.metrics.observeMatch()

	var props map[string]any
	if expected.Props != nil {
		props = expected.Props
	}

	payload, extra := differ.DiffAttributes(el, props)
	if len(extra) > 0 {
		if extra = filterNulledExtras(extra, expected.Props); len(extra) > 0 {
			h.ReportExtraAttributes(el, expected.Props, extra)
		}
	}
	return payload
}

// filterNulledExtras drops server-only attributes whose expected value
// is explicitly null. A nulled-out prop means the render deliberately
// cleared the attribute, which is not worth a warning. Attribute names
// arrive lowercased from the host while props keep author casing, so
// the lookup folds case like the differ's does.
func filterNulledExtras(extra []string, props vdom.Props) []string {
	if props == nil {
		return extra
	}
	kept := extra[:0]
	for _, name := range extra {
		if propNulled(props, name) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func propNulled(props vdom.Props, name string) bool {
	if v, ok := props[name]; ok {
		return v == nil
	}
	for k, v := range props {
		if strings.EqualFold(k, name) {
			return v == nil
		}
	}
	return false
}

package hydration

import (
	"fmt"
	"strings"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Mismatch categories, used as metric labels and span event attributes.
const (
	CategoryText            = "text"
	CategoryAttribute       = "attribute"
	CategoryExtraAttributes = "extra-attributes"
	CategoryMissingNode     = "missing-node"
	CategoryUnexpectedNode  = "unexpected-node"
	CategoryReplacedNode    = "replaced-node"
)

// ReportTextMismatch reports that the character data of a claimed text
// node differs from the expected content. Values that agree after
// normalization never warn.
func (h *Hydrator) ReportTextMismatch(props vdom.Props, existing, expected string) {
	if TextMatches(existing, expected) {
		return
	}
	if !h.shouldWarn(props) {
		return
	}
	msg := fmt.Sprintf("text content does not match server-rendered HTML.\n  server: %s\n  client: %s",
		FormatValue(existing), FormatValue(expected))
	h.emit(CategoryText, msg)
}

// ReportAttributeMismatch reports that an attribute survived matching
// with a different value than expected. String values that agree after
// normalization never warn.
func (h *Hydrator) ReportAttributeMismatch(el dom.Element, props vdom.Props, name string, serverValue, clientValue any) {
	if sv, ok := serverValue.(string); ok {
		if cv, ok := clientValue.(string); ok && TextMatches(sv, cv) {
			return
		}
	}
	if !h.shouldWarn(props) {
		return
	}
	msg := fmt.Sprintf("attribute %q on %s does not match server-rendered HTML.\n  server: %s\n  client: %s",
		name, formatDOMNode(el, TagOpenOnly), FormatValue(serverValue), FormatValue(clientValue))
	h.emit(CategoryAttribute, msg)
}

// ReportExtraAttributes reports attributes present only on the
// existing element. The caller has already dropped attributes whose
// expected value is explicitly null.
func (h *Hydrator) ReportExtraAttributes(el dom.Element, props vdom.Props, names []string) {
	if len(names) == 0 {
		return
	}
	if !h.shouldWarn(props) {
		return
	}
	msg := fmt.Sprintf("extra attributes from the server on %s: %s",
		formatDOMNode(el, TagOpenOnly), strings.Join(names, ", "))
	h.emit(CategoryExtraAttributes, msg)
}

// ReportMissingNodeInContainer reports that the expected node has no
// counterpart among the container's remaining children. at is the
// hydratable child index where the node was expected.
func (h *Hydrator) ReportMissingNodeInContainer(container dom.Node, expected *vdom.VNode, at int) {
	props := nodeProps(expected)
	if !h.shouldWarn(props) {
		return
	}
	msg := fmt.Sprintf("expected server-rendered HTML to contain %s at the container root.%s",
		describeExpected(expected),
		renderMismatchDiff(container, noIndex, at, expected))
	h.emit(CategoryMissingNode, msg)
}

// ReportMissingNodeInElement is ReportMissingNodeInContainer for a
// position nested under a matched element.
func (h *Hydrator) ReportMissingNodeInElement(parent dom.Element, expected *vdom.VNode, at int) {
	props := nodeProps(expected)
	if !h.shouldWarn(props) {
		return
	}
	msg := fmt.Sprintf("expected server-rendered HTML to contain %s in %s.%s",
		describeExpected(expected),
		describeParent(parent),
		renderMismatchDiff(parent, noIndex, at, expected))
	h.emit(CategoryMissingNode, msg)
}

// ReportUnexpectedNodeInContainer reports an existing hydratable child
// of the container that the current render has no use for. When
// replacement is non-nil the render expected different content at the
// same position and the diff shows a replacement; otherwise it shows a
// pure deletion.
func (h *Hydrator) ReportUnexpectedNodeInContainer(container dom.Node, existing dom.Node, at int, replacement *vdom.VNode) {
	h.reportUnexpected(container, nodeProps(replacement), existing, at, replacement, "at the container root")
}

// ReportUnexpectedNodeInElement is ReportUnexpectedNodeInContainer for
// a position nested under a matched element.
func (h *Hydrator) ReportUnexpectedNodeInElement(parent dom.Element, parentProps vdom.Props, existing dom.Node, at int, replacement *vdom.VNode) {
	props := nodeProps(replacement)
	if props == nil {
		props = parentProps
	}
	h.reportUnexpected(parent, props, existing, at, replacement, "in "+describeParent(parent))
}

func (h *Hydrator) reportUnexpected(parent dom.Node, props vdom.Props, existing dom.Node, at int, replacement *vdom.VNode, where string) {
	if !h.shouldWarn(props) {
		return
	}
	if printableAdded(replacement) {
		msg := fmt.Sprintf("expected server-rendered HTML to contain %s %s.%s",
			describeExpected(replacement), where,
			renderMismatchDiff(parent, at, at, replacement))
		h.emit(CategoryReplacedNode, msg)
		return
	}
	msg := fmt.Sprintf("did not expect server-rendered HTML to contain %s %s.%s",
		describeExisting(existing), where,
		renderMismatchDiff(parent, at, noIndex, nil))
	h.emit(CategoryUnexpectedNode, msg)
}

// nodeProps returns the props of the logical node carrying the
// suppression flag for this diagnostic.
func nodeProps(v *vdom.VNode) vdom.Props {
	if v == nil {
		return nil
	}
	return v.Props
}

// describeExpected names an expected node for a message headline.
func describeExpected(v *vdom.VNode) string {
	if v == nil {
		return "a node"
	}
	switch v.Kind {
	case vdom.KindElement:
		return fmt.Sprintf("a matching <%s>", v.Tag)
	case vdom.KindText, vdom.KindRaw:
		return "the text " + FormatValue(v.Text)
	}
	return "a node"
}

// describeExisting names an existing node for a message headline.
func describeExisting(n dom.Node) string {
	if n == nil {
		return "a node"
	}
	switch n.Kind() {
	case dom.ElementNode:
		if el, ok := n.(dom.Element); ok {
			return fmt.Sprintf("a <%s>", strings.ToLower(el.TagName()))
		}
	case dom.TextNode:
		if txt, ok := n.(dom.Text); ok {
			return "the text " + FormatValue(txt.Data())
		}
	}
	return "a node"
}

// describeParent names the element a diagnostic is nested under.
func describeParent(parent dom.Element) string {
	if parent == nil {
		return "its parent"
	}
	return fmt.Sprintf("<%s>", strings.ToLower(parent.TagName()))
}

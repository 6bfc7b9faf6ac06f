package hydration

import (
	"context"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Result summarizes a hydration pass.
type Result struct {
	// Claimed is the number of existing nodes matched to expected ones.
	Claimed int

	// Patches is the accumulated attribute reconciliation payload for
	// the host adapter to apply.
	Patches []dom.Patch

	// OK is false when the pass hit a structural mismatch and stopped
	// matching that subtree. The caller's fallback policy (typically
	// discarding the pre-rendered subtree) takes over from there.
	OK bool
}

// Hydrate walks the expected trees against the container's existing
// children, claiming matching nodes and reporting divergence. It reads
// the existing tree but never mutates it.
//
// This is a straight-line reference driver: it matches position by
// position with no reordering or partial recovery. Callers with their
// own reconciliation engine should use the traversal and matching
// primitives directly.
func (h *Hydrator) Hydrate(ctx context.Context, container dom.Node, expected []*vdom.VNode, differ dom.AttributeDiffer) *Result {
	_ = h.Begin(ctx)
	defer h.End()

	res := &Result{OK: true}
	h.hydrateChildren(container, nil, nil, expected, differ, res)
	return res
}

// hydrateChildren matches the expected child list against the
// hydratable children of parent. parentEl is nil when parent is the
// hydration container rather than a matched element; parentProps are
// the logical props of the expected node that claimed parentEl.
func (h *Hydrator) hydrateChildren(parent dom.Node, parentEl dom.Element, parentProps vdom.Props, expected []*vdom.VNode, differ dom.AttributeDiffer, res *Result) {
	candidate := FirstHydratableChild(parent)
	idx := 0

	for _, exp := range flatten(expected) {
		switch exp.Kind {
		case vdom.KindElement:
			el := CanMatchElement(candidate, exp.Tag)
			if el == nil {
				h.reportStructural(parent, parentEl, candidate, exp, idx)
				res.OK = false
				return
			}
			res.Claimed++
			res.Patches = append(res.Patches, h.HydrateElement(el, exp, differ)...)
			h.hydrateChildren(el, el, exp.Props, exp.Children, differ, res)
			if !res.OK {
				return
			}
			candidate = NextHydratableSibling(el)
			idx++

		case vdom.KindText:
			if exp.Text == "" {
				// Empty text is never rendered as a visible node:
				// it neither claims a candidate nor counts as missing.
				continue
			}
			txt := CanMatchText(candidate, exp.Text)
			if txt == nil {
				h.reportStructural(parent, parentEl, candidate, exp, idx)
				res.OK = false
				return
			}
			res.Claimed++
			h.metrics.observeMatch()
			// A text value difference is recoverable by patching the
			// character data, so it does not stop the pass.
			h.ReportTextMismatch(nodeProps(exp), txt.Data(), exp.Text)
			candidate = NextHydratableSibling(txt)
			idx++

		case vdom.KindRaw:
			// Raw HTML is opaque to matching: claim the candidate
			// unseen, as its content cannot be compared node by node.
			if candidate != nil {
				res.Claimed++
				h.metrics.observeMatch()
				candidate = NextHydratableSibling(candidate)
				idx++
			}
		}
	}

	if candidate != nil {
		// Everything expected has been matched but server content
		// remains.
		if parentEl == nil {
			h.ReportUnexpectedNodeInContainer(parent, candidate, idx, nil)
		} else {
			h.ReportUnexpectedNodeInElement(parentEl, parentProps, candidate, idx, nil)
		}
		res.OK = false
	}
}

// reportStructural routes a structural mismatch to the right entry
// point: missing when the candidates ran out, replacement otherwise.
func (h *Hydrator) reportStructural(parent dom.Node, parentEl dom.Element, candidate dom.Node, exp *vdom.VNode, idx int) {
	if candidate == nil {
		if parentEl == nil {
			h.ReportMissingNodeInContainer(parent, exp, idx)
		} else {
			h.ReportMissingNodeInElement(parentEl, exp, idx)
		}
		return
	}
	if parentEl == nil {
		h.ReportUnexpectedNodeInContainer(parent, candidate, idx, exp)
	} else {
		h.ReportUnexpectedNodeInElement(parentEl, nil, candidate, idx, exp)
	}
}

// flatten expands fragments into their children so matching sees the
// sequence of concrete nodes a render would produce.
func flatten(nodes []*vdom.VNode) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == vdom.KindFragment {
			out = append(out, flatten(n.Children)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

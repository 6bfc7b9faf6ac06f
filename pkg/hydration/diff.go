package hydration

import (
	"strings"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// DiffStatus classifies one line of a mismatch diagnostic.
type DiffStatus uint8

const (
	DiffUnchanged DiffStatus = iota
	DiffRemoved
	DiffAdded
)

// DiffEntry is one line of a constructed diagnostic, ordered by
// original sibling position.
type DiffEntry struct {
	Status DiffStatus
	Text   string
}

// noIndex marks an absent removed-at or inserted-at position.
const noIndex = -1

// mismatchDiff builds the line sequence describing how the existing
// child list of parent diverges from expectations.
//
// removedAt and insertedAt index the existing hydratable child
// sequence; non-hydratable children still print (unchanged) but do not
// count. The added node prints at the position corresponding to the
// expected index, the removed child stays at its existing index. Equal
// indices render as a replacement, unequal ones as an insertion
// displaced by a prior deletion.
func mismatchDiff(parent dom.Node, removedAt, insertedAt int, added *vdom.VNode) []DiffEntry {
	if parent == nil {
		return nil
	}

	var entries []DiffEntry

	parentEl, _ := parent.(dom.Element)
	if parentEl != nil && parent.Kind() == dom.ElementNode {
		entries = append(entries, DiffEntry{DiffUnchanged, formatDOMElement(parentEl, TagOpenOnly)})
	}

	hasAdded := printableAdded(added)
	idx := 0
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if !IsHydratable(c) {
			// Comments and other inert kinds stay visible but are
			// invisible to positional counting.
			entries = append(entries, DiffEntry{DiffUnchanged, formatDOMNode(c, TagFull)})
			continue
		}

		if hasAdded && idx == insertedAt && insertedAt != removedAt {
			entries = append(entries, DiffEntry{DiffAdded, formatAddedNode(added)})
		}

		status := DiffUnchanged
		if idx == removedAt {
			status = DiffRemoved
		}
		entries = append(entries, DiffEntry{status, formatDOMNode(c, TagFull)})

		if hasAdded && idx == insertedAt && insertedAt == removedAt {
			// Same-position replacement: removed line immediately
			// followed by the added line.
			entries = append(entries, DiffEntry{DiffAdded, formatAddedNode(added)})
		}
		idx++
	}

	if hasAdded && insertedAt >= idx {
		entries = append(entries, DiffEntry{DiffAdded, formatAddedNode(added)})
	}

	if parentEl != nil && parent.Kind() == dom.ElementNode {
		entries = append(entries, DiffEntry{DiffUnchanged, "</" + strings.ToLower(parentEl.TagName()) + ">"})
	}

	return entries
}

// formatAddedNode renders the expected node as a diff line. Text uses
// the same raw rules as existing text lines so both sides of a
// replacement read alike.
func formatAddedNode(added *vdom.VNode) string {
	if added != nil && (added.Kind == vdom.KindText || added.Kind == vdom.KindRaw) {
		return formatChildText(added.Text)
	}
	return formatVNode(added, TagFull, 0)
}

// printableAdded reports whether the expected node yields an "added"
// line at all: an element with a tag, or non-empty text. Empty text
// expectations are never visible nodes and must not look like an
// insertion.
func printableAdded(added *vdom.VNode) bool {
	if added == nil {
		return false
	}
	switch added.Kind {
	case vdom.KindElement:
		return added.Tag != ""
	case vdom.KindText, vdom.KindRaw:
		return added.Text != ""
	}
	return false
}

// formatDiff renders diff entries as an indented block, wrapped in
// newlines to separate it from the surrounding log message. When the
// entries are bracketed by parent tag lines, child lines sit one
// nesting level (two spaces) in from the parent.
func formatDiff(entries []DiffEntry, hasParent bool) string {
	var b strings.Builder
	b.WriteByte('\n')
	for i, e := range entries {
		childLine := !hasParent || (i > 0 && i < len(entries)-1)
		switch e.Status {
		case DiffRemoved:
			b.WriteString("- ")
		case DiffAdded:
			b.WriteString("+ ")
		default:
			b.WriteString("  ")
		}
		b.WriteString("  ")
		if childLine {
			b.WriteString("  ")
		}
		b.WriteString(e.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// renderMismatchDiff builds the full diff block for a divergence at
// the given position under parent.
func renderMismatchDiff(parent dom.Node, removedAt, insertedAt int, added *vdom.VNode) string {
	entries := mismatchDiff(parent, removedAt, insertedAt, added)
	hasParent := parent != nil && parent.Kind() == dom.ElementNode
	return formatDiff(entries, hasParent)
}

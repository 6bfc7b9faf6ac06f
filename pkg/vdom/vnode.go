package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the logical node a render pass expects at some position.
// During hydration it is compared against an existing rendered node
// instead of being materialized.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw
}

// Props holds attributes keyed by attribute name.
type Props map[string]any

// Reserved prop keys that are not real attributes. They carry rendering
// or reconciliation metadata and are never printed as ordinary attributes
// in diagnostics.
const (
	PropKey          = "key"
	PropRef          = "ref"
	PropChildren     = "children"
	PropInnerHTML    = "innerHTML"
	PropSuppressWarn = "suppressHydrationWarning"
)

// IsReservedProp reports whether key is reconciliation metadata rather
// than a printable attribute.
func IsReservedProp(key string) bool {
	switch key {
	case PropKey, PropRef, PropChildren, PropInnerHTML, PropSuppressWarn:
		return true
	}
	return false
}

// IsEventProp reports whether the key names an event handler (starts
// with "on"). Case-insensitive to catch onclick, ONCLICK, onClick,
// OnLoad, etc.
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// SuppressesWarnings reports whether the node opted out of hydration
// mismatch diagnostics via the suppression prop.
func (v *VNode) SuppressesWarnings() bool {
	if v == nil || v.Props == nil {
		return false
	}
	b, ok := v.Props[PropSuppressWarn].(bool)
	return ok && b
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

package dom

// NodeKind classifies existing rendered nodes.
type NodeKind uint8

const (
	ElementNode NodeKind = iota // <div>, <button>, etc.
	TextNode                    // Character data
	CommentNode                 // <!-- --> markers
	OtherNode                   // Doctypes, processing instructions, anything else
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case OtherNode:
		return "Other"
	default:
		return "Unknown"
	}
}

// Node is a read-only handle on an existing rendered node.
// Implementations must return untyped nil from NextSibling and
// FirstChild when no such node exists.
type Node interface {
	Kind() NodeKind

	// NextSibling returns the immediate next sibling, or nil.
	NextSibling() Node

	// FirstChild returns the first child, or nil.
	FirstChild() Node
}

// Element is a rendered node of kind ElementNode.
type Element interface {
	Node

	// TagName returns the element's tag name as produced by the host.
	// Casing is host-defined; comparisons must be case-insensitive.
	TagName() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Attrs returns all attributes in host order.
	Attrs() []Attr
}

// Text is a rendered node of kind TextNode or CommentNode.
type Text interface {
	Node

	// Data returns the node's character data.
	Data() string
}

// Attr is a single rendered attribute.
type Attr struct {
	Key   string
	Value string
}

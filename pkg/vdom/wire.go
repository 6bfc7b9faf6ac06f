package vdom

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxWireDepth limits nesting when decoding VNode trees from untrusted
// input, preventing stack exhaustion from deeply nested documents.
const MaxWireDepth = 256

// VNodeWire is the JSON wire format for VNodes. It contains only
// serializable data.
type VNodeWire struct {
	Kind     string         `json:"kind"`
	Tag      string         `json:"tag,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Children []*VNodeWire   `json:"children,omitempty"`
	Text     string         `json:"text,omitempty"`
}

// Wire kind names.
const (
	WireElement  = "element"
	WireText     = "text"
	WireFragment = "fragment"
	WireRaw      = "raw"
)

// VNodeToWire converts a VNode to wire format.
func VNodeToWire(node *VNode) *VNodeWire {
	if node == nil {
		return nil
	}

	w := &VNodeWire{
		Tag:  node.Tag,
		Text: node.Text,
	}

	switch node.Kind {
	case KindElement:
		w.Kind = WireElement
	case KindText:
		w.Kind = WireText
	case KindFragment:
		w.Kind = WireFragment
	case KindRaw:
		w.Kind = WireRaw
	}

	if len(node.Props) > 0 {
		w.Attrs = make(map[string]any, len(node.Props))
		for k, v := range node.Props {
			w.Attrs[k] = v
		}
	}

	if len(node.Children) > 0 {
		w.Children = make([]*VNodeWire, 0, len(node.Children))
		for _, child := range node.Children {
			if child != nil {
				w.Children = append(w.Children, VNodeToWire(child))
			}
		}
	}

	return w
}

// ToVNode converts a wire node back into a VNode.
// Returns an error if the tree is malformed or exceeds MaxWireDepth.
func (w *VNodeWire) ToVNode() (*VNode, error) {
	return wireToVNode(w, 0)
}

func wireToVNode(w *VNodeWire, depth int) (*VNode, error) {
	if w == nil {
		return nil, nil
	}
	if depth > MaxWireDepth {
		return nil, fmt.Errorf("vnode tree exceeds maximum depth %d", MaxWireDepth)
	}

	node := &VNode{Tag: w.Tag, Text: w.Text}

	switch w.Kind {
	case WireElement:
		node.Kind = KindElement
		if w.Tag == "" {
			return nil, fmt.Errorf("element node missing tag")
		}
	case WireText:
		node.Kind = KindText
	case WireFragment:
		node.Kind = KindFragment
	case WireRaw:
		node.Kind = KindRaw
	default:
		return nil, fmt.Errorf("unknown node kind %q", w.Kind)
	}

	if len(w.Attrs) > 0 {
		node.Props = make(Props, len(w.Attrs))
		for k, v := range w.Attrs {
			node.Props[k] = v
		}
		if key, ok := w.Attrs[PropKey].(string); ok {
			node.Key = key
		}
	}

	for _, cw := range w.Children {
		child, err := wireToVNode(cw, depth+1)
		if err != nil {
			return nil, err
		}
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}

	return node, nil
}

// DecodeJSON reads a JSON array (or single object) of wire nodes and
// returns the corresponding VNodes.
func DecodeJSON(r io.Reader) ([]*VNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wires []*VNodeWire
	if err := json.Unmarshal(data, &wires); err != nil {
		// Accept a single object as well as an array.
		var single VNodeWire
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, fmt.Errorf("decode expected tree: %w", err)
		}
		wires = []*VNodeWire{&single}
	}

	nodes := make([]*VNode, 0, len(wires))
	for _, w := range wires {
		node, err := w.ToVNode()
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// EncodeJSON writes the wire form of the given nodes as a JSON array.
func EncodeJSON(w io.Writer, nodes []*VNode) error {
	wires := make([]*VNodeWire, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			wires = append(wires, VNodeToWire(n))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wires)
}

package vdom

import (
	"bytes"
	"strings"
	"testing"
)

func TestWireRoundTrip(t *testing.T) {
	original := Div(Class("card"), Key("k1"),
		Span(Text("hello")),
		Raw("<hr>"),
		Fragment(Text("a"), Text("b")),
	)

	wire := VNodeToWire(original)
	back, err := wire.ToVNode()
	if err != nil {
		t.Fatalf("ToVNode: %v", err)
	}

	if back.Kind != KindElement || back.Tag != "div" {
		t.Fatalf("root = %+v", back)
	}
	if back.Props["class"] != "card" {
		t.Errorf("Props = %v", back.Props)
	}
	if back.Key != "k1" {
		t.Errorf("Key = %q", back.Key)
	}
	if len(back.Children) != 3 {
		t.Fatalf("Children = %v", back.Children)
	}
	if back.Children[1].Kind != KindRaw || back.Children[1].Text != "<hr>" {
		t.Errorf("raw child = %+v", back.Children[1])
	}
	frag := back.Children[2]
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("fragment child = %+v", frag)
	}
}

func TestWireValidation(t *testing.T) {
	t.Run("element missing tag", func(t *testing.T) {
		w := &VNodeWire{Kind: WireElement}
		if _, err := w.ToVNode(); err == nil {
			t.Error("expected error for element without tag")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := &VNodeWire{Kind: "portal"}
		if _, err := w.ToVNode(); err == nil {
			t.Error("expected error for unknown kind")
		}
	})

	t.Run("depth limit", func(t *testing.T) {
		w := &VNodeWire{Kind: WireFragment}
		leaf := w
		for i := 0; i < MaxWireDepth+1; i++ {
			child := &VNodeWire{Kind: WireFragment}
			leaf.Children = []*VNodeWire{child}
			leaf = child
		}
		if _, err := w.ToVNode(); err == nil {
			t.Error("expected error for tree past depth limit")
		}
	})

	t.Run("nil wire", func(t *testing.T) {
		var w *VNodeWire
		node, err := w.ToVNode()
		if err != nil || node != nil {
			t.Errorf("ToVNode(nil) = %v, %v", node, err)
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("array of nodes", func(t *testing.T) {
		in := `[{"kind":"element","tag":"div","attrs":{"id":"app"}},{"kind":"text","text":"hi"}]`
		nodes, err := DecodeJSON(strings.NewReader(in))
		if err != nil {
			t.Fatalf("DecodeJSON: %v", err)
		}
		if len(nodes) != 2 {
			t.Fatalf("nodes = %v", nodes)
		}
		if nodes[0].Tag != "div" || nodes[0].Props["id"] != "app" {
			t.Errorf("nodes[0] = %+v", nodes[0])
		}
		if nodes[1].Kind != KindText || nodes[1].Text != "hi" {
			t.Errorf("nodes[1] = %+v", nodes[1])
		}
	})

	t.Run("single object", func(t *testing.T) {
		nodes, err := DecodeJSON(strings.NewReader(`{"kind":"element","tag":"p"}`))
		if err != nil {
			t.Fatalf("DecodeJSON: %v", err)
		}
		if len(nodes) != 1 || nodes[0].Tag != "p" {
			t.Errorf("nodes = %v", nodes)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		if _, err := DecodeJSON(strings.NewReader(`{]`)); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeJSON(&buf, []*VNode{Div(ID("x")), nil, Text("t")})
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	out := buf.String()
	for _, frag := range []string{`"kind": "element"`, `"tag": "div"`, `"id": "x"`, `"kind": "text"`} {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q:\n%s", frag, out)
		}
	}

	nodes, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON round trip: %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("round trip nodes = %v", nodes)
	}
}

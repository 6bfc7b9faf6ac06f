package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("attrs and children", func(t *testing.T) {
		node := Div(Class("card"), ID("x"), Span(Text("hi")), Text("tail"))

		if node.Kind != KindElement || node.Tag != "div" {
			t.Fatalf("node = %+v", node)
		}
		if node.Props["class"] != "card" || node.Props["id"] != "x" {
			t.Errorf("Props = %v", node.Props)
		}
		if len(node.Children) != 2 {
			t.Fatalf("Children = %v", node.Children)
		}
		if node.Children[0].Tag != "span" || node.Children[1].Text != "tail" {
			t.Errorf("Children = %v, %v", node.Children[0], node.Children[1])
		}
	})

	t.Run("string argument becomes text child", func(t *testing.T) {
		node := P("hello")
		if len(node.Children) != 1 || node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
			t.Errorf("Children = %v", node.Children)
		}
	})

	t.Run("nil arguments ignored", func(t *testing.T) {
		node := Div(nil, If(false, Span()), AttrIf(false, ID("x")))
		if len(node.Children) != 0 || len(node.Props) != 0 {
			t.Errorf("node = %+v", node)
		}
	})

	t.Run("attr slices flatten", func(t *testing.T) {
		node := Div([]Attr{ID("a"), Class("b")})
		if node.Props["id"] != "a" || node.Props["class"] != "b" {
			t.Errorf("Props = %v", node.Props)
		}
	})

	t.Run("child slices flatten", func(t *testing.T) {
		node := Ul(Range([]string{"a", "b"}, func(s string, i int) *VNode {
			return Li(Key(i), Text(s))
		}))
		if len(node.Children) != 2 {
			t.Fatalf("Children = %v", node.Children)
		}
		if node.Children[0].Key != "0" || node.Children[1].Key != "1" {
			t.Errorf("keys = %q, %q", node.Children[0].Key, node.Children[1].Key)
		}
	})

	t.Run("key attr sets Key field", func(t *testing.T) {
		node := Div(Key("row-7"))
		if node.Key != "row-7" {
			t.Errorf("Key = %q", node.Key)
		}
		if node.Props[PropKey] != "row-7" {
			t.Errorf("Props[key] = %v", node.Props[PropKey])
		}
	})
}

func TestHelpers(t *testing.T) {
	t.Run("fragment groups", func(t *testing.T) {
		f := Fragment(Div(), "text", nil, []*VNode{Span(), nil})
		if f.Kind != KindFragment {
			t.Fatalf("Kind = %v", f.Kind)
		}
		if len(f.Children) != 3 {
			t.Errorf("Children = %v", f.Children)
		}
	})

	t.Run("textf formats", func(t *testing.T) {
		node := Textf("%d items", 3)
		if node.Text != "3 items" {
			t.Errorf("Text = %q", node.Text)
		}
	})

	t.Run("raw keeps markup", func(t *testing.T) {
		node := Raw("<b>x</b>")
		if node.Kind != KindRaw || node.Text != "<b>x</b>" {
			t.Errorf("node = %+v", node)
		}
	})

	t.Run("repeat", func(t *testing.T) {
		nodes := Repeat(3, func(i int) *VNode { return Li(Textf("%d", i)) })
		if len(nodes) != 3 {
			t.Fatalf("len = %d", len(nodes))
		}
		if Repeat(0, func(i int) *VNode { return nil }) != nil {
			t.Error("Repeat(0) != nil")
		}
	})

	t.Run("classif", func(t *testing.T) {
		if a := ClassIf(true, "on"); a.Key != "class" || a.Value != "on" {
			t.Errorf("ClassIf(true) = %+v", a)
		}
		if a := ClassIf(false, "on"); !a.IsEmpty() {
			t.Errorf("ClassIf(false) = %+v, want empty", a)
		}
	})
}

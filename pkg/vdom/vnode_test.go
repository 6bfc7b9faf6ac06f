package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsReservedProp(t *testing.T) {
	for _, key := range []string{PropKey, PropRef, PropChildren, PropInnerHTML, PropSuppressWarn} {
		if !IsReservedProp(key) {
			t.Errorf("IsReservedProp(%q) = false", key)
		}
	}
	for _, key := range []string{"class", "id", "data-key", "keydown"} {
		if IsReservedProp(key) {
			t.Errorf("IsReservedProp(%q) = true", key)
		}
	}
}

func TestIsEventProp(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"onClick", true},
		{"ONLOAD", true},
		{"onmouseover", true},
		{"on", false},
		{"once", true},
		{"class", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEventProp(tt.key); got != tt.want {
			t.Errorf("IsEventProp(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSuppressesWarnings(t *testing.T) {
	if (&VNode{}).SuppressesWarnings() {
		t.Error("bare node should not suppress warnings")
	}
	if !Div(SuppressHydrationWarning()).SuppressesWarnings() {
		t.Error("suppression attr should suppress warnings")
	}
	if Div(Attr{Key: PropSuppressWarn, Value: "yes"}).SuppressesWarnings() {
		t.Error("non-bool suppression value should not suppress")
	}
	var nilNode *VNode
	if nilNode.SuppressesWarnings() {
		t.Error("nil node should not suppress warnings")
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "input", "hr", "meta"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "span", "p", ""} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true", tag)
		}
	}
}

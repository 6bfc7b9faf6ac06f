// Package vdom provides the virtual node model used as the "expected"
// side of hydration.
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes. Attr is used to
// build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Hydration
//
// VNode trees are produced by a render pass and handed to pkg/hydration,
// which matches them against an existing rendered tree instead of
// creating new nodes. The vdom package itself never touches the
// rendered tree.
package vdom

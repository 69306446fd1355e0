// Package vdom implements Topiary's virtual DOM: a three-variant node
// description (element, text, raw markup) and the reconciler that patches
// a live dom tree in place to match it.
//
// # Core Types
//
// VNode is the building block, discriminated by VKind: KindElement carries
// a tag, an attribute mapping and ordered children; KindText carries a
// string value; KindRaw carries a pre-rendered markup string expanded by
// the host document's parser. Props holds attributes, with the class
// string under "class" and the nested style mapping (Styles) under
// "style".
//
// # Element API
//
// Elements are created with variadic factory functions:
//
//	Div(Class("menu"),
//	    Ul(
//	        Li(Text("first")),
//	        Li(Text("second")),
//	    ),
//	)
//
// or directly with Element, Text and HTML.
//
// # Reconciliation
//
// Render(container, next...) walks the container's live children and the
// desired children in lockstep by index, reusing live nodes where the kind
// and tag line up, rewriting attributes and styles minimally, and
// replacing on mismatch. Children are compared positionally; there is no
// keying. Each consumed VNode is left holding a back-reference (Ref) to
// the live node it produced or adopted.
//
// Parse builds a virtual tree from an existing live subtree, optionally
// marking regions opaque via a Predicate; opaque regions are never touched
// by later renders.
//
// Every render call is synchronous and completes before returning. No
// batching, no scheduling, no I/O.
package vdom

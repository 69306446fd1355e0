// Package topiary provides the public API for the Topiary reconciliation
// engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/topiary-ui/topiary"
//
// Usage:
//
//	doc := topiary.NewDocument()
//	body := doc.Body()
//	topiary.Render(body,
//	    el.Div(el.Class("menu"),
//	        el.Ul(el.Li(el.Text("first"))),
//	    ),
//	)
//
// Element constructors live in the el package, which is designed to be
// dot-imported alongside this one.
package topiary

import (
	"io"

	"github.com/topiary-ui/topiary/pkg/dom"
	"github.com/topiary-ui/topiary/pkg/vdom"
)

// =============================================================================
// Virtual tree primitives (re-export from pkg/vdom)
// =============================================================================

// VNode is a node in a virtual tree description.
type VNode = vdom.VNode

// VKind discriminates the virtual node variants.
type VKind = vdom.VKind

// Virtual node kinds.
const (
	KindElement = vdom.KindElement
	KindText    = vdom.KindText
	KindRaw     = vdom.KindRaw
)

// Props is the attribute map of an element description.
type Props = vdom.Props

// Attr is a single attribute for element constructors.
type Attr = vdom.Attr

// Styles is an inline style mapping.
type Styles = vdom.Styles

// Element constructs an element description with explicit attributes.
func Element(tag string, attrs Props, children ...*VNode) *VNode {
	return vdom.Element(tag, attrs, children...)
}

// Text constructs a text description.
func Text(value string) *VNode {
	return vdom.Text(value)
}

// Textf constructs a text description from a format string.
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

// HTML constructs a raw markup description. The markup is inserted into
// the live tree verbatim, so it must come from trusted input.
func HTML(markup string) *VNode {
	return vdom.HTML(markup)
}

// =============================================================================
// Live document (re-export from pkg/dom)
// =============================================================================

// Document is a live HTML document.
type Document = dom.Document

// Node is a handle to a live document node.
type Node = dom.Node

// Mutation describes one write applied to a live document.
type Mutation = dom.Mutation

// Op identifies the kind of a document mutation.
type Op = dom.Op

// NewDocument constructs an empty live document with the standard
// html/head/body skeleton.
func NewDocument(opts ...dom.Option) *Document {
	return dom.NewDocument(opts...)
}

// ParseDocument parses HTML from r into a live document.
func ParseDocument(r io.Reader, opts ...dom.Option) (*Document, error) {
	return dom.ParseDocument(r, opts...)
}

// =============================================================================
// Reconciliation (re-export from pkg/vdom)
// =============================================================================

// Reconciler patches live trees to match virtual descriptions.
type Reconciler = vdom.Reconciler

// NewReconciler returns a Reconciler with the given options applied.
var NewReconciler = vdom.New

// Render reconciles container's children against next using the default
// reconciler. Live nodes are reused in place where the description
// matches, and every reachable description node has its Ref set to the
// live node realizing it when Render returns.
func Render(container *Node, next ...*VNode) {
	vdom.Render(container, next...)
}

// Predicate reports whether Parse should descend into an element.
// Returning false marks the element opaque: it is described by tag and
// attributes only, and reconciliation never touches its contents.
type Predicate = vdom.Predicate

// Parse converts a live subtree into its virtual description, leaving a
// back-reference to the live node on every parsed description node.
func Parse(live *Node, pred Predicate) *VNode {
	return vdom.Parse(live, pred)
}

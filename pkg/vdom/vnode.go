package vdom

import (
	"fmt"
	"strings"

	"github.com/topiary-ui/topiary/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <li>, etc.
	KindText                 // Plain text node
	KindRaw                  // Pre-rendered markup, expanded by the parser
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. A tree of VNodes describes desired
// document content; it is transient and consumed by one Render call,
// which leaves Ref pointing at the live node the description produced or
// adopted.
type VNode struct {
	Kind     VKind    // Node variant
	Tag      string   // Element tag name, lowercase (e.g. "div")
	Attrs    Props    // Element attributes; "class" and "style" are distinguished
	Children []*VNode // Element children, in order
	Text     string   // For KindText: the node value
	Markup   string   // For KindRaw: the markup string
	Opaque   bool     // Element subtree excluded from reconciliation

	// Ref is the back-reference to the live node, set by Render and
	// Parse. It is a non-owning handle; live-node lifetime belongs to
	// the document tree.
	Ref *dom.Node
}

// Props holds element attributes. Keys are lowercase attribute names; the
// class string lives under "class" and the style mapping under "style".
type Props map[string]any

// Styles is the nested style mapping: CSS property name to value.
type Styles map[string]string

// Attr represents a single attribute for the factory functions.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Element builds an element node. The tag is lowercased; nil children are
// skipped. A nil attrs map is equivalent to an empty one.
func Element(tag string, attrs Props, children ...*VNode) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   strings.ToLower(tag),
		Attrs: attrs,
	}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// Text builds a text node.
func Text(value string) *VNode {
	return &VNode{Kind: KindText, Text: value}
}

// Textf builds a text node with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode {
	return &VNode{Kind: KindText, Text: fmt.Sprintf(format, args...)}
}

// HTML builds a raw-markup node. The markup is expanded by the document's
// fragment parser when rendered and is otherwise treated as opaque
// content: an unchanged markup string is never touched again, a changed
// one is replaced wholesale.
func HTML(markup string) *VNode {
	return &VNode{Kind: KindRaw, Markup: markup}
}

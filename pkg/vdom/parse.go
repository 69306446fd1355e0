package vdom

import "github.com/topiary-ui/topiary/pkg/dom"

// Predicate classifies a live element as reconcilable or not. Returning
// false marks the element opaque: its subtree is not parsed and later
// renders leave it exactly as external code last left it. The predicate
// is consulted once per visited element; descendants of an opaque element
// are never visited at all.
type Predicate func(*dom.Node) bool

// Parse builds a virtual tree mirroring an existing live subtree. Element
// nodes become KindElement with the lowercase tag, the class string under
// "class", the style mapping under "style" and children parsed
// recursively; text nodes become KindText. Other node kinds produce
// nothing and are not descended into. Every produced node has Ref bound
// to its live counterpart. A nil predicate treats everything as
// reconcilable.
func Parse(live *dom.Node, pred Predicate) *VNode {
	if live == nil {
		return nil
	}
	switch live.Type() {
	case dom.ElementNode:
		node := &VNode{
			Kind:  KindElement,
			Tag:   live.TagName(),
			Attrs: readAttrs(live),
			Ref:   live,
		}
		if pred != nil && !pred(live) {
			node.Opaque = true
			return node
		}
		for _, child := range live.ChildNodes() {
			if cv := Parse(child, pred); cv != nil {
				node.Children = append(node.Children, cv)
			}
		}
		return node

	case dom.TextNode:
		return &VNode{Kind: KindText, Text: live.Data(), Ref: live}

	default:
		return nil
	}
}

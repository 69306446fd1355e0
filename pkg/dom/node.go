package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// NodeType classifies a node.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
	DoctypeNode
	DocumentNode
	OtherNode
)

// String returns a human-readable name for the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DoctypeNode:
		return "doctype"
	case DocumentNode:
		return "document"
	default:
		return "other"
	}
}

// Attribute is one attribute of an element node.
type Attribute struct {
	Key   string
	Value string
}

// Node is the canonical handle for one node in a Document. Handles compare
// by pointer identity: two handles are equal exactly when they refer to the
// same underlying node.
type Node struct {
	doc      *Document
	id       string
	n        *html.Node
	userData any
}

// ID returns the document-unique node ID, assigned on first adoption.
func (n *Node) ID() string { return n.id }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Type returns the node's classification.
func (n *Node) Type() NodeType {
	switch n.n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	case html.CommentNode:
		return CommentNode
	case html.DoctypeNode:
		return DoctypeNode
	case html.DocumentNode:
		return DocumentNode
	default:
		return OtherNode
	}
}

// NodeName returns the uppercase tag name for elements and the usual
// #-prefixed names for the other kinds.
func (n *Node) NodeName() string {
	switch n.Type() {
	case ElementNode:
		return strings.ToUpper(n.n.Data)
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case DocumentNode:
		return "#document"
	default:
		return n.n.Data
	}
}

// TagName returns the lowercase tag name, or "" for non-elements.
func (n *Node) TagName() string {
	if n.Type() != ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

// -----------------------------------------------------------------------------
// Attributes
// -----------------------------------------------------------------------------

func (n *Node) findAttr(name string) int {
	for i, a := range n.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return i
		}
	}
	return -1
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	if i := n.findAttr(name); i >= 0 {
		return n.n.Attr[i].Val
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	return n.findAttr(name) >= 0
}

// Attrs returns a copy of the element's attributes in document order.
func (n *Node) Attrs() []Attribute {
	if len(n.n.Attr) == 0 {
		return nil
	}
	attrs := make([]Attribute, 0, len(n.n.Attr))
	for _, a := range n.n.Attr {
		if a.Namespace != "" {
			continue
		}
		attrs = append(attrs, Attribute{Key: strings.ToLower(a.Key), Value: a.Val})
	}
	return attrs
}

func (n *Node) setAttrRaw(name, value string) {
	if i := n.findAttr(name); i >= 0 {
		n.n.Attr[i].Val = value
		return
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

func (n *Node) removeAttrRaw(name string) bool {
	i := n.findAttr(name)
	if i < 0 {
		return false
	}
	n.n.Attr = append(n.n.Attr[:i], n.n.Attr[i+1:]...)
	return true
}

// SetAttr writes the named attribute. The attribute name is lowercased.
// Every call emits a mutation, matching observer semantics of a live
// document: writing an unchanged value is still an observable write.
func (n *Node) SetAttr(name, value string) {
	name = strings.ToLower(name)
	n.setAttrRaw(name, value)
	n.doc.notify(Mutation{Op: OpSetAttr, Target: n, Attr: name, Value: value})
}

// RemoveAttr removes the named attribute. A mutation is emitted only when
// the attribute was present.
func (n *Node) RemoveAttr(name string) {
	name = strings.ToLower(name)
	if n.removeAttrRaw(name) {
		n.doc.notify(Mutation{Op: OpRemoveAttr, Target: n, Attr: name})
	}
}

// -----------------------------------------------------------------------------
// Class property
// -----------------------------------------------------------------------------

// ClassName returns the element's class attribute value.
func (n *Node) ClassName() string {
	return n.Attr("class")
}

// SetClassName writes the class through the property path. Setting ""
// drops the class attribute entirely. As a property write, every call
// emits a mutation regardless of whether the value changed.
func (n *Node) SetClassName(v string) {
	if v == "" {
		n.removeAttrRaw("class")
	} else {
		n.setAttrRaw("class", v)
	}
	n.doc.notify(Mutation{Op: OpSetClass, Target: n, Attr: "class", Value: v})
}

// Style returns the element's inline style view.
func (n *Node) Style() *InlineStyle {
	return &InlineStyle{n: n}
}

// -----------------------------------------------------------------------------
// Text data
// -----------------------------------------------------------------------------

// Data returns a text node's value (or the raw data of other node kinds).
func (n *Node) Data() string {
	return n.n.Data
}

// SetData writes a text node's value. As a property write, every call
// emits a mutation.
func (n *Node) SetData(v string) {
	n.n.Data = v
	n.doc.notify(Mutation{Op: OpSetText, Target: n, Value: v})
}

// -----------------------------------------------------------------------------
// Tree structure
// -----------------------------------------------------------------------------

// ParentNode returns the parent handle, or nil for detached nodes and the
// document itself.
func (n *Node) ParentNode() *Node { return n.doc.adopt(n.n.Parent) }

// FirstChild returns the first child handle, or nil.
func (n *Node) FirstChild() *Node { return n.doc.adopt(n.n.FirstChild) }

// LastChild returns the last child handle, or nil.
func (n *Node) LastChild() *Node { return n.doc.adopt(n.n.LastChild) }

// NextSibling returns the following sibling handle, or nil.
func (n *Node) NextSibling() *Node { return n.doc.adopt(n.n.NextSibling) }

// PrevSibling returns the preceding sibling handle, or nil.
func (n *Node) PrevSibling() *Node { return n.doc.adopt(n.n.PrevSibling) }

// ChildNodes returns a snapshot of the node's children in order.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, n.doc.adopt(c))
	}
	return children
}

// ChildCount returns the number of children without materializing handles.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// AppendChild detaches c from its current position if attached, then
// appends it as the last child of n.
func (n *Node) AppendChild(c *Node) {
	n.InsertBefore(c, nil)
}

// InsertBefore detaches c if attached, then inserts it as a child of n
// immediately before ref. A nil ref appends.
func (n *Node) InsertBefore(c, ref *Node) {
	c.Detach()
	if ref == nil {
		n.n.AppendChild(c.n)
	} else {
		n.n.InsertBefore(c.n, ref.n)
	}
	n.doc.notify(Mutation{Op: OpInsert, Target: c, Parent: n})
}

// RemoveChild removes c from n. It is a no-op when c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c.n.Parent != n.n {
		return
	}
	n.n.RemoveChild(c.n)
	n.doc.notify(Mutation{Op: OpRemove, Target: c, Parent: n})
}

// ReplaceChild inserts nu in old's position and removes old.
func (n *Node) ReplaceChild(nu, old *Node) {
	n.InsertBefore(nu, old)
	n.RemoveChild(old)
}

// Detach removes the node from its parent, if any. The handle stays valid
// and the node can be re-inserted.
func (n *Node) Detach() {
	parent := n.n.Parent
	if parent == nil {
		return
	}
	parent.RemoveChild(n.n)
	n.doc.notify(Mutation{Op: OpRemove, Target: n, Parent: n.doc.adopt(parent)})
}

// -----------------------------------------------------------------------------
// Serialization
// -----------------------------------------------------------------------------

// InnerHTML serializes the node's children.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			n.doc.logger.Debug("render failed", "node", n.id, "error", err)
			return ""
		}
	}
	return buf.String()
}

// OuterHTML serializes the node itself.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.n); err != nil {
		n.doc.logger.Debug("render failed", "node", n.id, "error", err)
		return ""
	}
	return buf.String()
}

// -----------------------------------------------------------------------------
// User data
// -----------------------------------------------------------------------------

// SetUserData attaches an arbitrary value to the handle. The document does
// not interpret it; the reconciler uses it for raw-markup bookkeeping.
func (n *Node) SetUserData(v any) { n.userData = v }

// UserData returns the value set with SetUserData, or nil.
func (n *Node) UserData() any { return n.userData }

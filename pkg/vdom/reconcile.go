package vdom

import (
	"log/slog"

	"github.com/topiary-ui/topiary/pkg/dom"
)

// rawMarker is the bookkeeping a rendered raw-markup node leaves on its
// anchor (first produced) live node: the markup string it came from and
// the number of live siblings the expansion produced. One raw VNode
// occupies one virtual slot but claims span live slots in the positional
// walk.
type rawMarker struct {
	markup string
	span   int
}

// Reconciler patches live children to match virtual descriptions. The
// zero configuration (used by the package-level Render) is sufficient for
// most callers; options exist for the ambient pieces.
type Reconciler struct {
	logger *slog.Logger
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithLogger sets the structured logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Reconciler.
func New(opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReconciler = New()

// Render reconciles container's children using the default Reconciler.
func Render(container *dom.Node, next ...*VNode) {
	defaultReconciler.Render(container, next...)
}

// Render updates container's live children to match next, reusing
// existing live nodes wherever the kind and tag line up and rewriting
// attributes, styles and text minimally. The container itself is never
// diffed: its tag and attributes are left alone. The call is synchronous;
// all mutations complete before it returns. Nil entries in next are
// skipped.
func (r *Reconciler) Render(container *dom.Node, next ...*VNode) {
	r.reconcileChildren(container, next)
}

// reconcileChildren is the positional walk of spec'd behavior: live
// children and virtual children advance in lockstep by index, surplus
// live children are removed from the tail, surplus virtual children are
// appended fresh.
func (r *Reconciler) reconcileChildren(parent *dom.Node, next []*VNode) {
	live := parent.ChildNodes()
	li := 0

	for _, v := range next {
		if v == nil {
			continue
		}
		if li >= len(live) {
			r.insertFresh(parent, nil, v)
			continue
		}
		li = r.step(parent, live, li, v)
	}

	for ; li < len(live); li++ {
		parent.RemoveChild(live[li])
	}
}

// step reconciles one virtual node against the live child at index li and
// returns the index of the first live child it did not consume.
func (r *Reconciler) step(parent *dom.Node, live []*dom.Node, li int, v *VNode) int {
	cur := live[li]

	// An opaque description owns this position outright: nothing is
	// compared, nothing is written.
	if v.Opaque {
		v.Ref = cur
		if marker, ok := cur.UserData().(rawMarker); ok {
			return min(li+marker.span, len(live))
		}
		return li + 1
	}

	// Raw spans are atomic: the anchor carries the marker, the walk
	// treats the whole span as one slot.
	if marker, ok := cur.UserData().(rawMarker); ok {
		if v.Kind == KindRaw && v.Markup == marker.markup {
			v.Ref = cur
			return li + marker.span
		}
		end := min(li+marker.span, len(live))
		r.logger.Debug("evicting raw span", "node", cur.ID(), "span", marker.span)
		for i := li; i < end; i++ {
			parent.RemoveChild(live[i])
		}
		var before *dom.Node
		if end < len(live) {
			before = live[end]
		}
		r.insertFresh(parent, before, v)
		return end
	}

	switch {
	case v.Kind == KindRaw:
		// No association at this position yet. The expansion is
		// inserted here; the current live child keeps its slot for
		// the next virtual node.
		r.insertFresh(parent, cur, v)
		return li

	case v.Kind == KindElement && cur.Type() == dom.ElementNode && cur.TagName() == v.Tag:
		applyAttrs(cur, readAttrs(cur), v.Attrs)
		v.Ref = cur
		r.reconcileChildren(cur, v.Children)
		return li + 1

	case v.Kind == KindText && cur.Type() == dom.TextNode:
		if cur.Data() != v.Text {
			cur.SetData(v.Text)
		}
		v.Ref = cur
		return li + 1

	default:
		// Kind or tag mismatch: fresh content takes the slot, the old
		// node is discarded.
		r.insertFresh(parent, cur, v)
		parent.RemoveChild(cur)
		return li + 1
	}
}

// insertFresh builds v's live form from scratch and inserts it before the
// given sibling (nil appends).
func (r *Reconciler) insertFresh(parent *dom.Node, before *dom.Node, v *VNode) {
	for _, built := range r.buildNodes(parent.Document(), v) {
		parent.InsertBefore(built, before)
	}
}

// buildNodes creates the live node(s) described by v, detached. Elements
// get their attributes applied as net-new and children built recursively;
// raw markup is expanded through the document's fragment parser and its
// anchor marked with the producing markup and span.
func (r *Reconciler) buildNodes(doc *dom.Document, v *VNode) []*dom.Node {
	switch v.Kind {
	case KindElement:
		el := doc.CreateElement(v.Tag)
		applyAttrs(el, nil, v.Attrs)
		for _, child := range v.Children {
			if child == nil {
				continue
			}
			for _, built := range r.buildNodes(doc, child) {
				el.AppendChild(built)
			}
		}
		v.Ref = el
		return []*dom.Node{el}

	case KindText:
		txt := doc.CreateTextNode(v.Text)
		v.Ref = txt
		return []*dom.Node{txt}

	case KindRaw:
		nodes, err := doc.ParseFragment(v.Markup)
		if err != nil {
			r.logger.Warn("raw markup did not parse", "error", err)
			return nil
		}
		if len(nodes) == 0 {
			return nil
		}
		nodes[0].SetUserData(rawMarker{markup: v.Markup, span: len(nodes)})
		v.Ref = nodes[0]
		return nodes

	default:
		return nil
	}
}

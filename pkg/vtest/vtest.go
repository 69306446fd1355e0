package vtest

import (
	"testing"

	"github.com/topiary-ui/topiary/pkg/dom"
)

// NewFixture builds an empty document plus a container div attached to
// its body, the usual starting point for reconciliation tests.
func NewFixture() (*dom.Document, *dom.Node) {
	doc := dom.NewDocument()
	container := doc.CreateElement("div")
	doc.Body().AppendChild(container)
	return doc, container
}

// Recorder captures document mutations for assertions. Attach it after
// arranging the starting state so only the writes under test are
// recorded.
type Recorder struct {
	mutations []dom.Mutation
	cancel    func()
}

// NewRecorder creates a detached Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// AttachTo subscribes the recorder to d's mutations and returns the
// recorder for chaining. Attaching twice moves the subscription.
func (r *Recorder) AttachTo(d *dom.Document) *Recorder {
	r.Detach()
	r.cancel = d.Observe(func(m dom.Mutation) {
		r.mutations = append(r.mutations, m)
	})
	return r
}

// Detach unsubscribes the recorder. Recorded mutations are kept.
func (r *Recorder) Detach() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Mutations returns everything recorded so far, in order.
func (r *Recorder) Mutations() []dom.Mutation {
	return r.mutations
}

// Count returns the number of recorded mutations.
func (r *Recorder) Count() int {
	return len(r.mutations)
}

// CountOf returns the number of recorded mutations with the given op.
func (r *Recorder) CountOf(op dom.Op) int {
	n := 0
	for _, m := range r.mutations {
		if m.Op == op {
			n++
		}
	}
	return n
}

// Reset discards recorded mutations, keeping the subscription.
func (r *Recorder) Reset() {
	r.mutations = nil
}

// ExpectNoMutations asserts the recorder saw zero writes.
//
// Example:
//
//	vtest.ExpectNoMutations(t, rec)
func ExpectNoMutations(t *testing.T, r *Recorder) {
	t.Helper()
	if len(r.mutations) != 0 {
		t.Errorf("expected no mutations, got %d:\n%s", len(r.mutations), describe(r.mutations))
	}
}

// ExpectOpCount asserts the recorder saw exactly want mutations of op.
func ExpectOpCount(t *testing.T, r *Recorder, op dom.Op, want int) {
	t.Helper()
	if got := r.CountOf(op); got != want {
		t.Errorf("expected %d %s mutations, got %d:\n%s", want, op, got, describe(r.mutations))
	}
}

// ExpectTag asserts a live node is an element with the given lowercase
// tag.
func ExpectTag(t *testing.T, n *dom.Node, tag string) {
	t.Helper()
	if n == nil {
		t.Errorf("expected <%s> element, got nil node", tag)
		return
	}
	if n.Type() != dom.ElementNode || n.TagName() != tag {
		t.Errorf("expected <%s> element, got %s %q", tag, n.Type(), n.NodeName())
	}
}

// ExpectAttr asserts an attribute's value on a live node.
func ExpectAttr(t *testing.T, n *dom.Node, name, want string) {
	t.Helper()
	if !n.HasAttr(name) {
		t.Errorf("expected attribute %s=%q, attribute is absent", name, want)
		return
	}
	if got := n.Attr(name); got != want {
		t.Errorf("expected attribute %s=%q, got %q", name, want, got)
	}
}

// ExpectNoAttr asserts an attribute is absent on a live node.
func ExpectNoAttr(t *testing.T, n *dom.Node, name string) {
	t.Helper()
	if n.HasAttr(name) {
		t.Errorf("expected attribute %s to be absent, got %q", name, n.Attr(name))
	}
}

// ExpectText asserts a live node is a text node with the given value.
func ExpectText(t *testing.T, n *dom.Node, want string) {
	t.Helper()
	if n == nil {
		t.Errorf("expected text %q, got nil node", want)
		return
	}
	if n.Type() != dom.TextNode {
		t.Errorf("expected text node, got %s %q", n.Type(), n.NodeName())
		return
	}
	if got := n.Data(); got != want {
		t.Errorf("expected text %q, got %q", want, got)
	}
}

// ExpectChildCount asserts the number of live children.
func ExpectChildCount(t *testing.T, n *dom.Node, want int) {
	t.Helper()
	if got := n.ChildCount(); got != want {
		t.Errorf("expected %d children, got %d:\n%s", want, got, n.InnerHTML())
	}
}

// ExpectHTML asserts a node's serialized children.
func ExpectHTML(t *testing.T, n *dom.Node, want string) {
	t.Helper()
	if got := n.InnerHTML(); got != want {
		t.Errorf("expected innerHTML %q, got %q", want, got)
	}
}

func describe(ms []dom.Mutation) string {
	out := ""
	for _, m := range ms {
		out += "  " + m.Op.String()
		if m.Attr != "" {
			out += " " + m.Attr
		}
		if m.Value != "" {
			out += "=" + m.Value
		}
		if m.Target != nil {
			out += " on " + m.Target.NodeName()
		}
		out += "\n"
	}
	return out
}

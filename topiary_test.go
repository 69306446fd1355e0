package topiary

import (
	"strings"
	"testing"

	"github.com/topiary-ui/topiary/pkg/dom"
	"github.com/topiary-ui/topiary/pkg/vdom"
)

// =============================================================================
// Alias Tests
// =============================================================================

func TestAliasesMatchCorePackages(t *testing.T) {
	// These assignments compile only if the aliases are the same types.
	var vnode *VNode
	var coreVNode *vdom.VNode
	vnode = coreVNode
	_ = vnode

	var node *Node
	var coreNode *dom.Node
	node = coreNode
	_ = node

	var kind VKind = KindRaw
	if kind != vdom.KindRaw {
		t.Errorf("KindRaw = %v, want %v", kind, vdom.KindRaw)
	}
}

// =============================================================================
// End-to-end Tests
// =============================================================================

func TestRenderThroughFacade(t *testing.T) {
	doc := NewDocument()
	body := doc.Body()

	Render(body,
		Element("div", Props{"class": "menu"},
			Element("ul", nil,
				Element("li", nil, Text("first")),
				Element("li", nil, Text("second")),
			),
		),
	)

	html := body.InnerHTML()
	want := `<div class="menu"><ul><li>first</li><li>second</li></ul></div>`
	if html != want {
		t.Errorf("InnerHTML = %q, want %q", html, want)
	}
}

func TestRenderIsIdempotentThroughFacade(t *testing.T) {
	doc := NewDocument()
	body := doc.Body()

	tree := func() *VNode {
		return Element("p", Props{"id": "x"}, Text("hello"))
	}

	Render(body, tree())

	writes := 0
	cancel := doc.Observe(func(m Mutation) { writes++ })
	defer cancel()

	Render(body, tree())

	if writes != 0 {
		t.Errorf("re-render of equal description performed %d writes, want 0", writes)
	}
}

func TestParseDocumentAndParse(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<html><head></head><body><div id="root"><span>hi</span></div></body></html>`,
	))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	root := doc.Body().FirstChild()
	v := Parse(root, nil)
	if v == nil {
		t.Fatal("Parse returned nil")
	}
	if v.Tag != "div" {
		t.Errorf("tag = %q, want %q", v.Tag, "div")
	}
	if v.Ref != root {
		t.Error("parsed description should reference the live node")
	}
	if len(v.Children) != 1 || v.Children[0].Tag != "span" {
		t.Fatalf("unexpected children: %#v", v.Children)
	}
}

func TestRawMarkupThroughFacade(t *testing.T) {
	doc := NewDocument()
	body := doc.Body()

	Render(body, HTML("<b>foo</b>"))

	live := body.FirstChild()
	if live == nil {
		t.Fatal("expected a live child")
	}
	if live.NodeName() != "B" {
		t.Errorf("NodeName = %q, want %q", live.NodeName(), "B")
	}
	if live.InnerHTML() != "foo" {
		t.Errorf("InnerHTML = %q, want %q", live.InnerHTML(), "foo")
	}
}

func TestNewReconcilerThroughFacade(t *testing.T) {
	doc := NewDocument()
	body := doc.Body()

	rec := NewReconciler()
	rec.Render(body, Textf("%d items", 3))

	if got := body.InnerHTML(); got != "3 items" {
		t.Errorf("InnerHTML = %q, want %q", got, "3 items")
	}
}

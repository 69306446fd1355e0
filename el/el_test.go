package el

import (
	"reflect"
	"testing"

	"github.com/topiary-ui/topiary/pkg/vdom"
)

var (
	_ vdom.VNode  = VNode{}
	_ vdom.VKind  = VKind(0)
	_ vdom.Props  = Props{}
	_ vdom.Attr   = Attr{}
	_ vdom.Styles = Styles{}
)

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vdom.ID("root"),
		vdom.Class("one", "two"),
		"hello",
		vdom.Span("child"),
	}

	got := Div(args...)
	want := vdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchVDOM(t *testing.T) {
	tests := []struct {
		name string
		ctor func(args ...any) *VNode
		tag  string
	}{
		{"Div", Div, "div"},
		{"Span", Span, "span"},
		{"Ul", Ul, "ul"},
		{"Li", Li, "li"},
		{"Input", Input, "input"},
		{"Table", Table, "table"},
		{"H1", H1, "h1"},
		{"Button", Button, "button"},
		{"Dialog", Dialog, "dialog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := tt.ctor()
			if node.Tag != tt.tag {
				t.Errorf("%s() tag = %q, want %q", tt.name, node.Tag, tt.tag)
			}
			if node.Kind != vdom.KindElement {
				t.Errorf("%s() kind = %v, want %v", tt.name, node.Kind, vdom.KindElement)
			}
		})
	}
}

func TestAttributeHelpersMatchVDOM(t *testing.T) {
	tests := []struct {
		name string
		got  Attr
		want Attr
	}{
		{"ID", ID("x"), vdom.ID("x")},
		{"Class", Class("a", "b"), vdom.Class("a", "b")},
		{"Style", Style(Styles{"color": "red"}), vdom.Style(vdom.Styles{"color": "red"})},
		{"Data", Data("id", "7"), vdom.Data("id", "7")},
		{"Disabled", Disabled(true), vdom.Disabled(true)},
		{"TabIndex", TabIndex(2), vdom.TabIndex(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %#v, want %#v", tt.got, tt.want)
			}
		})
	}
}

func TestTreeComposition(t *testing.T) {
	items := []string{"home", "about"}

	menu := Nav(Class("menu"),
		Ul(Range(items, func(item string, i int) *VNode {
			return Li(Text(item))
		})),
		If(false, Span(Text("hidden"))),
	)

	if menu.Tag != "nav" {
		t.Fatalf("tag = %q, want %q", menu.Tag, "nav")
	}
	// The false If contributes nil, which the constructor drops.
	if len(menu.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(menu.Children))
	}
	list := menu.Children[0]
	if len(list.Children) != 2 {
		t.Fatalf("list children = %d, want 2", len(list.Children))
	}
	if list.Children[0].Children[0].Text != "home" {
		t.Errorf("first item text = %q, want %q", list.Children[0].Children[0].Text, "home")
	}
}

package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/topiary-ui/topiary/pkg/vdom"
)

func BenchmarkRenderSimple(b *testing.B) {
	r := NewRenderer(Config{})
	node := vdom.Div(vdom.Class("card"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderToString(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	r := NewRenderer(Config{})

	var items []any
	for i := 0; i < 1000; i++ {
		items = append(items, vdom.Li(vdom.Text(fmt.Sprintf("Item %d", i))))
	}
	node := vdom.Ul(items...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderToString(node)
	}
}

func BenchmarkRenderAttributeHeavy(b *testing.B) {
	r := NewRenderer(Config{})
	node := vdom.Input(
		vdom.ID("field"),
		vdom.Class("form-input wide"),
		vdom.TypeAttr("text"),
		vdom.Name("q"),
		vdom.Placeholder("Search"),
		vdom.Required(),
		vdom.Style(vdom.Styles{"width": "20em", "color": "#333"}),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderToString(node)
	}
}

func BenchmarkRenderToWriter(b *testing.B) {
	r := NewRenderer(Config{})
	node := vdom.Div(vdom.Class("page"),
		vdom.Ul(vdom.Li(vdom.Text("one")), vdom.Li(vdom.Text("two"))),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderToWriter(io.Discard, node)
	}
}

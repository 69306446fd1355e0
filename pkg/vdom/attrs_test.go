package vdom

import (
	"testing"

	"github.com/topiary-ui/topiary/pkg/dom"
	"github.com/topiary-ui/topiary/pkg/vtest"
)

func attrFixture(t *testing.T) (*dom.Node, *vtest.Recorder) {
	t.Helper()
	doc, container := vtest.NewFixture()
	el := doc.CreateElement("div")
	container.AppendChild(el)
	rec := vtest.NewRecorder().AttachTo(doc)
	t.Cleanup(rec.Detach)
	return el, rec
}

func TestApplyAttrs_NetNew(t *testing.T) {
	el, rec := attrFixture(t)

	applyAttrs(el, nil, Props{"id": "main", "class": "card", "style": Styles{"width": "100px"}})

	if got := el.Attr("id"); got != "main" {
		t.Errorf("id = %q, want %q", got, "main")
	}
	if got := el.ClassName(); got != "card" {
		t.Errorf("class = %q, want %q", got, "card")
	}
	if got := el.Style().CSSText(); got != "width: 100px" {
		t.Errorf("style = %q, want %q", got, "width: 100px")
	}
	vtest.ExpectOpCount(t, rec, dom.OpSetAttr, 1)
	vtest.ExpectOpCount(t, rec, dom.OpSetClass, 1)
	vtest.ExpectOpCount(t, rec, dom.OpSetStyle, 1)
}

func TestApplyAttrs_UnchangedIsSilent(t *testing.T) {
	el, rec := attrFixture(t)
	props := Props{"id": "main", "class": "card", "style": Styles{"width": "100px"}}
	applyAttrs(el, nil, props)
	rec.Reset()

	applyAttrs(el, readAttrs(el), props)

	vtest.ExpectNoMutations(t, rec)
}

func TestApplyAttrs_ChangedValue(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"id": "foo"})
	rec.Reset()

	applyAttrs(el, readAttrs(el), Props{"id": "bar"})

	if got := el.Attr("id"); got != "bar" {
		t.Errorf("id = %q, want %q", got, "bar")
	}
	if rec.Count() != 1 {
		t.Errorf("mutations = %d, want exactly 1", rec.Count())
	}
}

func TestApplyAttrs_RemovedKey(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"id": "main", "title": "tip"})
	rec.Reset()

	applyAttrs(el, readAttrs(el), Props{"id": "main"})

	if el.HasAttr("title") {
		t.Error("title should have been removed")
	}
	vtest.ExpectOpCount(t, rec, dom.OpRemoveAttr, 1)
	if rec.Count() != 1 {
		t.Errorf("mutations = %d, want exactly 1", rec.Count())
	}
}

func TestApplyAttrs_ClassRemoval(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"class": "card"})
	rec.Reset()

	applyAttrs(el, readAttrs(el), Props{})

	if el.HasAttr("class") {
		t.Error("class should have been cleared")
	}
	vtest.ExpectOpCount(t, rec, dom.OpSetClass, 1)
}

func TestApplyAttrs_ClassGoesThroughProperty(t *testing.T) {
	el, rec := attrFixture(t)

	applyAttrs(el, nil, Props{"class": "a b"})

	vtest.ExpectOpCount(t, rec, dom.OpSetClass, 1)
	vtest.ExpectOpCount(t, rec, dom.OpSetAttr, 0)
}

func TestApplyAttrs_EmptyClassOnFreshElement(t *testing.T) {
	el, rec := attrFixture(t)

	applyAttrs(el, nil, Props{"class": ""})

	vtest.ExpectNoMutations(t, rec)
	if el.HasAttr("class") {
		t.Error("empty class on a classless element should write nothing")
	}
}

func TestApplyAttrs_BooleanAttrs(t *testing.T) {
	el, rec := attrFixture(t)

	applyAttrs(el, nil, Props{"disabled": true})
	if !el.HasAttr("disabled") {
		t.Fatal("disabled should be present")
	}
	if got := el.Attr("disabled"); got != "" {
		t.Errorf("disabled = %q, want empty presence value", got)
	}

	rec.Reset()
	applyAttrs(el, readAttrs(el), Props{"disabled": true})
	vtest.ExpectNoMutations(t, rec)

	applyAttrs(el, readAttrs(el), Props{"disabled": false})
	if el.HasAttr("disabled") {
		t.Error("disabled=false should remove the attribute")
	}

	rec.Reset()
	applyAttrs(el, readAttrs(el), Props{"disabled": false})
	vtest.ExpectNoMutations(t, rec)
}

func TestApplyAttrs_StyleSingleWrite(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"style": Styles{"width": "100px", "color": "red"}})
	rec.Reset()

	applyAttrs(el, readAttrs(el), Props{"style": Styles{"width": "50px"}})

	if got := el.Style().CSSText(); got != "width: 50px" {
		t.Errorf("style = %q, want %q (old keys replaced wholesale)", got, "width: 50px")
	}
	if rec.Count() != 1 {
		t.Errorf("mutations = %d, want exactly 1 style write", rec.Count())
	}
	vtest.ExpectOpCount(t, rec, dom.OpSetStyle, 1)
}

func TestApplyAttrs_StyleNoOp(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"style": Styles{"width": "100px"}})
	rec.Reset()

	// Same mapping again, and again with a different key order source.
	applyAttrs(el, readAttrs(el), Props{"style": Styles{"width": "100px"}})
	applyAttrs(el, readAttrs(el), Props{"style": "width:100px"})

	vtest.ExpectNoMutations(t, rec)
}

func TestApplyAttrs_StyleRemoval(t *testing.T) {
	el, rec := attrFixture(t)
	applyAttrs(el, nil, Props{"style": Styles{"width": "100px"}})
	rec.Reset()

	applyAttrs(el, readAttrs(el), Props{})

	if el.HasAttr("style") {
		t.Error("style should have been cleared")
	}
	vtest.ExpectOpCount(t, rec, dom.OpSetStyle, 1)
}

func TestReadAttrs(t *testing.T) {
	doc, _ := vtest.NewFixture()
	nodes, err := doc.ParseFragment(`<div id="a" class="card" style="width:100px;color:red" data-x="1"></div>`)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	el := nodes[0]

	props := readAttrs(el)

	if props["id"] != "a" {
		t.Errorf("id = %v, want %q", props["id"], "a")
	}
	if props["class"] != "card" {
		t.Errorf("class = %v, want %q", props["class"], "card")
	}
	if props["data-x"] != "1" {
		t.Errorf("data-x = %v, want %q", props["data-x"], "1")
	}
	style, ok := props["style"].(Styles)
	if !ok {
		t.Fatalf("style = %T, want Styles", props["style"])
	}
	if style["width"] != "100px" || style["color"] != "red" {
		t.Errorf("style = %v", style)
	}
}

func TestReadAttrs_Empty(t *testing.T) {
	doc, _ := vtest.NewFixture()
	el := doc.CreateElement("div")

	if props := readAttrs(el); props != nil {
		t.Errorf("readAttrs = %v, want nil", props)
	}
}

func TestAttrValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		want    string
		present bool
	}{
		{"string", "id", "x", "x", true},
		{"int", "tabindex", 3, "3", true},
		{"int64", "tabindex", int64(-1), "-1", true},
		{"float", "max", 1.5, "1.5", true},
		{"bool true generic", "aria-hidden", true, "true", true},
		{"bool false generic", "aria-hidden", false, "false", true},
		{"bool true boolean attr", "disabled", true, "", true},
		{"bool false boolean attr", "disabled", false, "", false},
		{"unencodable", "id", struct{}{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := attrValue(tt.key, tt.value)
			if got != tt.want || present != tt.present {
				t.Errorf("attrValue(%q, %v) = (%q, %v), want (%q, %v)",
					tt.key, tt.value, got, present, tt.want, tt.present)
			}
		})
	}
}

func TestStyleText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"styles map", Styles{"width": "100px", "color": "red"}, "color: red; width: 100px"},
		{"plain map", map[string]string{"width": "100px"}, "width: 100px"},
		{"raw text", "width:100px; color:red", "color: red; width: 100px"},
		{"empty", Styles{}, ""},
		{"other type", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styleText(tt.value); got != tt.want {
				t.Errorf("styleText(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

package vdom

import "strings"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// booleanAttrs are attributes whose presence alone carries the value.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is presence-valued.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, Styles, *VNode, []*VNode,
// string (shorthand for a text child).
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      strings.ToLower(tag),
		Attrs:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			if v.Key != "" {
				node.Attrs[strings.ToLower(v.Key)] = v.Value
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					node.Attrs[strings.ToLower(attr.Key)] = attr.Value
				}
			}

		case Props:
			for key, val := range v {
				node.Attrs[strings.ToLower(key)] = val
			}

		case Styles:
			node.Attrs["style"] = v

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for a text child
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})
		}
	}

	return node
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Sectioning and headings

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func Aside(args ...any) *VNode   { return createElement("aside", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }
func H4(args ...any) *VNode      { return createElement("h4", args) }
func H5(args ...any) *VNode      { return createElement("h5", args) }
func H6(args ...any) *VNode      { return createElement("h6", args) }

// Grouping content

func Div(args ...any) *VNode        { return createElement("div", args) }
func P(args ...any) *VNode          { return createElement("p", args) }
func Span(args ...any) *VNode       { return createElement("span", args) }
func Pre(args ...any) *VNode        { return createElement("pre", args) }
func Blockquote(args ...any) *VNode { return createElement("blockquote", args) }
func Ul(args ...any) *VNode         { return createElement("ul", args) }
func Ol(args ...any) *VNode         { return createElement("ol", args) }
func Li(args ...any) *VNode         { return createElement("li", args) }
func Dl(args ...any) *VNode         { return createElement("dl", args) }
func Dt(args ...any) *VNode         { return createElement("dt", args) }
func Dd(args ...any) *VNode         { return createElement("dd", args) }
func Hr(args ...any) *VNode         { return createElement("hr", args) }
func Figure(args ...any) *VNode     { return createElement("figure", args) }
func Figcaption(args ...any) *VNode { return createElement("figcaption", args) }

// Text-level semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func B(args ...any) *VNode      { return createElement("b", args) }
func I(args ...any) *VNode      { return createElement("i", args) }
func U(args ...any) *VNode      { return createElement("u", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Mark(args ...any) *VNode   { return createElement("mark", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Kbd(args ...any) *VNode    { return createElement("kbd", args) }
func Cite(args ...any) *VNode   { return createElement("cite", args) }
func Q(args ...any) *VNode      { return createElement("q", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }

// Embedded content

func Img(args ...any) *VNode { return createElement("img", args) }

// Tabular data

func Table(args ...any) *VNode   { return createElement("table", args) }
func Caption(args ...any) *VNode { return createElement("caption", args) }
func Thead(args ...any) *VNode   { return createElement("thead", args) }
func Tbody(args ...any) *VNode   { return createElement("tbody", args) }
func Tfoot(args ...any) *VNode   { return createElement("tfoot", args) }
func Tr(args ...any) *VNode      { return createElement("tr", args) }
func Th(args ...any) *VNode      { return createElement("th", args) }
func Td(args ...any) *VNode      { return createElement("td", args) }

// Forms

func Form(args ...any) *VNode     { return createElement("form", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Optgroup(args ...any) *VNode { return createElement("optgroup", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }
func Legend(args ...any) *VNode   { return createElement("legend", args) }
func Datalist(args ...any) *VNode { return createElement("datalist", args) }
func Output(args ...any) *VNode   { return createElement("output", args) }
func Progress(args ...any) *VNode { return createElement("progress", args) }
func Meter(args ...any) *VNode    { return createElement("meter", args) }

// Interactive elements

func Details(args ...any) *VNode { return createElement("details", args) }
func Summary(args ...any) *VNode { return createElement("summary", args) }
func Dialog(args ...any) *VNode  { return createElement("dialog", args) }

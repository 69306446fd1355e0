// Package render serializes virtual node trees to HTML text.
//
// The renderer produces the markup a freshly built tree would carry in a
// live document: attributes sorted by name, boolean attributes written
// bare, void elements left unclosed, and all text and attribute values
// escaped. Raw markup nodes pass through verbatim.
//
// # Basic Usage
//
// To render a tree to a string:
//
//	r := render.NewRenderer(render.Config{})
//	html, err := r.RenderToString(node)
//
// To stream to a writer:
//
//	err := r.RenderToWriter(w, node)
//
// Pretty mode indents block-level children for human inspection:
//
//	r := render.NewRenderer(render.Config{Pretty: true})
//
// # Security
//
// Text content and attribute values are always escaped. Raw markup is
// emitted unescaped and must come from trusted input.
package render

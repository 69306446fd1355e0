package dom

import (
	"strings"

	"github.com/topiary-ui/topiary/internal/css"
)

// InlineStyle is a view over an element's style attribute. It holds no
// state of its own: reads parse the attribute, writes replace it. Reads
// never emit mutations; every write emits exactly one OpSetStyle.
type InlineStyle struct {
	n *Node
}

// CSSText returns the canonical declaration-list text: properties
// lowercased and sorted, one "prop: value" pair per declaration.
func (s *InlineStyle) CSSText() string {
	return css.Normalize(s.n.Attr("style"))
}

// SetCSSText replaces the whole inline style with text, stored in
// canonical form. Setting an empty (or all-whitespace) list drops the
// style attribute. As a property write, every call emits a mutation.
func (s *InlineStyle) SetCSSText(text string) {
	canonical := css.Normalize(text)
	if canonical == "" {
		s.n.removeAttrRaw("style")
	} else {
		s.n.setAttrRaw("style", canonical)
	}
	s.n.doc.notify(Mutation{Op: OpSetStyle, Target: s.n, Attr: "style", Value: canonical})
}

// Get returns the value of one property, or "" if unset.
func (s *InlineStyle) Get(property string) string {
	return s.Map()[strings.ToLower(property)]
}

// Set writes one property, leaving the rest of the declaration list
// intact. The replacement is a single style write.
func (s *InlineStyle) Set(property, value string) {
	m := s.Map()
	if m == nil {
		m = make(map[string]string, 1)
	}
	m[strings.ToLower(property)] = value
	s.SetCSSText(css.Format(m))
}

// Remove clears one property. Removing the last property drops the style
// attribute. It is a no-op (and emits nothing) when the property is unset.
func (s *InlineStyle) Remove(property string) {
	m := s.Map()
	property = strings.ToLower(property)
	if _, ok := m[property]; !ok {
		return
	}
	delete(m, property)
	s.SetCSSText(css.Format(m))
}

// Map returns the declaration list as a property→value mapping. The map is
// a copy; mutating it does not touch the element.
func (s *InlineStyle) Map() map[string]string {
	return css.Map(s.n.Attr("style"))
}

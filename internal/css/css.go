// Package css parses and serializes inline style declaration lists, the
// value form of the HTML style attribute. It is deliberately small: enough
// to compare two inline styles for equality and to write a canonical form,
// not a general CSS parser.
package css

import (
	"sort"
	"strings"
)

// Decl is a single property declaration from an inline style.
type Decl struct {
	Property string
	Value    string
}

// Parse splits an inline declaration list into ordered declarations.
// Properties are lowercased; surrounding whitespace is trimmed; empty and
// malformed segments (no colon) are dropped. Duplicate properties are kept
// in order; Map applies last-wins semantics on top of this.
func Parse(text string) []Decl {
	var decls []Decl
	for _, seg := range strings.Split(text, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		prop, val, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		decls = append(decls, Decl{Property: prop, Value: val})
	}
	return decls
}

// Map parses an inline declaration list into a property→value mapping.
// For duplicate properties the last declaration wins.
func Map(text string) map[string]string {
	decls := Parse(text)
	if len(decls) == 0 {
		return nil
	}
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}

// Format serializes a mapping as a canonical declaration list: properties
// lowercased and sorted, "prop: value" pairs joined by "; ". An empty or
// nil mapping yields "". Keys that differ only in case collapse to one
// property; the value of the lexicographically last original key wins.
func Format(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	canon := make(map[string]string, len(m))
	for _, k := range keys {
		canon[strings.ToLower(k)] = m[k]
	}
	props := make([]string, 0, len(canon))
	for p := range canon {
		props = append(props, p)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p)
		b.WriteString(": ")
		b.WriteString(canon[p])
	}
	return b.String()
}

// Normalize parses text and re-serializes it canonically, so that two
// declaration lists can be compared regardless of ordering and spacing.
func Normalize(text string) string {
	return Format(Map(text))
}

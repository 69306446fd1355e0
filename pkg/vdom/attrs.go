package vdom

import (
	"strconv"
	"strings"

	"github.com/topiary-ui/topiary/internal/css"
	"github.com/topiary-ui/topiary/pkg/dom"
)

// readAttrs builds the Props view of a live element's current attributes:
// the class string under "class", the parsed style mapping under "style",
// everything else as plain strings. An attributeless element reads as nil.
func readAttrs(el *dom.Node) Props {
	attrs := el.Attrs()
	if len(attrs) == 0 {
		return nil
	}
	props := make(Props, len(attrs))
	for _, a := range attrs {
		if a.Key == "style" {
			if m := el.Style().Map(); len(m) > 0 {
				props["style"] = Styles(m)
			}
			continue
		}
		props[a.Key] = a.Value
	}
	return props
}

// applyAttrs writes the minimal set of attribute mutations taking el from
// old to next. Keys only in old are removed (class and style through
// their property paths); keys new or changed in next are written. Equal
// old/next perform zero writes; the style text in particular is compared
// against the element's current declaration list and only replaced, in a
// single write, when it differs.
func applyAttrs(el *dom.Node, old, next Props) {
	for key := range old {
		if _, ok := next[key]; ok {
			continue
		}
		switch key {
		case "class":
			el.SetClassName("")
		case "style":
			el.Style().SetCSSText("")
		default:
			el.RemoveAttr(key)
		}
	}

	for key, value := range next {
		switch key {
		case "class":
			want, _ := attrValue(key, value)
			prev, had := old[key]
			if had {
				if have, _ := attrValue(key, prev); have == want {
					continue
				}
			} else if want == "" {
				continue
			}
			el.SetClassName(want)

		case "style":
			want := styleText(value)
			if el.Style().CSSText() != want {
				el.Style().SetCSSText(want)
			}

		default:
			want, present := attrValue(key, value)
			prev, had := old[key]
			if !present {
				if had {
					el.RemoveAttr(key)
				}
				continue
			}
			if had {
				if have, ok := attrValue(key, prev); ok && have == want {
					continue
				}
			}
			el.SetAttr(key, want)
		}
	}
}

// attrValue converts an attribute value to its written string form. The
// second result is false when the attribute should be absent (boolean
// attributes set to false, or values with no attribute encoding).
func attrValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if booleanAttrs[strings.ToLower(key)] {
			return "", v
		}
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// styleText returns the canonical declaration-list text a style value
// describes. It accepts the Styles mapping form and, for convenience, raw
// declaration text.
func styleText(value any) string {
	switch v := value.(type) {
	case Styles:
		return css.Format(v)
	case map[string]string:
		return css.Format(v)
	case string:
		return css.Normalize(v)
	default:
		return ""
	}
}

package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/topiary-ui/topiary/internal/css"
	"github.com/topiary-ui/topiary/pkg/vdom"
)

// Config controls output formatting.
type Config struct {
	// Pretty inserts newlines and indentation around block-level
	// children. The default is compact single-line output.
	Pretty bool

	// Indent is the per-level indent string used in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes virtual trees to HTML text.
type Renderer struct {
	config Config
}

// NewRenderer returns a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a single tree and returns the HTML text.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf strings.Builder
	if err := r.renderNode(&buf, node, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders a single tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// RenderFragment renders a sequence of sibling trees to w, in order.
// Nil entries are skipped.
func (r *Renderer) RenderFragment(w io.Writer, nodes ...*vdom.VNode) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if err := r.renderNode(w, node, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		// Trusted markup passes through unescaped.
		_, err := io.WriteString(w, node.Markup)
		return err
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttrs(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Void elements have no content and no closing tag.
	if vdom.IsVoidElement(node.Tag) {
		return nil
	}

	block := r.config.Pretty && hasElementChild(node)
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if block {
			if err := r.indent(w, depth+1); err != nil {
				return err
			}
		}
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if block {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttrs writes the element's attributes sorted by name so output is
// deterministic regardless of map iteration order.
func (r *Renderer) renderAttrs(w io.Writer, node *vdom.VNode) error {
	if len(node.Attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Attrs[key]
		if value == nil {
			continue
		}

		if key == "style" {
			if text := styleAttrText(value); text != "" {
				if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(text)); err != nil {
					return err
				}
			}
			continue
		}

		if vdom.IsBooleanAttr(key) {
			if set, ok := value.(bool); ok {
				if set {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		text, ok := attrText(value)
		if !ok || text == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(text)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) indent(w io.Writer, depth int) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}

// attrText converts an attribute value to its serialized text.
func attrText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
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

// styleAttrText returns the canonical declaration-list text for a style
// attribute value.
func styleAttrText(value any) string {
	switch v := value.(type) {
	case vdom.Styles:
		return css.Format(v)
	case map[string]string:
		return css.Format(v)
	case string:
		return css.Normalize(v)
	default:
		return ""
	}
}

func hasElementChild(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind == vdom.KindElement {
			return true
		}
	}
	return false
}

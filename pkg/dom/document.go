package dom

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns a live html.Node tree and the bookkeeping around it:
// canonical handles, node IDs, and mutation observers.
type Document struct {
	logger *slog.Logger

	root *html.Node
	body *html.Node

	refs    map[*html.Node]*Node
	counter uint64

	observers    []observer
	nextObserver int
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the structured logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDocument builds an empty document with the minimal html/head/body
// skeleton. Body() is the usual render container.
func NewDocument(opts ...Option) *Document {
	doc := &html.Node{Type: html.DocumentNode}
	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	doc.AppendChild(root)
	root.AppendChild(head)
	root.AppendChild(body)

	d := &Document{
		logger: slog.Default(),
		root:   doc,
		body:   body,
		refs:   make(map[*html.Node]*Node),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParseDocument parses a complete HTML document from r.
func ParseDocument(r io.Reader, opts ...Option) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	d := &Document{
		logger: slog.Default(),
		root:   doc,
		body:   findElement(doc, atom.Body),
		refs:   make(map[*html.Node]*Node),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// Root returns the handle for the document node itself.
func (d *Document) Root() *Node {
	return d.adopt(d.root)
}

// Body returns the handle for the body element, or nil if the document has
// none.
func (d *Document) Body() *Node {
	return d.adopt(d.body)
}

// Logger returns the document's structured logger.
func (d *Document) Logger() *slog.Logger {
	return d.logger
}

// adopt returns the canonical handle for n, creating it on first sight.
func (d *Document) adopt(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	if ref, ok := d.refs[n]; ok {
		return ref
	}
	d.counter++
	ref := &Node{
		doc: d,
		id:  fmt.Sprintf("n%d", d.counter),
		n:   n,
	}
	d.refs[n] = ref
	return ref
}

// CreateElement builds a detached element node. The tag is lowercased.
func (d *Document) CreateElement(tag string) *Node {
	tag = strings.ToLower(tag)
	return d.adopt(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// CreateTextNode builds a detached text node.
func (d *Document) CreateTextNode(value string) *Node {
	return d.adopt(&html.Node{Type: html.TextNode, Data: value})
}

// ParseFragment parses markup in a body context and returns the resulting
// top-level nodes, detached. Parsing "" returns an empty slice.
func (d *Document) ParseFragment(markup string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	nodes := make([]*Node, 0, len(parsed))
	for _, n := range parsed {
		nodes = append(nodes, d.adopt(n))
	}
	d.logger.Debug("parsed fragment", "nodes", len(nodes))
	return nodes, nil
}

// NodeCount walks the document and returns the number of element and text
// nodes currently attached to it.
func (d *Document) NodeCount() int {
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode || n.Type == html.TextNode {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return count
}

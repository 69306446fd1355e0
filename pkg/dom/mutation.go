package dom

// Op identifies the kind of write a Mutation records.
type Op uint8

const (
	// OpSetAttr records a generic attribute write.
	OpSetAttr Op = iota
	// OpRemoveAttr records an attribute removal.
	OpRemoveAttr
	// OpSetClass records a write through the class property.
	OpSetClass
	// OpSetStyle records a style text replacement.
	OpSetStyle
	// OpSetText records a text node data write.
	OpSetText
	// OpInsert records a child insertion.
	OpInsert
	// OpRemove records a child removal.
	OpRemove
)

// String returns a human-readable name for the op.
func (o Op) String() string {
	switch o {
	case OpSetAttr:
		return "set-attr"
	case OpRemoveAttr:
		return "remove-attr"
	case OpSetClass:
		return "set-class"
	case OpSetStyle:
		return "set-style"
	case OpSetText:
		return "set-text"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Mutation describes one observable write to the document.
//
// Target is the node written to; for OpInsert and OpRemove it is the child
// being moved and Parent the container. Attr carries the attribute name for
// attribute ops; Value carries the new value where one exists (attribute
// value, class string, style text, text data).
type Mutation struct {
	Op     Op
	Target *Node
	Parent *Node
	Attr   string
	Value  string
}

// Observe registers fn to receive every subsequent mutation on the
// document. The returned cancel function unregisters it. Observers are
// invoked synchronously, on the goroutine performing the write, in
// registration order.
func (d *Document) Observe(fn func(Mutation)) func() {
	id := d.nextObserver
	d.nextObserver++
	d.observers = append(d.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range d.observers {
			if o.id == id {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

type observer struct {
	id int
	fn func(Mutation)
}

func (d *Document) notify(m Mutation) {
	for _, o := range d.observers {
		o.fn(m)
	}
}

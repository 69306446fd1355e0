package vdom

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *VNode) *VNode {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}

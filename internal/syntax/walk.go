package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an expression tree in depth-first pre-order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Negation:
		Walk(n.X, v)

	// IntLit is a leaf.
	}
}

// Inspect traverses an expression tree and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Depth returns the height of the tree rooted at x; a leaf has depth 1.
func Depth(x Expr) int {
	switch n := x.(type) {
	case *Operation:
		return 1 + max(Depth(n.X), Depth(n.Y))
	case *Negation:
		return 1 + Depth(n.X)
	case nil:
		return 0
	}
	return 1
}

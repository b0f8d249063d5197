package dom

// NearestAncestor returns the nearest inclusive ancestor of start for which
// match returns true, or nil. The search follows Parent links and therefore
// stops at the top of a boundary.
func NearestAncestor(start Node, match func(Node) bool) Node {
	for cur := start; cur != nil; cur = cur.Parent() {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// OwnerBoundary returns the boundary whose subtree contains n, or nil when
// n is in a light tree.
func OwnerBoundary(n Node) *Boundary {
	cur := n
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur.base().owner
}

// Walk visits n and its light descendants depth-first in document order.
// Returning false from visit skips the node's children.
func Walk(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.base().children {
		Walk(c, visit)
	}
}

// WalkComposed is like Walk but also descends into rendering boundaries,
// visiting an element's boundary before its light children.
func WalkComposed(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	if el, ok := n.(*Element); ok && el.boundary != nil {
		WalkComposed(el.boundary, visit)
	}
	for _, c := range n.base().children {
		WalkComposed(c, visit)
	}
}

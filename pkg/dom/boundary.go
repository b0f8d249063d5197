package dom

// Boundary is the isolated subtree owned by a host element. Its children
// are not part of the host's light tree: their Parent is nil, ancestor
// searches stop at them, and the host's TextContent does not include them.
type Boundary struct {
	container
	host *Element
}

func newBoundary(host *Element) *Boundary {
	b := &Boundary{host: host}
	b.self = b
	return b
}

func (b *Boundary) NodeType() NodeType { return BoundaryNode }

// Parent always returns nil.
func (b *Boundary) Parent() Node { return nil }

// TextContent returns the concatenated text of the boundary's subtree.
func (b *Boundary) TextContent() string { return b.textContent() }

// Host returns the element that owns the boundary.
func (b *Boundary) Host() *Element { return b.host }

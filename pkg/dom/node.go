package dom

import (
	"fmt"
	"slices"
	"strings"
)

// NodeType distinguishes the concrete node kinds of the tree.
type NodeType int

const (
	// ElementNode is an *Element.
	ElementNode NodeType = iota + 1
	// TextNode is a *Text or a type embedding one.
	TextNode
	// BoundaryNode is a *Boundary owned by a host element.
	BoundaryNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case BoundaryNode:
		return "boundary"
	default:
		return "unknown"
	}
}

// Node is a unit of the UI tree.
//
// Node identity is the identity of the node's shared base, so a type that
// embeds *Text is the same node as the embedded text. Use [SameNode] rather
// than == when comparing nodes that may be wrapped.
type Node interface {
	// NodeType reports the concrete kind of the node.
	NodeType() NodeType
	// Parent returns the parent element, or nil for detached nodes and for
	// the top-level children of a boundary.
	Parent() Node
	// ChildNodes returns a snapshot of the node's children.
	ChildNodes() []Node
	// TextContent returns the concatenated text of the node's subtree.
	TextContent() string

	base() *nodeBase
}

// SameNode reports whether a and b are the same node.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.base() == b.base()
}

type nodeBase struct {
	self     Node
	parent   Node
	owner    *Boundary // set on top-level children of a boundary
	children []Node
}

func (b *nodeBase) base() *nodeBase { return b }

func (b *nodeBase) Parent() Node {
	return b.parent
}

func (b *nodeBase) ChildNodes() []Node {
	return slices.Clone(b.children)
}

// Remove detaches the node from its parent or boundary. It is a no-op for
// detached nodes.
func (b *nodeBase) Remove() {
	switch {
	case b.parent != nil:
		b.parent.base().removeChild(b)
	case b.owner != nil:
		b.owner.base().removeChild(b)
	}
}

func (b *nodeBase) textContent() string {
	var sb strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		for _, c := range n.base().children {
			if c.NodeType() == TextNode {
				sb.WriteString(c.TextContent())
				continue
			}
			walk(c)
		}
	}
	walk(b.self)
	return sb.String()
}

func (b *nodeBase) indexOf(child *nodeBase) int {
	return slices.IndexFunc(b.children, func(n Node) bool {
		return n.base() == child
	})
}

func (b *nodeBase) removeChild(child *nodeBase) bool {
	i := b.indexOf(child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	child.parent = nil
	child.owner = nil
	return true
}

// container holds the child-list operations shared by elements and
// boundaries.
type container struct {
	nodeBase
}

// AppendChild appends child as the last child and returns it. A child that
// already has a parent is moved. Appending a boundary or an inclusive
// ancestor panics, as the platform does with a hierarchy request error.
func (c *container) AppendChild(child Node) Node {
	c.checkHierarchy(child)
	child.base().Remove()
	c.adopt(child)
	c.children = append(c.children, child)
	return child
}

// Append appends every node in order.
func (c *container) Append(children ...Node) {
	for _, child := range children {
		c.AppendChild(child)
	}
}

// InsertBefore inserts child before ref. A nil ref appends.
func (c *container) InsertBefore(child, ref Node) Node {
	if ref == nil {
		return c.AppendChild(child)
	}
	c.checkHierarchy(child)
	child.base().Remove()
	i := c.indexOf(ref.base())
	if i < 0 {
		panic(fmt.Errorf("dom: reference node is not a child"))
	}
	c.adopt(child)
	c.children = slices.Insert(c.children, i, child)
	return child
}

// RemoveChild removes child and returns it. Removing a node that is not a
// child panics.
func (c *container) RemoveChild(child Node) Node {
	if !c.removeChild(child.base()) {
		panic(fmt.Errorf("dom: node to remove is not a child"))
	}
	return child
}

// ReplaceChildren removes every child, then appends children in order.
func (c *container) ReplaceChildren(children ...Node) {
	for _, old := range c.children {
		old.base().parent = nil
		old.base().owner = nil
	}
	c.children = nil
	c.Append(children...)
}

// FirstChild returns the first child or nil.
func (c *container) FirstChild() Node {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[0]
}

// LastChild returns the last child or nil.
func (c *container) LastChild() Node {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[len(c.children)-1]
}

// ChildCount returns the number of children.
func (c *container) ChildCount() int {
	return len(c.children)
}

func (c *container) adopt(child Node) {
	cb := child.base()
	if boundary, ok := c.self.(*Boundary); ok {
		cb.owner = boundary
		return
	}
	cb.parent = c.self
}

func (c *container) checkHierarchy(child Node) {
	if child == nil {
		panic(fmt.Errorf("dom: cannot append nil node"))
	}
	if child.NodeType() == BoundaryNode {
		panic(fmt.Errorf("dom: a boundary cannot be inserted into a tree"))
	}
	target := child.base()
	var cur Node = c.self
	for cur != nil {
		if cur.base() == target {
			panic(fmt.Errorf("dom: cannot insert a node into its own subtree"))
		}
		cur = composedParent(cur)
	}
}

// composedParent steps to the parent, crossing from a boundary's top-level
// child to the boundary and from a boundary to its host.
func composedParent(n Node) Node {
	if b, ok := n.(*Boundary); ok {
		return b.host
	}
	nb := n.base()
	if nb.parent != nil {
		return nb.parent
	}
	if nb.owner != nil {
		return nb.owner
	}
	return nil
}

// Package reactive provides text leaves whose content can be updated in
// place without re-rendering the component that contains them.
package reactive

import (
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/props"
)

// NumberNode is a text leaf displaying a number.
type NumberNode struct {
	*dom.Text
}

// UseNumber creates a leaf displaying v.
func UseNumber(v float64) *NumberNode {
	return &NumberNode{Text: dom.NewText(props.FormatNumber(v))}
}

// Value parses the leaf's current text. Text that is not a number yields NaN.
func (n *NumberNode) Value() float64 {
	return props.ParseNumber(n.Data())
}

// SetValue rewrites the leaf's text.
func (n *NumberNode) SetValue(v float64) {
	n.SetData(props.FormatNumber(v))
}

func (n *NumberNode) String() string {
	return n.Data()
}

// StringNode is a text leaf displaying a string.
type StringNode struct {
	*dom.Text
}

// UseString creates a leaf displaying v.
func UseString(v string) *StringNode {
	return &StringNode{Text: dom.NewText(v)}
}

// Value returns the leaf's text.
func (n *StringNode) Value() string {
	return n.Data()
}

// SetValue rewrites the leaf's text.
func (n *StringNode) SetValue(v string) {
	n.SetData(v)
}

func (n *StringNode) String() string {
	return n.Data()
}

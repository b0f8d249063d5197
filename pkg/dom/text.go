package dom

// Text is a leaf node holding character data.
type Text struct {
	nodeBase
	data string
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	t := &Text{data: data}
	t.self = t
	return t
}

func (t *Text) NodeType() NodeType { return TextNode }

// TextContent returns the node's data.
func (t *Text) TextContent() string { return t.data }

// Data returns the node's data.
func (t *Text) Data() string { return t.data }

// SetData replaces the node's data in place.
func (t *Text) SetData(data string) { t.data = data }

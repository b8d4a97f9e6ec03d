package zoo

// Node is the root of a tiny document tree.
type Node struct {
	Name string
}

type Element struct {
	*Node
	Children []any
}

type Text struct {
	Node
	Data string
}

type Comment struct {
	Node
	Data string
}

// NewElement builds an element with the given children.
func NewElement(name string, children ...any) *Element {
	return &Element{Node: &Node{Name: name}, Children: children}
}

// NewText builds a text node.
func NewText(data string) *Text {
	return &Text{Node: Node{Name: "#text"}, Data: data}
}

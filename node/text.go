package node

// Text represents a text node
type Text struct {
	charData
}

func newText(content string) *Text {
	t := &Text{}
	t.content = content
	return t
}

func (*Text) Type() NodeType {
	return TextNodeType
}

func (*Text) Name() string {
	return "#text"
}

func (*Text) LocalName() string {
	return "#text"
}

func (n *Text) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *Text) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *Text) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *Text) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *Text) CloneNode(bool) Node {
	clone := newText(n.content)
	clone.doc = n.doc
	return clone
}

// SplitText breaks the node in two at offset. The remainder becomes a
// new Text node which, when this node is attached, is inserted as the
// immediately following sibling.
func (n *Text) SplitText(offset int) (*Text, error) {
	const op = "node.SplitText"
	if n.readonly {
		return nil, newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return nil, newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()

	runes := []rune(n.content)
	if offset < 0 || offset > len(runes) {
		return nil, newError(IndexSizeErr, op, "offset out of range")
	}

	rest := newText(string(runes[offset:]))
	rest.doc = n.doc
	n.content = string(runes[:offset])

	if n.parent != nil {
		linkBefore(n.parent, rest, n.next)
	}
	return rest, nil
}

// CDATASection represents a CDATA section node
type CDATASection struct {
	charData
}

func newCDATASection(content string) *CDATASection {
	c := &CDATASection{}
	c.content = content
	return c
}

func (*CDATASection) Type() NodeType {
	return CDATASectionNodeType
}

func (*CDATASection) Name() string {
	return "#cdata-section"
}

func (*CDATASection) LocalName() string {
	return "#cdata-section"
}

func (n *CDATASection) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *CDATASection) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *CDATASection) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *CDATASection) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *CDATASection) CloneNode(bool) Node {
	clone := newCDATASection(n.content)
	clone.doc = n.doc
	return clone
}

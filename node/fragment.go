package node

// DocumentFragment is a lightweight grouping node. Inserting a
// fragment under a parent splices the fragment's children into place
// in order and leaves the fragment empty.
type DocumentFragment struct {
	treeNode
}

var _ Node = (*DocumentFragment)(nil)

func newDocumentFragment() *DocumentFragment {
	return &DocumentFragment{}
}

func (*DocumentFragment) Type() NodeType {
	return DocumentFragNodeType
}

func (*DocumentFragment) Name() string {
	return "#document-fragment"
}

func (*DocumentFragment) LocalName() string {
	return "#document-fragment"
}

func (n *DocumentFragment) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *DocumentFragment) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *DocumentFragment) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *DocumentFragment) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *DocumentFragment) CloneNode(deep bool) Node {
	clone := newDocumentFragment()
	clone.doc = n.doc
	if deep {
		cloneChildren(clone, n)
	}
	return clone
}

package node

// Attribute represents an attribute node. The value is held directly
// on the node; attributes have no children. The owner pointer is a
// non-owning back-reference to the element the attribute is attached
// to, nil while detached.
type Attribute struct {
	treeNode
	value     string
	owner     *Element
	specified bool
}

var _ Node = (*Attribute)(nil)

func newAttribute(name Name, value string) *Attribute {
	attr := &Attribute{
		value:     value,
		specified: true,
	}
	attr.name = name
	return attr
}

func (*Attribute) Type() NodeType {
	return AttributeNodeType
}

func (n *Attribute) Value() string {
	return n.value
}

func (n *Attribute) SetValue(s string) error {
	const op = "node.SetValue"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "attribute is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "attribute is being mutated")
	}
	defer n.endEdit()
	n.value = s
	n.specified = true
	return nil
}

// OwnerElement returns the element this attribute is attached to, or
// nil while the attribute is detached.
func (n *Attribute) OwnerElement() *Element {
	return n.owner
}

// Specified reports whether the attribute value was explicitly set.
// Attribute defaulting from a DTD is not performed, so this is true
// for every attribute reachable through the API.
func (n *Attribute) Specified() bool {
	return n.specified
}

func (n *Attribute) Content(dst []byte) ([]byte, error) {
	return append(dst, n.value...), nil
}

func (n *Attribute) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *Attribute) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *Attribute) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *Attribute) RemoveChild(child Node) error {
	return removeChild(n, child)
}

// CloneNode copies the attribute. The copy is detached from any
// element and always reports Specified() == true.
func (n *Attribute) CloneNode(bool) Node {
	clone := newAttribute(n.name, n.value)
	clone.doc = n.doc
	return clone
}

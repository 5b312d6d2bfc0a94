package node

import (
	"iter"

	"github.com/lestrrat-go/xenon/internal/orderedmap"
)

// Element represents an element node. Attributes are kept in an
// insertion-ordered map keyed by qualified name.
type Element struct {
	treeNode
	attrs *orderedmap.Map[string, *Attribute]
}

var _ Node = (*Element)(nil)

func newElement(name Name) *Element {
	e := &Element{
		attrs: orderedmap.New[string, *Attribute](),
	}
	e.name = name
	return e
}

func (*Element) Type() NodeType {
	return ElementNodeType
}

// TagName returns the qualified name of the element.
func (e *Element) TagName() string {
	return e.Name()
}

func (e *Element) AppendChild(child Node) error {
	return appendChild(e, child)
}

func (e *Element) InsertBefore(newChild, refChild Node) error {
	return insertBefore(e, newChild, refChild)
}

func (e *Element) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(e, newChild, oldChild)
}

func (e *Element) RemoveChild(child Node) error {
	return removeChild(e, child)
}

// GetAttribute returns the value of the named attribute. The second
// return is false when the attribute does not exist.
func (e *Element) GetAttribute(name string) (string, bool) {
	attr, ok := e.attrs.Get(name)
	if !ok {
		return "", false
	}
	return attr.value, true
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs.Get(name)
	return ok
}

// SetAttribute sets the named attribute to value, creating it if it
// does not exist and updating it in place if it does.
func (e *Element) SetAttribute(name, value string) error {
	const op = "node.SetAttribute"
	if e.readonly {
		return newError(NoModificationAllowedErr, op, "element is read-only")
	}
	if !e.beginEdit() {
		return newError(InvalidStateErr, op, "element is being mutated")
	}
	defer e.endEdit()

	if attr, ok := e.attrs.Get(name); ok {
		attr.value = value
		attr.specified = true
		return nil
	}

	parsed, err := ParseName(name)
	if err != nil {
		return err
	}
	attr := newAttribute(parsed, value)
	attr.doc = e.doc
	attr.owner = e
	e.attrs.Set(name, attr)
	return nil
}

// RemoveAttribute removes the named attribute. Removing an attribute
// that does not exist is not an error.
func (e *Element) RemoveAttribute(name string) error {
	const op = "node.RemoveAttribute"
	if e.readonly {
		return newError(NoModificationAllowedErr, op, "element is read-only")
	}
	if !e.beginEdit() {
		return newError(InvalidStateErr, op, "element is being mutated")
	}
	defer e.endEdit()

	if attr, ok := e.attrs.Get(name); ok {
		attr.owner = nil
		e.attrs.Delete(name)
	}
	return nil
}

// AttributeNode returns the named attribute node itself.
func (e *Element) AttributeNode(name string) (*Attribute, bool) {
	return e.attrs.Get(name)
}

// SetAttributeNode attaches attr to this element. An attribute owned
// by another element must be cloned before it can be attached here.
// When an attribute of the same name already exists it is replaced and
// returned.
func (e *Element) SetAttributeNode(attr *Attribute) (*Attribute, error) {
	const op = "node.SetAttributeNode"
	if attr == nil {
		return nil, ErrNilNode
	}
	if e.readonly {
		return nil, newError(NoModificationAllowedErr, op, "element is read-only")
	}
	if attr.doc != nil && attr.doc != e.doc {
		return nil, newError(WrongDocumentErr, op, "attribute belongs to a different document")
	}
	if attr.owner != nil && attr.owner != e {
		return nil, newError(InUseAttributeErr, op, "attribute "+attr.Name()+" is owned by another element")
	}
	if !e.beginEdit() {
		return nil, newError(InvalidStateErr, op, "element is being mutated")
	}
	defer e.endEdit()

	var old *Attribute
	if prev, ok := e.attrs.Get(attr.Name()); ok && prev != attr {
		prev.owner = nil
		old = prev
	}
	attr.owner = e
	if attr.doc == nil {
		attr.doc = e.doc
	}
	e.attrs.Set(attr.Name(), attr)
	return old, nil
}

// RemoveAttributeNode detaches attr from this element.
func (e *Element) RemoveAttributeNode(attr *Attribute) error {
	const op = "node.RemoveAttributeNode"
	if attr == nil {
		return ErrNilNode
	}
	if e.readonly {
		return newError(NoModificationAllowedErr, op, "element is read-only")
	}
	if !e.beginEdit() {
		return newError(InvalidStateErr, op, "element is being mutated")
	}
	defer e.endEdit()

	if prev, ok := e.attrs.Get(attr.Name()); !ok || prev != attr {
		return newError(NotFoundErr, op, "attribute "+attr.Name()+" not found on element")
	}
	attr.owner = nil
	e.attrs.Delete(attr.Name())
	return nil
}

// Attributes populates dst with the attributes of the element, in the
// order they were first set. If dst is nil a new slice is allocated.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

// ElementsByTagName returns the descendant elements whose qualified
// name matches name, in document order. The name "*" matches every
// element. The sequence is lazy and may be iterated multiple times.
func (e *Element) ElementsByTagName(name string) iter.Seq[*Element] {
	return elementsByTagName(e, name)
}

func (e *Element) CloneNode(deep bool) Node {
	clone := newElement(e.name)
	clone.doc = e.doc
	for _, attr := range e.attrs.Range() {
		ac := attr.CloneNode(true).(*Attribute)
		ac.owner = clone
		clone.attrs.Set(ac.Name(), ac)
	}
	if deep {
		cloneChildren(clone, e)
	}
	return clone
}

func elementsByTagName(root Node, name string) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		var walk func(n Node) bool
		walk = func(n Node) bool {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if e, ok := c.(*Element); ok {
					if name == "*" || e.Name() == name {
						if !yield(e) {
							return false
						}
					}
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}

// cloneChildren deep-copies the children of src onto dst. Shared by
// the kinds whose CloneNode supports deep copies.
func cloneChildren(dst, src Node) {
	for c := src.FirstChild(); c != nil; c = c.NextSibling() {
		cc := c.CloneNode(true)
		linkBefore(dst, cc, nil)
	}
}

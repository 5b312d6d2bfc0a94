package node

import (
	"github.com/lestrrat-go/pdebug/v3"
)

// kindSet is a bitmask over NodeType, used for the per-kind legal
// child tables.
type kindSet uint16

func (s *kindSet) Set(t NodeType) {
	*s = *s | 1<<uint(t)
}

func (s kindSet) IsSet(t NodeType) bool {
	return s&(1<<uint(t)) != 0
}

func kinds(types ...NodeType) kindSet {
	var s kindSet
	for _, t := range types {
		s.Set(t)
	}
	return s
}

// legalChildren maps each node kind to the set of child kinds it may
// contain. Kinds absent from the map accept no children at all.
var legalChildren = map[NodeType]kindSet{
	DocumentNodeType: kinds(
		ElementNodeType,
		DocumentTypeNodeType,
		CommentNodeType,
		ProcessingInstructionNodeType,
	),
	ElementNodeType: kinds(
		ElementNodeType,
		TextNodeType,
		CommentNodeType,
		CDATASectionNodeType,
		ProcessingInstructionNodeType,
		EntityRefNodeType,
	),
	DocumentFragNodeType: kinds(
		ElementNodeType,
		TextNodeType,
		CommentNodeType,
		CDATASectionNodeType,
		ProcessingInstructionNodeType,
		EntityRefNodeType,
	),
}

// ownerOf resolves the document a node belongs to. A Document belongs
// to itself.
func ownerOf(n Node) *Document {
	if d, ok := n.(*Document); ok {
		return d
	}
	return n.getTreeNode().doc
}

// detach unlinks child from its parent and siblings. Low-level: no
// legality checks.
func detach(child Node) {
	ct := child.getTreeNode()
	if parent := ct.parent; parent != nil {
		pt := parent.getTreeNode()
		if pt.firstChild == child {
			pt.firstChild = ct.next
		}
		if pt.lastChild == child {
			pt.lastChild = ct.prev
		}
	}
	if ct.prev != nil {
		ct.prev.getTreeNode().next = ct.next
	}
	if ct.next != nil {
		ct.next.getTreeNode().prev = ct.prev
	}
	ct.parent = nil
	ct.next = nil
	ct.prev = nil
}

// linkBefore attaches child under parent immediately before ref. A nil
// ref appends. Low-level: child must already be detached.
func linkBefore(parent, child, ref Node) {
	pt := parent.getTreeNode()
	ct := child.getTreeNode()
	ct.parent = parent

	if ref == nil {
		if pt.lastChild == nil {
			pt.firstChild = child
			pt.lastChild = child
			return
		}
		last := pt.lastChild
		last.getTreeNode().next = child
		ct.prev = last
		pt.lastChild = child
		return
	}

	rt := ref.getTreeNode()
	ct.next = ref
	ct.prev = rt.prev
	if rt.prev != nil {
		rt.prev.getTreeNode().next = child
	} else {
		pt.firstChild = child
	}
	rt.prev = child
}

// adopt reassigns the owner document of n and everything below it,
// including element attributes.
func adopt(n Node, doc *Document) {
	n.getTreeNode().doc = doc
	switch v := n.(type) {
	case *Element:
		for _, attr := range v.attrs.Range() {
			attr.doc = doc
		}
	case *DocumentType:
		for _, ent := range v.entities.Range() {
			ent.doc = doc
		}
		for _, not := range v.notations.Range() {
			not.doc = doc
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		adopt(c, doc)
	}
}

// isAncestorOrSelf reports whether candidate is n itself or one of its
// ancestors.
func isAncestorOrSelf(candidate, n Node) bool {
	for a := n; a != nil; a = a.Parent() {
		if a == candidate {
			return true
		}
	}
	return false
}

// checkChildKind verifies that a single (non-fragment) child kind is
// acceptable under parent, including the Document uniqueness rules.
// exclude is ignored when scanning for existing singleton children,
// which lets ReplaceChild swap a document element in place.
func checkChildKind(parent, child Node, exclude Node, op string) error {
	if !legalChildren[parent.Type()].IsSet(child.Type()) {
		return newError(HierarchyRequestErr, op, child.Type().String()+" not allowed under "+parent.Type().String())
	}

	if parent.Type() != DocumentNodeType {
		return nil
	}

	switch child.Type() {
	case ElementNodeType, DocumentTypeNodeType:
		for old := parent.FirstChild(); old != nil; old = old.NextSibling() {
			if old.Type() == child.Type() && old != exclude && old != child {
				return newError(HierarchyRequestErr, op, "document already has a "+child.Type().String()+" child")
			}
		}
	}
	return nil
}

// checkInsert runs every legality check for inserting child under
// parent, in order, before anything is mutated: read-only state, owner
// document, child kind, and cycle prevention.
func checkInsert(parent, child Node, exclude Node, op string) error {
	pt := parent.getTreeNode()
	if pt.readonly {
		return newError(NoModificationAllowedErr, op, parent.Type().String()+" is read-only")
	}
	if child.IsReadOnly() {
		return newError(NoModificationAllowedErr, op, "cannot move a read-only "+child.Type().String())
	}

	powner := ownerOf(parent)
	if cowner := ownerOf(child); cowner != nil && cowner != powner {
		return newError(WrongDocumentErr, op, child.Type().String()+" belongs to a different document")
	}

	if frag, ok := child.(*DocumentFragment); ok {
		nelems := 0
		for c := frag.FirstChild(); c != nil; c = c.NextSibling() {
			if err := checkChildKind(parent, c, exclude, op); err != nil {
				return err
			}
			if parent.Type() == DocumentNodeType && c.Type() == ElementNodeType {
				if nelems++; nelems > 1 {
					return newError(HierarchyRequestErr, op, "fragment holds more than one element for a document")
				}
			}
		}
	} else {
		if err := checkChildKind(parent, child, exclude, op); err != nil {
			return err
		}
	}

	if isAncestorOrSelf(child, parent) {
		return newError(HierarchyRequestErr, op, "insertion would create a cycle")
	}
	return nil
}

// insertNode is the single structural insertion path behind
// AppendChild and InsertBefore.
func insertNode(parent, child, ref Node, op string) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if pdebug.Enabled {
		pdebug.Printf("%s: %s under %s", op, child.Type(), parent.Type())
	}

	pt := parent.getTreeNode()
	if !pt.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer pt.endEdit()

	if ref != nil && ref.Parent() != parent {
		return newError(NotFoundErr, op, "reference child not found under parent")
	}
	// inserting a node before itself: the pre-insertion reference is
	// whatever follows the node once it is lifted out
	if ref == child {
		ref = child.NextSibling()
	}
	if err := checkInsert(parent, child, nil, op); err != nil {
		return err
	}

	doc := ownerOf(parent)

	if frag, ok := child.(*DocumentFragment); ok {
		for c := frag.FirstChild(); c != nil; c = frag.FirstChild() {
			detach(c)
			linkBefore(parent, c, ref)
		}
		return nil
	}

	detach(child)
	if ownerOf(child) == nil {
		adopt(child, doc)
	}
	linkBefore(parent, child, ref)
	return nil
}

func appendChild(parent, child Node) error {
	return insertNode(parent, child, nil, "node.AppendChild")
}

func insertBefore(parent, child, ref Node) error {
	return insertNode(parent, child, ref, "node.InsertBefore")
}

func replaceChild(parent, newChild, oldChild Node) error {
	const op = "node.ReplaceChild"
	if parent == nil || newChild == nil || oldChild == nil {
		return ErrNilNode
	}

	pt := parent.getTreeNode()
	if !pt.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer pt.endEdit()

	if oldChild.Parent() != parent {
		return newError(NotFoundErr, op, "old child not found under parent")
	}
	// replacing a node with itself leaves the tree as it is
	if newChild == oldChild {
		return nil
	}
	if err := checkInsert(parent, newChild, oldChild, op); err != nil {
		return err
	}

	doc := ownerOf(parent)

	if frag, ok := newChild.(*DocumentFragment); ok {
		for c := frag.FirstChild(); c != nil; c = frag.FirstChild() {
			detach(c)
			linkBefore(parent, c, oldChild)
		}
		detach(oldChild)
		return nil
	}

	detach(newChild)
	if ownerOf(newChild) == nil {
		adopt(newChild, doc)
	}
	linkBefore(parent, newChild, oldChild)
	detach(oldChild)
	return nil
}

func removeChild(parent, child Node) error {
	const op = "node.RemoveChild"
	if parent == nil || child == nil {
		return ErrNilNode
	}

	pt := parent.getTreeNode()
	if !pt.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer pt.endEdit()

	if pt.readonly {
		return newError(NoModificationAllowedErr, op, parent.Type().String()+" is read-only")
	}
	if child.Parent() != parent {
		return newError(NotFoundErr, op, "child not found under parent")
	}
	detach(child)
	return nil
}

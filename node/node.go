package node

import (
	"sync/atomic"
)

// NodeType represents the type of a node in the document tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	CDATASectionNodeType
	EntityRefNodeType
	EntityNodeType
	ProcessingInstructionNodeType
	CommentNodeType
	DocumentNodeType
	DocumentTypeNodeType
	DocumentFragNodeType
	NotationNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "Element"
	case AttributeNodeType:
		return "Attribute"
	case TextNodeType:
		return "Text"
	case CDATASectionNodeType:
		return "CDATASection"
	case EntityRefNodeType:
		return "EntityReference"
	case EntityNodeType:
		return "Entity"
	case ProcessingInstructionNodeType:
		return "ProcessingInstruction"
	case CommentNodeType:
		return "Comment"
	case DocumentNodeType:
		return "Document"
	case DocumentTypeNodeType:
		return "DocumentType"
	case DocumentFragNodeType:
		return "DocumentFragment"
	case NotationNodeType:
		return "Notation"
	}
	return "Unknown"
}

// Node is the interface implemented by every node kind in the tree.
// The set of implementations is closed: the unexported getTreeNode
// method keeps types outside this package from satisfying it.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	Type() NodeType

	// Name returns the qualified name of the node. Kinds without a
	// meaningful name return a fixed marker such as "#text".
	Name() string

	// LocalName returns the local part of the qualified name.
	LocalName() string

	Prefix() string
	NamespaceURI() string

	// Value returns the kind-dependent value of the node: character
	// content for Text/Comment/CDATASection, the data for a processing
	// instruction, the literal value for an attribute. Kinds without a
	// value return an empty string.
	Value() string
	SetValue(string) error

	OwnerDocument() *Document
	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node

	// ChildNodes populates dst with the children of this node, in
	// order. If dst is nil a new slice is allocated.
	ChildNodes(dst []Node) []Node
	HasChildNodes() bool
	IsReadOnly() bool

	AppendChild(Node) error
	InsertBefore(newChild, refChild Node) error
	ReplaceChild(newChild, oldChild Node) error
	RemoveChild(Node) error

	// CloneNode returns a detached copy of this node, owned by the
	// same document. When deep is true the entire subtree is copied.
	CloneNode(deep bool) Node

	Normalize()
	IsSupported(feature, version string) bool

	// Content appends the concatenated character content of the node
	// and its descendants to dst and returns the result. If dst is
	// nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)
}

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	name       Name
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
	readonly   bool
	editing    uint32
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

// beginEdit acquires the exclusive edit guard for this node. It fails
// only on reentrant or overlapping access to the same node.
func (n *treeNode) beginEdit() bool {
	return atomic.CompareAndSwapUint32(&n.editing, 0, 1)
}

func (n *treeNode) endEdit() {
	atomic.StoreUint32(&n.editing, 0)
}

func (n *treeNode) Name() string {
	return n.name.String()
}

func (n *treeNode) LocalName() string {
	return n.name.Local
}

func (n *treeNode) Prefix() string {
	return n.name.Prefix
}

func (n *treeNode) NamespaceURI() string {
	return n.name.URI
}

func (n *treeNode) Value() string {
	return ""
}

func (n *treeNode) SetValue(string) error {
	return newError(NotSupportedErr, "node.SetValue", "node kind carries no value")
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) ChildNodes(dst []Node) []Node {
	if dst == nil {
		dst = make([]Node, 0, 4)
	} else {
		dst = dst[:0]
	}
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		dst = append(dst, e)
	}
	return dst
}

func (n *treeNode) HasChildNodes() bool {
	return n.firstChild != nil
}

func (n *treeNode) IsReadOnly() bool {
	return n.readonly
}

func (n *treeNode) IsSupported(feature, version string) bool {
	return hasFeature(feature, version)
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// Normalize merges adjacent Text children into single nodes and drops
// empty ones, recursing through the subtree. Applying it twice is the
// same as applying it once. Like every other mutation it honors the
// read-only flag and the per-node edit guard; a node that cannot be
// edited is left untouched.
func (n *treeNode) Normalize() {
	if n.readonly {
		return
	}
	if !n.beginEdit() {
		return
	}
	defer n.endEdit()

	child := n.firstChild
	for child != nil {
		next := child.NextSibling()
		if t, ok := child.(*Text); ok {
			if t.Length() == 0 {
				detach(t)
				child = next
				continue
			}
			if prev, ok := t.PrevSibling().(*Text); ok {
				prev.content += t.content
				detach(t)
				child = next
				continue
			}
		} else {
			child.Normalize()
		}
		child = next
	}
}

type WalkFunc func(Node) error

// Walk visits n and all of its descendants in document order, calling
// f for each. Traversal stops at the first error.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}
	if err := f(n); err != nil {
		return err
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}

package node

import (
	"github.com/lestrrat-go/xenon/internal/orderedmap"
)

// DocumentType represents a doctype node. The entity and notation
// tables are populated through the Register methods; every node they
// hold is read-only.
type DocumentType struct {
	treeNode
	publicID  string
	systemID  string
	entities  *orderedmap.Map[string, *Entity]
	notations *orderedmap.Map[string, *Notation]
}

var _ Node = (*DocumentType)(nil)

func newDocumentType(name Name, publicID, systemID string) *DocumentType {
	dt := &DocumentType{
		publicID:  publicID,
		systemID:  systemID,
		entities:  orderedmap.New[string, *Entity](),
		notations: orderedmap.New[string, *Notation](),
	}
	dt.name = name
	return dt
}

func (*DocumentType) Type() NodeType {
	return DocumentTypeNodeType
}

func (dt *DocumentType) PublicID() string {
	return dt.publicID
}

func (dt *DocumentType) SystemID() string {
	return dt.systemID
}

// RegisterEntity adds a general entity declaration. The resulting node
// is read-only. Registering a name twice is an error.
func (dt *DocumentType) RegisterEntity(name, publicID, systemID, content string) (*Entity, error) {
	const op = "node.RegisterEntity"
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	if _, ok := dt.entities.Get(name); ok {
		return nil, newError(HierarchyRequestErr, op, "entity "+name+" already declared")
	}

	ent := newEntity(parsed, publicID, systemID, content)
	ent.doc = dt.doc
	ent.parent = dt
	dt.entities.Set(name, ent)
	return ent, nil
}

// RegisterNotation adds a notation declaration. The resulting node is
// read-only. Registering a name twice is an error.
func (dt *DocumentType) RegisterNotation(name, publicID, systemID string) (*Notation, error) {
	const op = "node.RegisterNotation"
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	if _, ok := dt.notations.Get(name); ok {
		return nil, newError(HierarchyRequestErr, op, "notation "+name+" already declared")
	}

	not := newNotation(parsed, publicID, systemID)
	not.doc = dt.doc
	not.parent = dt
	dt.notations.Set(name, not)
	return not, nil
}

func (dt *DocumentType) Entity(name string) (*Entity, bool) {
	return dt.entities.Get(name)
}

func (dt *DocumentType) Notation(name string) (*Notation, bool) {
	return dt.notations.Get(name)
}

// Entities populates dst with the declared entities in declaration
// order. If dst is nil a new slice is allocated.
func (dt *DocumentType) Entities(dst []*Entity) []*Entity {
	if dst == nil {
		dst = make([]*Entity, 0, dt.entities.Len())
	} else {
		dst = dst[:0]
	}
	for _, ent := range dt.entities.Range() {
		dst = append(dst, ent)
	}
	return dst
}

// Notations populates dst with the declared notations in declaration
// order. If dst is nil a new slice is allocated.
func (dt *DocumentType) Notations(dst []*Notation) []*Notation {
	if dst == nil {
		dst = make([]*Notation, 0, dt.notations.Len())
	} else {
		dst = dst[:0]
	}
	for _, not := range dt.notations.Range() {
		dst = append(dst, not)
	}
	return dst
}

func (dt *DocumentType) AppendChild(child Node) error {
	return appendChild(dt, child)
}

func (dt *DocumentType) InsertBefore(newChild, refChild Node) error {
	return insertBefore(dt, newChild, refChild)
}

func (dt *DocumentType) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(dt, newChild, oldChild)
}

func (dt *DocumentType) RemoveChild(child Node) error {
	return removeChild(dt, child)
}

func (dt *DocumentType) CloneNode(bool) Node {
	clone := newDocumentType(dt.name, dt.publicID, dt.systemID)
	clone.doc = dt.doc
	for name, ent := range dt.entities.Range() {
		ec := ent.CloneNode(false).(*Entity)
		ec.parent = clone
		clone.entities.Set(name, ec)
	}
	for name, not := range dt.notations.Range() {
		nc := not.CloneNode(false).(*Notation)
		nc.parent = clone
		clone.notations.Set(name, nc)
	}
	return clone
}

// Entity represents a general entity declaration. Entity nodes are
// read-only from the moment they are created.
type Entity struct {
	treeNode
	publicID string
	systemID string
	content  string
}

var _ Node = (*Entity)(nil)

func newEntity(name Name, publicID, systemID, content string) *Entity {
	ent := &Entity{
		publicID: publicID,
		systemID: systemID,
		content:  content,
	}
	ent.name = name
	ent.readonly = true
	return ent
}

func (*Entity) Type() NodeType {
	return EntityNodeType
}

func (e *Entity) PublicID() string {
	return e.publicID
}

func (e *Entity) SystemID() string {
	return e.systemID
}

// ReplacementText returns the literal replacement text of an internal
// entity, empty for external entities.
func (e *Entity) ReplacementText() string {
	return e.content
}

func (e *Entity) Content(dst []byte) ([]byte, error) {
	return append(dst, e.content...), nil
}

func (e *Entity) AppendChild(child Node) error {
	return appendChild(e, child)
}

func (e *Entity) InsertBefore(newChild, refChild Node) error {
	return insertBefore(e, newChild, refChild)
}

func (e *Entity) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(e, newChild, oldChild)
}

func (e *Entity) RemoveChild(child Node) error {
	return removeChild(e, child)
}

func (e *Entity) CloneNode(bool) Node {
	clone := newEntity(e.name, e.publicID, e.systemID, e.content)
	clone.doc = e.doc
	return clone
}

// Notation represents a notation declaration. Notation nodes are
// read-only from the moment they are created.
type Notation struct {
	treeNode
	publicID string
	systemID string
}

var _ Node = (*Notation)(nil)

func newNotation(name Name, publicID, systemID string) *Notation {
	not := &Notation{
		publicID: publicID,
		systemID: systemID,
	}
	not.name = name
	not.readonly = true
	return not
}

func (*Notation) Type() NodeType {
	return NotationNodeType
}

func (n *Notation) PublicID() string {
	return n.publicID
}

func (n *Notation) SystemID() string {
	return n.systemID
}

func (n *Notation) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *Notation) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *Notation) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *Notation) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *Notation) CloneNode(bool) Node {
	clone := newNotation(n.name, n.publicID, n.systemID)
	clone.doc = n.doc
	return clone
}

// EntityRef represents a reference to a named entity. The reference
// itself can be placed in a tree; its expansion is left to whatever
// consumes the serialized form.
type EntityRef struct {
	treeNode
}

var _ Node = (*EntityRef)(nil)

func newEntityRef(name Name) *EntityRef {
	ref := &EntityRef{}
	ref.name = name
	return ref
}

func (*EntityRef) Type() NodeType {
	return EntityRefNodeType
}

func (n *EntityRef) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *EntityRef) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *EntityRef) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *EntityRef) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *EntityRef) CloneNode(bool) Node {
	clone := newEntityRef(n.name)
	clone.doc = n.doc
	return clone
}

package node

import (
	"iter"
)

type DocumentStandaloneType int

const (
	StandaloneInvalidValue = -99
	StandaloneExplicitYes  = 1
	StandaloneExplicitNo   = 0
	StandaloneNoXMLDecl    = -1
	StandaloneImplicitNo   = -2
)

// Document represents the root document node. Every other node is
// created through one of the Create methods, which validate the name
// and stamp the owner document.
type Document struct {
	treeNode
	version    string
	encoding   string
	standalone DocumentStandaloneType
}

var _ Node = (*Document)(nil)

func newDocument(version, encoding string, standalone DocumentStandaloneType) *Document {
	doc := &Document{
		version:    version,
		encoding:   encoding,
		standalone: standalone,
	}
	if doc.version == "" {
		doc.version = "1.0"
	}
	return doc
}

func (*Document) Type() NodeType {
	return DocumentNodeType
}

func (*Document) Name() string {
	return "#document"
}

func (*Document) LocalName() string {
	return "#document"
}

// OwnerDocument returns nil: a document is not owned by anything.
func (d *Document) OwnerDocument() *Document {
	return nil
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) Standalone() DocumentStandaloneType {
	return d.standalone
}

func (d *Document) SetStandalone(standalone DocumentStandaloneType) {
	d.standalone = standalone
}

// Implementation returns the factory that minted this document.
func (d *Document) Implementation() *Implementation {
	return GetImplementation()
}

// CreateElement creates a detached element with the given name.
func (d *Document) CreateElement(name string) (*Element, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	e := newElement(parsed)
	e.doc = d
	return e, nil
}

// CreateElementNS creates a detached element with a namespace-
// qualified name.
func (d *Document) CreateElementNS(nsuri, qname string) (*Element, error) {
	parsed, err := ParseNameNS(nsuri, qname)
	if err != nil {
		return nil, err
	}
	e := newElement(parsed)
	e.doc = d
	return e, nil
}

// CreateAttribute creates a detached attribute with an empty value.
func (d *Document) CreateAttribute(name string) (*Attribute, error) {
	return d.CreateAttributeWithValue(name, "")
}

// CreateAttributeWithValue creates a detached attribute holding value.
func (d *Document) CreateAttributeWithValue(name, value string) (*Attribute, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	attr := newAttribute(parsed, value)
	attr.doc = d
	return attr, nil
}

// CreateAttributeNS creates a detached attribute with a namespace-
// qualified name and an empty value.
func (d *Document) CreateAttributeNS(nsuri, qname string) (*Attribute, error) {
	parsed, err := ParseNameNS(nsuri, qname)
	if err != nil {
		return nil, err
	}
	attr := newAttribute(parsed, "")
	attr.doc = d
	return attr, nil
}

// CreateText creates a detached text node.
func (d *Document) CreateText(content string) *Text {
	t := newText(content)
	t.doc = d
	return t
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(content string) *Comment {
	c := newComment(content)
	c.doc = d
	return c
}

// CreateCDATASection creates a detached CDATA section node.
func (d *Document) CreateCDATASection(content string) *CDATASection {
	c := newCDATASection(content)
	c.doc = d
	return c
}

// CreatePI creates a detached processing instruction. The target must
// be a valid name and may not be the reserved "xml".
func (d *Document) CreatePI(target, data string) (*ProcessingInstruction, error) {
	parsed, err := ParseName(target)
	if err != nil {
		return nil, err
	}
	if parsed.Prefix != "" || parsed.Local == "xml" {
		return nil, newError(InvalidCharacterErr, "node.CreatePI", "invalid processing instruction target "+target)
	}
	pi := newProcessingInstruction(parsed, data)
	pi.doc = d
	return pi, nil
}

// CreateDocumentFragment creates an empty detached fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	f := newDocumentFragment()
	f.doc = d
	return f
}

// CreateEntityReference creates a detached reference to the named
// entity. The name is validated; whether the entity is declared is
// not checked here.
func (d *Document) CreateEntityReference(name string) (*EntityRef, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	ref := newEntityRef(parsed)
	ref.doc = d
	return ref, nil
}

// DocumentElement returns the single element child of the document,
// nil when none has been attached yet.
func (d *Document) DocumentElement() *Element {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// Doctype returns the document type child, nil when absent.
func (d *Document) Doctype() *DocumentType {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if dt, ok := c.(*DocumentType); ok {
			return dt
		}
	}
	return nil
}

// ElementsByTagName returns every descendant element whose qualified
// name matches name, in document order. The name "*" matches all.
func (d *Document) ElementsByTagName(name string) iter.Seq[*Element] {
	return elementsByTagName(d, name)
}

// ImportNode copies a node from another document into this one. The
// copy is detached and owned by this document; the source tree is
// untouched. Document and DocumentType nodes cannot be imported.
func (d *Document) ImportNode(n Node, deep bool) (Node, error) {
	const op = "node.ImportNode"
	if n == nil {
		return nil, ErrNilNode
	}
	switch n.Type() {
	case DocumentNodeType, DocumentTypeNodeType:
		return nil, newError(NotSupportedErr, op, n.Type().String()+" cannot be imported")
	}
	clone := n.CloneNode(deep)
	adopt(clone, d)
	return clone, nil
}

func (d *Document) AppendChild(child Node) error {
	return appendChild(d, child)
}

func (d *Document) InsertBefore(newChild, refChild Node) error {
	return insertBefore(d, newChild, refChild)
}

func (d *Document) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(d, newChild, oldChild)
}

func (d *Document) RemoveChild(child Node) error {
	return removeChild(d, child)
}

// CloneNode copies the document. A deep clone copies the entire tree
// into the new document; a shallow clone is an empty document with
// the same version, encoding and standalone declaration.
func (d *Document) CloneNode(deep bool) Node {
	clone := newDocument(d.version, d.encoding, d.standalone)
	if deep {
		for c := d.firstChild; c != nil; c = c.NextSibling() {
			cc := c.CloneNode(true)
			adopt(cc, clone)
			linkBefore(clone, cc, nil)
		}
	}
	return clone
}

package node

// Narrowing helpers from the generic Node to a concrete kind. Each
// succeeds only on an exact kind match and reports failure through the
// boolean, never an error.

func AsDocument(n Node) (*Document, bool) {
	v, ok := n.(*Document)
	return v, ok
}

func AsElement(n Node) (*Element, bool) {
	v, ok := n.(*Element)
	return v, ok
}

func AsAttribute(n Node) (*Attribute, bool) {
	v, ok := n.(*Attribute)
	return v, ok
}

func AsText(n Node) (*Text, bool) {
	v, ok := n.(*Text)
	return v, ok
}

func AsCDATASection(n Node) (*CDATASection, bool) {
	v, ok := n.(*CDATASection)
	return v, ok
}

func AsComment(n Node) (*Comment, bool) {
	v, ok := n.(*Comment)
	return v, ok
}

func AsProcessingInstruction(n Node) (*ProcessingInstruction, bool) {
	v, ok := n.(*ProcessingInstruction)
	return v, ok
}

func AsDocumentFragment(n Node) (*DocumentFragment, bool) {
	v, ok := n.(*DocumentFragment)
	return v, ok
}

func AsDocumentType(n Node) (*DocumentType, bool) {
	v, ok := n.(*DocumentType)
	return v, ok
}

func AsEntity(n Node) (*Entity, bool) {
	v, ok := n.(*Entity)
	return v, ok
}

func AsEntityReference(n Node) (*EntityRef, bool) {
	v, ok := n.(*EntityRef)
	return v, ok
}

func AsNotation(n Node) (*Notation, bool) {
	v, ok := n.(*Notation)
	return v, ok
}

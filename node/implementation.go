package node

import "strings"

// Implementation is the factory for documents and document types, and
// the sole constructor path for new trees.
type Implementation struct{}

var implementation Implementation

func GetImplementation() *Implementation {
	return &implementation
}

func hasFeature(feature, version string) bool {
	switch strings.ToLower(feature) {
	case "core", "xml":
	default:
		return false
	}
	switch version {
	case "1.0", "2.0":
		return true
	}
	return false
}

// HasFeature reports whether a feature/version pair is supported:
// Core and XML, versions 1.0 and 2.0.
func (*Implementation) HasFeature(feature, version string) bool {
	return hasFeature(feature, version)
}

// CreateDocumentType creates a detached doctype for later attachment
// through CreateDocument or AppendChild.
func (*Implementation) CreateDocumentType(qname, publicID, systemID string) (*DocumentType, error) {
	parsed, err := ParseName(qname)
	if err != nil {
		return nil, err
	}
	return newDocumentType(parsed, publicID, systemID), nil
}

// CreateDocument creates a new document. When qname is non-empty it is
// validated (together with nsuri) as the name the document element is
// expected to carry; the element itself is created and attached by the
// caller. A doctype, when given, must be detached and becomes a child
// of the new document.
func (*Implementation) CreateDocument(nsuri, qname string, doctype *DocumentType, options ...DocumentOption) (*Document, error) {
	const op = "node.CreateDocument"

	if qname != "" {
		if _, err := ParseNameNS(nsuri, qname); err != nil {
			return nil, err
		}
	} else if nsuri != "" {
		return nil, newError(NamespaceErr, op, "namespace URI given without a qualified name")
	}

	version := ""
	encoding := ""
	standalone := DocumentStandaloneType(StandaloneNoXMLDecl)
	for _, option := range options {
		switch option.Ident() {
		case identDocumentEncoding{}:
			encoding = option.Value().(string)
		case identDocumentVersion{}:
			version = option.Value().(string)
		case identDocumentStandalone{}:
			standalone = option.Value().(DocumentStandaloneType)
		}
	}

	doc := newDocument(version, encoding, standalone)
	if doctype != nil {
		if doctype.doc != nil {
			return nil, newError(WrongDocumentErr, op, "doctype is already attached to a document")
		}
		if err := doc.AppendChild(doctype); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

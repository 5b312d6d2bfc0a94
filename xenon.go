// Package xenon implements a document tree modeled after the W3C DOM
// (Level 2 Core): a Document produced through an Implementation
// factory, nodes created and owned by their Document, and a dumper
// that serializes the tree back to markup.
//
// The concrete node types live in the node package, and serialization
// lives in the s11n package. This package ties them together and adds
// a few conveniences for the common cases.
package xenon

import (
	"strings"

	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/s11n"
)

const Version = "0.1.0"

// Node is the interface shared by every member of a document tree.
type Node = node.Node

type NodeType = node.NodeType

// Implementation returns the entry point to the factory methods that
// create documents and document types.
func Implementation() *node.Implementation {
	return node.GetImplementation()
}

// CreateDocument is shorthand for Implementation().CreateDocument.
func CreateDocument(nsuri, qname string, doctype *node.DocumentType, options ...node.DocumentOption) (*node.Document, error) {
	return node.GetImplementation().CreateDocument(nsuri, qname, doctype, options...)
}

// Walk visits n and every node below it in document order, calling fn
// for each. Traversal stops at the first error.
func Walk(n Node, fn node.WalkFunc) error {
	return node.Walk(n, fn)
}

// XMLString serializes n and returns the markup as a string.
func XMLString(n Node, options ...s11n.DumpOption) (string, error) {
	var sb strings.Builder
	d := s11n.New(options...)
	if err := d.DumpNode(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasFeature(t *testing.T) {
	impl := GetImplementation()

	for _, feature := range []string{"Core", "core", "XML", "xml"} {
		for _, version := range []string{"1.0", "2.0"} {
			if !assert.True(t, impl.HasFeature(feature, version), "HasFeature(%q, %q)", feature, version) {
				return
			}
		}
	}

	if !assert.False(t, impl.HasFeature("Core", "3.0"), "unknown version is not supported") {
		return
	}
	if !assert.False(t, impl.HasFeature("Traversal", "2.0"), "unknown feature is not supported") {
		return
	}

	// every node answers the same question
	doc := makeDocument(t)
	if !assert.True(t, doc.IsSupported("XML", "1.0"), "IsSupported mirrors HasFeature") {
		return
	}
}

func TestCreateDocument(t *testing.T) {
	impl := GetImplementation()

	// the qualified name is validated, but the element itself is left
	// for the caller to create and attach
	doc, err := impl.CreateDocument("urn:example", "ex:catalog", nil)
	if !assert.NoError(t, err, "CreateDocument succeeds") {
		return
	}
	if !assert.Nil(t, doc.DocumentElement(), "no document element is created") {
		return
	}

	root, err := doc.CreateElementNS("urn:example", "ex:catalog")
	if !assert.NoError(t, err, "caller creates the element") {
		return
	}
	if !assert.NoError(t, doc.AppendChild(root), "caller attaches it") {
		return
	}

	_, err = impl.CreateDocument("urn:example", "ex:", nil)
	if !assert.True(t, errors.Is(err, ErrInvalidCharacter), "malformed qualified name is rejected") {
		return
	}
	_, err = impl.CreateDocument("", "ex:catalog", nil)
	if !assert.True(t, errors.Is(err, ErrNamespace), "prefix without URI is rejected") {
		return
	}
	_, err = impl.CreateDocument("urn:example", "", nil)
	if !assert.True(t, errors.Is(err, ErrNamespace), "URI without name is rejected") {
		return
	}
}

func TestCreateDocumentOptions(t *testing.T) {
	impl := GetImplementation()
	doc, err := impl.CreateDocument("", "", nil,
		WithVersion("1.1"),
		WithEncoding("utf-8"),
		WithStandalone(StandaloneExplicitYes),
	)
	if !assert.NoError(t, err, "CreateDocument with options succeeds") {
		return
	}
	if !assert.Equal(t, "1.1", doc.Version(), "version recorded") {
		return
	}
	if !assert.Equal(t, "utf-8", doc.Encoding(), "encoding recorded") {
		return
	}
	if !assert.Equal(t, DocumentStandaloneType(StandaloneExplicitYes), doc.Standalone(), "standalone recorded") {
		return
	}

	plain := makeDocument(t)
	if !assert.Equal(t, "1.0", plain.Version(), "version defaults to 1.0") {
		return
	}
	if !assert.Equal(t, DocumentStandaloneType(StandaloneNoXMLDecl), plain.Standalone(), "standalone defaults to no declaration") {
		return
	}
}

func TestErrorTaxonomy(t *testing.T) {
	err := NewError(HierarchyRequestErr, "node.AppendChild", "detail")

	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "matches its sentinel") {
		return
	}
	if !assert.False(t, errors.Is(err, ErrNotFound), "does not match other sentinels") {
		return
	}

	var domErr *DOMError
	if !assert.True(t, errors.As(err, &domErr), "unwraps to DOMError") {
		return
	}
	if !assert.Equal(t, HierarchyRequestErr, domErr.Code, "numeric code preserved") {
		return
	}
	if !assert.Equal(t, "node.AppendChild: hierarchy request error: detail", err.Error(), "message format") {
		return
	}
}

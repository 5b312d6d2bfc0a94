package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	parsed, err := ParseName("foo")
	if !assert.NoError(t, err, `ParseName("foo") succeeds`) {
		return
	}
	if !assert.Equal(t, Name{Local: "foo"}, parsed, "no prefix, no URI") {
		return
	}

	// scanning is rune-wise, not byte-wise
	parsed, err = ParseName("日本語:要素")
	if !assert.NoError(t, err, `ParseName("日本語:要素") succeeds`) {
		return
	}
	if !assert.Equal(t, Name{Prefix: "日本語", Local: "要素"}, parsed, "multi-byte runes survive decomposition") {
		return
	}

	parsed, err = ParseName("svg:rect")
	if !assert.NoError(t, err, `ParseName("svg:rect") succeeds`) {
		return
	}
	if !assert.Equal(t, Name{Prefix: "svg", Local: "rect"}, parsed, "prefix split off") {
		return
	}
	if !assert.Equal(t, "svg:rect", parsed.String(), "String() reassembles the qualified name") {
		return
	}
}

func TestParseNameInvalid(t *testing.T) {
	for _, qname := range []string{"", "1foo", "-foo", "foo bar", "foo:", ":foo", "a:b:c", "foo\tbar"} {
		_, err := ParseName(qname)
		if !assert.Error(t, err, "ParseName(%q) fails", qname) {
			return
		}
		if !assert.True(t, errors.Is(err, ErrInvalidCharacter), "ParseName(%q) reports an invalid character", qname) {
			return
		}
	}

	// names may contain dots, hyphens and digits after the first rune
	for _, qname := range []string{"foo-bar", "foo.bar", "f00", "_foo", "ns1:local-part"} {
		if _, err := ParseName(qname); !assert.NoError(t, err, "ParseName(%q) succeeds", qname) {
			return
		}
	}
}

func TestParseNameNS(t *testing.T) {
	parsed, err := ParseNameNS("urn:example", "ex:foo")
	if !assert.NoError(t, err, "prefixed name with a URI succeeds") {
		return
	}
	if !assert.Equal(t, Name{Prefix: "ex", Local: "foo", URI: "urn:example"}, parsed) {
		return
	}

	_, err = ParseNameNS("", "ex:foo")
	if !assert.True(t, errors.Is(err, ErrNamespace), "prefixed name without a URI fails") {
		return
	}

	_, err = ParseNameNS("urn:example", "xml:lang")
	if !assert.True(t, errors.Is(err, ErrNamespace), "xml prefix rejects foreign URIs") {
		return
	}

	_, err = ParseNameNS(XMLNamespaceURI, "xml:lang")
	if !assert.NoError(t, err, "xml prefix accepts its reserved URI") {
		return
	}

	_, err = ParseNameNS("urn:example", "xmlns:ex")
	if !assert.True(t, errors.Is(err, ErrNamespace), "xmlns prefix rejects foreign URIs") {
		return
	}

	_, err = ParseNameNS(XMLNSNamespaceURI, "xmlns:ex")
	if !assert.NoError(t, err, "xmlns prefix accepts its reserved URI") {
		return
	}

	_, err = ParseNameNS("urn:example", "xmlns")
	if !assert.True(t, errors.Is(err, ErrNamespace), "bare xmlns rejects foreign URIs") {
		return
	}
}

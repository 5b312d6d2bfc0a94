package node

import (
	"strings"
	"unicode"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/strcursor"
)

// Reserved namespace URIs.
const (
	XMLNamespaceURI   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespaceURI = "http://www.w3.org/2000/xmlns/"
)

const MaxNameLength = 50000

// Name is a decomposed qualified name: an optional prefix, the local
// part, and the namespace URI the prefix is bound to (empty when the
// name is not namespaced).
type Name struct {
	Prefix string
	Local  string
	URI    string
}

func (n Name) String() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Local
	}
	return n.Local
}

func isNameStartChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '.' || r == '-' || r == '_' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Extender)
}

// scanNCName consumes one NCName (a name with no colon) off the
// cursor. The cursor is left at the first rune past the name.
func scanNCName(cur strcursor.Cursor) (string, error) {
	if cur.Done() {
		return "", newError(InvalidCharacterErr, "node.ParseName", "empty name")
	}

	if c := cur.Peek(); !isNameStartChar(c) {
		return "", newError(InvalidCharacterErr, "node.ParseName", "name must start with a letter or '_', found "+string(c))
	}

	var sb strings.Builder
	sb.WriteRune(cur.Cur())
	for count := 1; !cur.Done(); count++ {
		if count > MaxNameLength {
			return "", newError(InvalidCharacterErr, "node.ParseName", "name too long")
		}
		if c := cur.Peek(); !isNameChar(c) || c == ':' {
			break
		}
		sb.WriteRune(cur.Cur())
	}
	return sb.String(), nil
}

// ParseName validates qname and decomposes it into prefix and local
// part. No namespace constraints are applied; use ParseNameNS when a
// namespace URI context is available.
func ParseName(qname string) (Name, error) {
	if pdebug.Enabled {
		pdebug.Printf("node.ParseName %q", qname)
	}

	cur := strcursor.NewRuneCursor(strings.NewReader(qname))
	first, err := scanNCName(cur)
	if err != nil {
		return Name{}, err
	}

	if cur.Done() {
		return Name{Local: first}, nil
	}

	if cur.Peek() != ':' {
		return Name{}, newError(InvalidCharacterErr, "node.ParseName", "invalid character in name "+qname)
	}
	if err := cur.Advance(1); err != nil {
		return Name{}, newError(InvalidCharacterErr, "node.ParseName", "malformed qualified name "+qname)
	}

	local, err := scanNCName(cur)
	if err != nil {
		return Name{}, newError(InvalidCharacterErr, "node.ParseName", "malformed qualified name "+qname)
	}
	if !cur.Done() {
		return Name{}, newError(InvalidCharacterErr, "node.ParseName", "trailing characters in name "+qname)
	}

	return Name{Prefix: first, Local: local}, nil
}

// ParseNameNS validates qname against the namespace URI it is meant to
// be bound to, and decomposes it. A prefixed name requires a non-empty
// URI; the reserved xml and xmlns prefixes accept only their fixed
// URIs.
func ParseNameNS(nsuri, qname string) (Name, error) {
	name, err := ParseName(qname)
	if err != nil {
		return Name{}, err
	}
	name.URI = nsuri

	switch name.Prefix {
	case "":
		if name.Local == "xmlns" && nsuri != XMLNSNamespaceURI {
			return Name{}, newError(NamespaceErr, "node.ParseNameNS", "xmlns is bound to "+XMLNSNamespaceURI)
		}
	case "xml":
		if nsuri != XMLNamespaceURI {
			return Name{}, newError(NamespaceErr, "node.ParseNameNS", "prefix xml is bound to "+XMLNamespaceURI)
		}
	case "xmlns":
		if nsuri != XMLNSNamespaceURI {
			return Name{}, newError(NamespaceErr, "node.ParseNameNS", "prefix xmlns is bound to "+XMLNSNamespaceURI)
		}
	default:
		if nsuri == "" {
			return Name{}, newError(NamespaceErr, "node.ParseNameNS", "prefix "+name.Prefix+" requires a namespace URI")
		}
	}

	return name, nil
}

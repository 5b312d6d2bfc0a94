package s11n

import (
	"io"
	"strings"

	"github.com/lestrrat-go/xenon/encoding"
	"github.com/lestrrat-go/xenon/node"
	"github.com/pkg/errors"
)

// Dumper renders a node tree as markup text. The zero value is usable;
// New applies options on top of the defaults.
type Dumper struct {
	encoding string
	xmlDecl  bool
}

func New(options ...DumpOption) *Dumper {
	d := &Dumper{xmlDecl: true}
	for _, option := range options {
		switch option.Ident() {
		case identEncoding{}:
			d.encoding = option.Value().(string)
		case identXMLDecl{}:
			d.xmlDecl = option.Value().(bool)
		}
	}
	return d
}

// DumpDoc writes the document, its XML declaration included, to out.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	if d.encoding != "" && !isUTF8(d.encoding) {
		enc := encoding.Load(d.encoding)
		if enc == nil {
			return node.NewError(node.SerializationErr, "s11n.DumpDoc", "unknown encoding "+d.encoding)
		}
		out = enc.NewEncoder().Writer(out)
	}

	if d.xmlDecl {
		if err := d.dumpDocContent(out, doc); err != nil {
			return err
		}
	}

	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		if err := d.DumpNode(out, e); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return errors.Wrap(err, `failed to write node separator`)
		}
	}
	return nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return true
	}
	return false
}

func (d *Dumper) declaredEncoding(doc *node.Document) string {
	if d.encoding != "" {
		return d.encoding
	}
	return doc.Encoding()
}

func (d *Dumper) dumpDocContent(out io.Writer, doc *node.Document) error {
	if doc.Standalone() == node.StandaloneNoXMLDecl && d.declaredEncoding(doc) == "" {
		return nil
	}

	_, _ = io.WriteString(out, `<?xml version="`)
	version := doc.Version()
	if version == "" {
		version = "1.0"
	}
	_, _ = io.WriteString(out, version+`"`)

	if enc := d.declaredEncoding(doc); enc != "" && !isUTF8(enc) {
		_, _ = io.WriteString(out, ` encoding="`+enc+`"`)
	}

	switch doc.Standalone() {
	case node.StandaloneExplicitNo:
		_, _ = io.WriteString(out, ` standalone="no"`)
	case node.StandaloneExplicitYes:
		_, _ = io.WriteString(out, ` standalone="yes"`)
	}
	_, _ = io.WriteString(out, "?>\n")
	return nil
}

func (d *Dumper) dumpDoctype(out io.Writer, dt *node.DocumentType) error {
	_, _ = io.WriteString(out, "<!DOCTYPE ")
	_, _ = io.WriteString(out, dt.Name())

	if err := dumpExternalID(out, dt.PublicID(), dt.SystemID()); err != nil {
		return err
	}

	entities := dt.Entities(nil)
	notations := dt.Notations(nil)
	if len(entities) > 0 || len(notations) > 0 {
		_, _ = io.WriteString(out, " [\n")
		for _, ent := range entities {
			if err := d.dumpEntityDecl(out, ent); err != nil {
				return err
			}
			_, _ = io.WriteString(out, "\n")
		}
		for _, not := range notations {
			if err := d.dumpNotationDecl(out, not); err != nil {
				return err
			}
			_, _ = io.WriteString(out, "\n")
		}
		_, _ = io.WriteString(out, "]")
	}

	_, _ = io.WriteString(out, ">")
	return nil
}

// dumpExternalID writes the PUBLIC/SYSTEM identifier pair, preceded by
// a space, or nothing when both are empty.
func dumpExternalID(out io.Writer, publicID, systemID string) error {
	switch {
	case publicID != "":
		_, _ = io.WriteString(out, " PUBLIC ")
		if err := DumpQuotedString(out, publicID); err != nil {
			return err
		}
		if systemID != "" {
			_, _ = io.WriteString(out, " ")
			if err := DumpQuotedString(out, systemID); err != nil {
				return err
			}
		}
	case systemID != "":
		_, _ = io.WriteString(out, " SYSTEM ")
		if err := DumpQuotedString(out, systemID); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) dumpEntityDecl(out io.Writer, ent *node.Entity) error {
	_, _ = io.WriteString(out, "<!ENTITY ")
	_, _ = io.WriteString(out, ent.Name())

	if ent.PublicID() == "" && ent.SystemID() == "" {
		_, _ = io.WriteString(out, " ")
		if err := dumpEntityContent(out, ent.ReplacementText()); err != nil {
			return err
		}
	} else {
		if err := dumpExternalID(out, ent.PublicID(), ent.SystemID()); err != nil {
			return err
		}
	}
	_, _ = io.WriteString(out, ">")
	return nil
}

// dumpEntityContent quotes an internal entity's replacement text,
// escaping the characters that cannot appear literally in an entity
// value.
func dumpEntityContent(out io.Writer, content string) error {
	if !strings.ContainsAny(content, `%"&`) {
		return DumpQuotedString(out, content)
	}

	_, _ = io.WriteString(out, `"`)
	for _, c := range content {
		switch c {
		case '"':
			_, _ = io.WriteString(out, "&quot;")
		case '%':
			_, _ = io.WriteString(out, "&#x25;")
		case '&':
			_, _ = io.WriteString(out, "&amp;")
		default:
			_, _ = io.WriteString(out, string(c))
		}
	}
	_, _ = io.WriteString(out, `"`)
	return nil
}

func (d *Dumper) dumpNotationDecl(out io.Writer, not *node.Notation) error {
	_, _ = io.WriteString(out, "<!NOTATION ")
	_, _ = io.WriteString(out, not.Name())
	if err := dumpExternalID(out, not.PublicID(), not.SystemID()); err != nil {
		return err
	}
	_, _ = io.WriteString(out, ">")
	return nil
}

func (d *Dumper) dumpElement(out io.Writer, e *node.Element) error {
	name := e.Name()

	_, _ = io.WriteString(out, "<")
	_, _ = io.WriteString(out, name)

	for _, attr := range e.Attributes(nil) {
		_, _ = io.WriteString(out, " ")
		_, _ = io.WriteString(out, attr.Name())
		_, _ = io.WriteString(out, `="`)
		if err := EscapeAttrValue(out, []byte(attr.Value())); err != nil {
			return err
		}
		_, _ = io.WriteString(out, `"`)
	}

	if e.FirstChild() == nil {
		_, _ = io.WriteString(out, "/>")
		return nil
	}

	_, _ = io.WriteString(out, ">")
	for child := e.FirstChild(); child != nil; child = child.NextSibling() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}
	_, _ = io.WriteString(out, "</")
	_, _ = io.WriteString(out, name)
	_, _ = io.WriteString(out, ">")
	return nil
}

// DumpNode writes the markup form of n and its subtree to out.
func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	const op = "s11n.DumpNode"

	switch n.Type() {
	case node.DocumentNodeType:
		doc, _ := node.AsDocument(n)
		return d.DumpDoc(out, doc)
	case node.DocumentTypeNodeType:
		dt, _ := node.AsDocumentType(n)
		return d.dumpDoctype(out, dt)
	case node.ElementNodeType:
		e, _ := node.AsElement(n)
		return d.dumpElement(out, e)
	case node.AttributeNodeType:
		attr, _ := node.AsAttribute(n)
		_, _ = io.WriteString(out, attr.Name())
		_, _ = io.WriteString(out, `="`)
		if err := EscapeAttrValue(out, []byte(attr.Value())); err != nil {
			return err
		}
		_, _ = io.WriteString(out, `"`)
		return nil
	case node.TextNodeType:
		t, _ := node.AsText(n)
		return EscapeText(out, []byte(t.Data()), false)
	case node.CDATASectionNodeType:
		c, _ := node.AsCDATASection(n)
		if strings.Contains(c.Data(), "]]>") {
			return node.NewError(node.SerializationErr, op, `CDATA section contains "]]>"`)
		}
		_, _ = io.WriteString(out, "<![CDATA[")
		_, _ = io.WriteString(out, c.Data())
		_, _ = io.WriteString(out, "]]>")
		return nil
	case node.CommentNodeType:
		c, _ := node.AsComment(n)
		if strings.Contains(c.Data(), "--") || strings.HasSuffix(c.Data(), "-") {
			return node.NewError(node.SerializationErr, op, "comment contains an unrepresentable hyphen run")
		}
		_, _ = io.WriteString(out, "<!--")
		_, _ = io.WriteString(out, c.Data())
		_, _ = io.WriteString(out, "-->")
		return nil
	case node.ProcessingInstructionNodeType:
		pi, _ := node.AsProcessingInstruction(n)
		if strings.Contains(pi.Data(), "?>") {
			return node.NewError(node.SerializationErr, op, `processing instruction data contains "?>"`)
		}
		_, _ = io.WriteString(out, "<?")
		_, _ = io.WriteString(out, pi.Target())
		if data := pi.Data(); data != "" {
			_, _ = io.WriteString(out, " ")
			_, _ = io.WriteString(out, data)
		}
		_, _ = io.WriteString(out, "?>")
		return nil
	case node.EntityRefNodeType:
		_, _ = io.WriteString(out, "&")
		_, _ = io.WriteString(out, n.Name())
		_, _ = io.WriteString(out, ";")
		return nil
	case node.EntityNodeType:
		ent, _ := node.AsEntity(n)
		return d.dumpEntityDecl(out, ent)
	case node.NotationNodeType:
		not, _ := node.AsNotation(n)
		return d.dumpNotationDecl(out, not)
	case node.DocumentFragNodeType:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if err := d.DumpNode(out, child); err != nil {
				return err
			}
		}
		return nil
	}

	return node.NewError(node.SerializationErr, op, "unknown node kind")
}

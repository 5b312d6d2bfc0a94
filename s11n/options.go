package s11n

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identXMLDecl struct{}

type DumpOption interface {
	Option
	dumpOption()
}

type dumpOption struct{ Option }

func (*dumpOption) dumpOption() {}

// WithEncoding makes the dumper transform its output into the named
// charset and advertise it in the XML declaration
func WithEncoding(v string) DumpOption {
	return &dumpOption{option.New(identEncoding{}, v)}
}

// WithXMLDecl controls whether the XML declaration is written when
// dumping a document. It defaults to true
func WithXMLDecl(v bool) DumpOption {
	return &dumpOption{option.New(identXMLDecl{}, v)}
}

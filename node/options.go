package node

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identDocumentEncoding struct{}
type identDocumentStandalone struct{}
type identDocumentVersion struct{}

type DocumentOption interface {
	Option
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}

// WithEncoding specifies the character encoding recorded on a document
func WithEncoding(v string) DocumentOption {
	return &documentOption{option.New(identDocumentEncoding{}, v)}
}

// WithStandalone specifies the standalone declaration of a document
func WithStandalone(v DocumentStandaloneType) DocumentOption {
	return &documentOption{option.New(identDocumentStandalone{}, v)}
}

// WithVersion specifies the XML version of a document
func WithVersion(v string) DocumentOption {
	return &documentOption{option.New(identDocumentVersion{}, v)}
}

package node

import "errors"

var ErrNilNode = errors.New("nil node")

// ErrorCode enumerates the failure kinds surfaced by tree operations.
// The numeric values follow the DOMException codes where one exists.
type ErrorCode int

const (
	IndexSizeErr             ErrorCode = 1
	HierarchyRequestErr      ErrorCode = 3
	WrongDocumentErr         ErrorCode = 4
	InvalidCharacterErr      ErrorCode = 5
	NoModificationAllowedErr ErrorCode = 7
	NotFoundErr              ErrorCode = 8
	NotSupportedErr          ErrorCode = 9
	InUseAttributeErr        ErrorCode = 10
	InvalidStateErr          ErrorCode = 11
	NamespaceErr             ErrorCode = 14
	SerializationErr         ErrorCode = 51
)

func (c ErrorCode) String() string {
	switch c {
	case IndexSizeErr:
		return "index out of range"
	case HierarchyRequestErr:
		return "hierarchy request error"
	case WrongDocumentErr:
		return "wrong owner document"
	case InvalidCharacterErr:
		return "invalid character"
	case NoModificationAllowedErr:
		return "no modification allowed"
	case NotFoundErr:
		return "not found"
	case NotSupportedErr:
		return "not supported"
	case InUseAttributeErr:
		return "attribute in use"
	case InvalidStateErr:
		return "resource conflict"
	case NamespaceErr:
		return "namespace error"
	case SerializationErr:
		return "serialization failure"
	}
	return "unknown error"
}

// DOMError is the error type returned by every mutation and validation
// entry point. Errors compare equal under errors.Is when their codes
// match, so callers can test against the package sentinels.
type DOMError struct {
	Code   ErrorCode
	Op     string
	Detail string
}

func (e *DOMError) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}
	return msg
}

func (e *DOMError) Is(target error) bool {
	t, ok := target.(*DOMError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrIndexSize             = &DOMError{Code: IndexSizeErr}
	ErrHierarchyRequest      = &DOMError{Code: HierarchyRequestErr}
	ErrWrongDocument         = &DOMError{Code: WrongDocumentErr}
	ErrInvalidCharacter      = &DOMError{Code: InvalidCharacterErr}
	ErrNoModificationAllowed = &DOMError{Code: NoModificationAllowedErr}
	ErrNotFound              = &DOMError{Code: NotFoundErr}
	ErrNotSupported          = &DOMError{Code: NotSupportedErr}
	ErrInUseAttribute        = &DOMError{Code: InUseAttributeErr}
	ErrResourceConflict      = &DOMError{Code: InvalidStateErr}
	ErrNamespace             = &DOMError{Code: NamespaceErr}
	ErrSerialization         = &DOMError{Code: SerializationErr}
)

// NewError creates a DOMError. It exists for collaborating packages
// such as the serializer; code in this package uses newError.
func NewError(code ErrorCode, op, detail string) error {
	return newError(code, op, detail)
}

func newError(code ErrorCode, op, detail string) *DOMError {
	return &DOMError{Code: code, Op: op, Detail: detail}
}

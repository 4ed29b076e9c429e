package codec

import (
	"errors"
	"fmt"
)

// Kind categorizes a codec failure. The boundary layer maps kinds onto its
// closed status-code set, so every error produced by this package carries
// exactly one kind.
type Kind string

const (
	KindDecode      Kind = "decode"      // malformed or truncated image data
	KindEncode      Kind = "encode"      // encoder rejected the image
	KindIO          Kind = "io"          // file open/read/write failure
	KindUnsupported Kind = "unsupported" // format not supported by the codec set
	KindLimit       Kind = "limit"       // dimensions or resource limits exceeded
)

// Error is the structured failure type returned by every fallible codec
// operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("codec: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind, so callers can test against a prototype
// without caring about the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Kind == t.Kind
}

func wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind from an error produced by this package.
// It reports false for nil and for foreign errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

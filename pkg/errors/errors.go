// Package errors provides structured error handling for the squircle library.
//
// The shape geometry itself has no error conditions: the math is total over
// clamped non-negative inputs, and missing children or invisible brushes are
// modeled as "draw less" rather than as errors. The kinds below cover the
// surfaces around the core: style resource loading and image output.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStyle indicates a style resource parsing or validation failure.
	KindStyle
	// KindRender indicates a rendering backend error.
	KindRender
	// KindEncode indicates an image encoding failure.
	KindEncode
)

func (k ErrorKind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindRender:
		return "render"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the squircle library.
type Error struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs a structured error wrapping err.
func E(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

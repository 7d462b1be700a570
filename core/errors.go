package core

import (
	"errors"
	"fmt"
)

// Kind identifies one of the recoverable failure modes a Tree operation can
// report. Callers distinguish them with IsKind (or errors.As into *Error)
// rather than by matching error strings.
type Kind int

const (
	// InvalidArgument covers non-positive dim/bucket_size/radius, a buffer
	// of the wrong rank, or an unsupported element type.
	InvalidArgument Kind = iota
	// OutOfMemory covers any allocation failure.
	OutOfMemory
	// Uninitialized covers a query issued before SetData has built a tree.
	Uninitialized
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfMemory:
		return "out of memory"
	case Uninitialized:
		return "uninitialized"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by every Tree operation that fails.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewError builds an *Error of the given kind with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

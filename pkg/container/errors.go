package container

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies manager errors.
type ErrorKind string

const (
	// DuplicateIndex marks registration under an already-taken index.
	DuplicateIndex ErrorKind = "duplicate index"
	// NoSuchIndex marks a reference to an unknown or unreachable index.
	NoSuchIndex ErrorKind = "no such index"
	// OutputFailure marks a failed frame flush to the backend.
	OutputFailure ErrorKind = "output failure"
	// MalformedLayout marks a rejected layout tree.
	MalformedLayout ErrorKind = "malformed layout"
)

// Error is the error type returned by Manager operations.
type Error struct {
	Kind   ErrorKind
	Index  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("container: ")
	sb.WriteString(string(e.Kind))
	if e.Index != "" {
		fmt.Fprintf(&sb, ": index %q", e.Index)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a container Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

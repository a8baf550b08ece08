package dimstore

import "fmt"

// ShapeMismatchError is raised when a Selection, Key, or DimensionRef built
// against one Spec is used with a Store or Selection built against a
// different Spec.
//
// This is a precondition violation at the call site, never a recoverable
// runtime error. dimstore reports it by panicking with this type so that
// callers who want to recover at a process boundary can do so with
// errors.As.
type ShapeMismatchError struct {
	Detail string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("dimstore: shape mismatch: %s", e.Detail)
}

func shapeMismatch(format string, args ...any) {
	panic(&ShapeMismatchError{Detail: fmt.Sprintf(format, args...)})
}

// InvariantError indicates that dimstore's own internal state disagrees
// with its Spec: a stored key of the wrong shape, an index bucket for an
// unknown dimension, and so on. It is never caused by valid caller
// behavior; encountering one means dimstore itself has a bug.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("dimstore: internal invariant violated: %s", e.Detail)
}

func invariantViolation(format string, args ...any) {
	panic(&InvariantError{Detail: fmt.Sprintf(format, args...)})
}

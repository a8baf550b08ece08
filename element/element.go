// Package element provides the small typed value used as the element type
// of every dimension in a dimstore key.
//
// The representation is designed to make ordering and index lookups fast
// and predictable: no reflection, no fmt-based stringification on the hot
// path.
package element

import "fmt"

// Kind identifies the concrete type carried by an Element.
type Kind uint8

const (
	// KindInvalid is the zero value; no Element should carry it.
	KindInvalid Kind = iota
	// KindInt identifies a 64-bit signed integer element.
	KindInt
	// KindText identifies a string element.
	KindText
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindText:
		return "Text"
	default:
		return "Invalid"
	}
}

// Element is a single value at one position of a dimensional key.
//
// Element is a value type: it is safe to copy, compare with ==, and use
// as a map key.
type Element struct {
	kind Kind
	i    int64
	s    string
}

// Int builds an integer element.
func Int(v int64) Element { return Element{kind: KindInt, i: v} }

// Text builds a string element.
func Text(v string) Element { return Element{kind: KindText, s: v} }

// Kind reports which concrete type this element carries.
func (e Element) Kind() Kind { return e.kind }

// Int returns the integer value. It is only meaningful when Kind() == KindInt.
func (e Element) Int() int64 { return e.i }

// Text returns the string value. It is only meaningful when Kind() == KindText.
func (e Element) Text() string { return e.s }

// String renders the element for logging and error messages.
func (e Element) String() string {
	switch e.kind {
	case KindInt:
		return fmt.Sprintf("%d", e.i)
	case KindText:
		return fmt.Sprintf("%q", e.s)
	default:
		return "<invalid element>"
	}
}

// Compare returns a negative number if a < b, zero if a == b, and a
// positive number if a > b, using the total order of a's kind.
//
// Compare panics if a and b carry different kinds. Elements at a single
// dimension position always share a kind (enforced when a Spec is built
// and when Selections and Keys are constructed), so a mismatch here
// indicates a bug in dimstore itself, not a caller error.
func Compare(a, b Element) int {
	if a.kind != b.kind {
		panic(fmt.Sprintf("element: cannot compare %s with %s", a.kind, b.kind))
	}
	switch a.kind {
	case KindInt:
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	case KindText:
		switch {
		case a.s < b.s:
			return -1
		case a.s > b.s:
			return 1
		default:
			return 0
		}
	default:
		panic("element: cannot compare invalid elements")
	}
}

// Equal reports whether a and b carry the same kind and value.
func Equal(a, b Element) bool {
	return a.kind == b.kind && Compare(a, b) == 0
}

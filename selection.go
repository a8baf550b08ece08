package dimstore

import "github.com/dimstore-go/dimstore/element"

type opKind uint8

const (
	opEQ opKind = iota
	opGT
	opLT
	opGTE
	opLTE
	opAND
	opOR
	opALL
	opNONE
)

// Selection is an algebraic expression over a Spec's dimensions: a
// comparison at a single dimension, a boolean combination of two
// Selections, or one of the two constants All/None.
//
// A Selection is only valid against the Spec it was built from; combining
// Selections from two different Specs panics with a ShapeMismatchError.
type Selection struct {
	spec  *Spec
	op    opKind
	pos   int
	value element.Element
	left  *Selection
	right *Selection
}

func compare(spec *Spec, name string, op opKind, e element.Element) *Selection {
	ref := spec.Dim(name)
	ref.requireKind(e)
	return &Selection{spec: spec, op: op, pos: ref.pos, value: e}
}

// EQ selects oids whose element set at the named dimension contains e.
func EQ(spec *Spec, name string, e element.Element) *Selection {
	return compare(spec, name, opEQ, e)
}

// GT selects oids with an element strictly greater than e at the named
// dimension.
func GT(spec *Spec, name string, e element.Element) *Selection {
	return compare(spec, name, opGT, e)
}

// LT selects oids with an element strictly less than e at the named
// dimension.
func LT(spec *Spec, name string, e element.Element) *Selection {
	return compare(spec, name, opLT, e)
}

// GTE selects oids with an element greater than or equal to e at the named
// dimension.
func GTE(spec *Spec, name string, e element.Element) *Selection {
	return compare(spec, name, opGTE, e)
}

// LTE selects oids with an element less than or equal to e at the named
// dimension.
func LTE(spec *Spec, name string, e element.Element) *Selection {
	return compare(spec, name, opLTE, e)
}

// All returns the Selection matching every oid currently stored under spec.
func All(spec *Spec) *Selection {
	return &Selection{spec: spec, op: opALL}
}

// None returns the Selection matching no oid.
func None(spec *Spec) *Selection {
	return &Selection{spec: spec, op: opNONE}
}

// And returns the intersection of a and b's resolutions, applying the
// absorption identities AND(NONE, s) = NONE and AND(ALL, s) = s (and their
// mirror images) at construction time rather than at evaluation time, so a
// Selection built once and reused for many lookups pays for the
// simplification only once.
func And(a, b *Selection) *Selection {
	requireSameSpec(a.spec, b.spec)
	switch {
	case a.op == opNONE || b.op == opNONE:
		return None(a.spec)
	case a.op == opALL:
		return b
	case b.op == opALL:
		return a
	default:
		return &Selection{spec: a.spec, op: opAND, left: a, right: b}
	}
}

// Or returns the union of a and b's resolutions, applying the absorption
// identities OR(ALL, s) = ALL and OR(NONE, s) = s (and their mirror images)
// at construction time.
func Or(a, b *Selection) *Selection {
	requireSameSpec(a.spec, b.spec)
	switch {
	case a.op == opALL || b.op == opALL:
		return All(a.spec)
	case a.op == opNONE:
		return b
	case b.op == opNONE:
		return a
	default:
		return &Selection{spec: a.spec, op: opOR, left: a, right: b}
	}
}

package dimstore

import (
	"fmt"

	"github.com/dimstore-go/dimstore/element"
)

// Mode is the variant of a dimension: whether its stored key fragment is a
// caller-supplied set of elements or a store-assigned single element.
type Mode uint8

const (
	// Multi dimensions store an unordered, possibly empty, set of
	// elements per oid, supplied by the caller on Insert.
	Multi Mode = iota
	// Auto dimensions store exactly one element per oid, assigned by the
	// store's per-dimension generator on Insert.
	Auto
)

// String renders the mode for logging and error messages.
func (m Mode) String() string {
	switch m {
	case Multi:
		return "Multi"
	case Auto:
		return "Auto"
	default:
		return "Invalid"
	}
}

// DimensionSpec describes one position of a Spec.
//
// Initial and Step are only meaningful for Auto dimensions; they configure
// the dimension's element generator (see dimindex.Generator). A Step of 0
// is treated as 1.
type DimensionSpec struct {
	Name    string
	Mode    Mode
	Kind    element.Kind
	Initial int64
	Step    int64
}

// Spec is the fixed, immutable shape of a Store: its arity and the
// per-position name, mode, and element kind of every dimension.
//
// A Spec is the store-shape tag: Keys, Selections, and DimensionRefs
// carry a pointer to the Spec they were built from, and every operation
// that combines values from two Specs checks that the pointers are
// identical, panicking with a
// ShapeMismatchError otherwise. Two Specs built with equal DimensionSpec
// slices but via separate NewSpec calls are therefore different shapes.
type Spec struct {
	dims []DimensionSpec
	byName map[string]int
}

// NewSpec builds a Spec from its dimensions in position order. It panics if
// dims is empty, if any Name is empty or repeated, or if any DimensionSpec
// carries element.KindInvalid.
func NewSpec(dims ...DimensionSpec) *Spec {
	if len(dims) == 0 {
		panic("dimstore: NewSpec requires at least one dimension")
	}
	byName := make(map[string]int, len(dims))
	for i, d := range dims {
		if d.Name == "" {
			panic(fmt.Sprintf("dimstore: dimension %d has an empty name", i))
		}
		if d.Kind == element.KindInvalid {
			panic(fmt.Sprintf("dimstore: dimension %q has an invalid element kind", d.Name))
		}
		if _, exists := byName[d.Name]; exists {
			panic(fmt.Sprintf("dimstore: duplicate dimension name %q", d.Name))
		}
		byName[d.Name] = i
	}
	dimsCopy := make([]DimensionSpec, len(dims))
	copy(dimsCopy, dims)
	return &Spec{dims: dimsCopy, byName: byName}
}

// Arity returns the number of dimensions, D.
func (s *Spec) Arity() int {
	return len(s.dims)
}

// DimensionRef is a checked reference to one dimension of a specific Spec:
// a runtime shape descriptor standing in for the static per-position
// typing Go's generics cannot express. Selections and Key construction
// take a DimensionRef (or the dimension name resolved to one) rather than
// a bare position, so a position from one Spec can never be silently
// applied to another.
type DimensionRef struct {
	spec *Spec
	pos  int
}

// Pos returns the dimension's position in its Spec.
func (r DimensionRef) Pos() int { return r.pos }

// Name returns the dimension's name.
func (r DimensionRef) Name() string { return r.spec.dims[r.pos].Name }

// Mode returns the dimension's mode.
func (r DimensionRef) Mode() Mode { return r.spec.dims[r.pos].Mode }

// Kind returns the dimension's element kind.
func (r DimensionRef) Kind() element.Kind { return r.spec.dims[r.pos].Kind }

// Dim resolves a dimension by name, panicking with a ShapeMismatchError if
// no dimension of that name exists in s.
func (s *Spec) Dim(name string) DimensionRef {
	pos, ok := s.byName[name]
	if !ok {
		shapeMismatch("spec has no dimension named %q", name)
	}
	return DimensionRef{spec: s, pos: pos}
}

// At resolves a dimension by position, panicking with a ShapeMismatchError
// if pos is out of range.
func (s *Spec) At(pos int) DimensionRef {
	if pos < 0 || pos >= len(s.dims) {
		shapeMismatch("dimension position %d out of range for arity %d", pos, len(s.dims))
	}
	return DimensionRef{spec: s, pos: pos}
}

// requireSameSpec panics with a ShapeMismatchError unless a and b are the
// same Spec instance.
func requireSameSpec(a, b *Spec) {
	if a != b {
		shapeMismatch("values were built from two different Specs")
	}
}

// requireKind panics with a ShapeMismatchError unless e carries the
// dimension's element kind.
func (r DimensionRef) requireKind(e element.Element) {
	if e.Kind() != r.Kind() {
		shapeMismatch("dimension %q expects %s elements, got %s", r.Name(), r.Kind(), e.Kind())
	}
}

// requireMode panics with a ShapeMismatchError unless the dimension is in
// the expected mode.
func (r DimensionRef) requireMode(m Mode) {
	if r.Mode() != m {
		shapeMismatch("dimension %q is %s, not %s", r.Name(), r.Mode(), m)
	}
}

package dimstore

import "github.com/dimstore-go/dimstore/element"

// Key is a caller-supplied composite key: an element set for each Multi
// dimension of its Spec. Auto dimensions carry no caller-supplied
// fragment; the store assigns their element on Insert.
//
// A Key is only valid for the Spec it was built from. Build it with
// Spec.NewKey().
type Key struct {
	spec     *Spec
	fragments [][]element.Element // indexed by position; nil for Auto positions
}

// KeyBuilder is an immutable fluent builder for Key. Each method returns a
// new builder with the updated fragment; the receiver is left unmodified.
type KeyBuilder struct {
	spec      *Spec
	fragments [][]element.Element
}

// NewKey returns a KeyBuilder for s with every Multi dimension defaulted
// to the empty set.
func (s *Spec) NewKey() KeyBuilder {
	return KeyBuilder{spec: s, fragments: make([][]element.Element, s.Arity())}
}

// Set installs es as the element set for the named Multi dimension,
// replacing any previously set fragment at that position. It panics with a
// ShapeMismatchError if name does not resolve against b's Spec, if that
// dimension is Auto, or if any element of es has the wrong kind.
func (b KeyBuilder) Set(name string, es ...element.Element) KeyBuilder {
	ref := b.spec.Dim(name)
	ref.requireMode(Multi)
	for _, e := range es {
		ref.requireKind(e)
	}
	next := make([][]element.Element, len(b.fragments))
	copy(next, b.fragments)
	frag := make([]element.Element, len(es))
	copy(frag, es)
	next[ref.pos] = frag
	return KeyBuilder{spec: b.spec, fragments: next}
}

// Build finalizes the builder into a Key.
func (b KeyBuilder) Build() Key {
	frag := make([][]element.Element, len(b.fragments))
	copy(frag, b.fragments)
	return Key{spec: b.spec, fragments: frag}
}

// storedKey is the internal representation of a key once every Auto
// position has been filled in by the store: identical shape to Key, except
// every position (not only Multi ones) carries a concrete fragment.
type storedKey struct {
	fragments [][]element.Element
}

// clone returns an independent copy of k. An Update's key-replacing path
// builds the new stored key from a clone, so the old key, still needed to
// remove the oid from its old index buckets, is left unchanged.
func (k storedKey) clone() storedKey {
	out := make([][]element.Element, len(k.fragments))
	for i, f := range k.fragments {
		c := make([]element.Element, len(f))
		copy(c, f)
		out[i] = c
	}
	return storedKey{fragments: out}
}

// InsertResult is the tuple, in position order, of the elements assigned
// to the Auto dimensions of a single Insert call. A Spec with zero Auto
// dimensions produces an empty InsertResult.
type InsertResult struct {
	spec *Spec
	elems []autoElem
}

type autoElem struct {
	pos  int
	elem element.Element
}

// Len returns the number of Auto dimensions in the result.
func (r InsertResult) Len() int { return len(r.elems) }

// At returns the assigned element at the i-th Auto dimension (in position
// order among Auto dimensions, not among all dimensions).
func (r InsertResult) At(i int) element.Element { return r.elems[i].elem }

// For returns the element assigned to the named Auto dimension, and
// whether that dimension exists and is Auto.
func (r InsertResult) For(name string) (element.Element, bool) {
	pos, ok := r.spec.byName[name]
	if !ok {
		return element.Element{}, false
	}
	for _, ae := range r.elems {
		if ae.pos == pos {
			return ae.elem, true
		}
	}
	return element.Element{}, false
}

// projectAuto builds the insert-result projection of a stored key: the
// tuple of Auto-dimension elements in position order.
func projectAuto(spec *Spec, sk storedKey) InsertResult {
	var elems []autoElem
	for pos, d := range spec.dims {
		if d.Mode != Auto {
			continue
		}
		frag := sk.fragments[pos]
		if len(frag) != 1 {
			invariantViolation("auto dimension %q has stored fragment of length %d, want 1", d.Name, len(frag))
		}
		elems = append(elems, autoElem{pos: pos, elem: frag[0]})
	}
	return InsertResult{spec: spec, elems: elems}
}

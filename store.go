package dimstore

import (
	"github.com/dimstore-go/dimstore/element"
	"github.com/dimstore-go/dimstore/internal/dimindex"
	"github.com/dimstore-go/dimstore/internal/oidset"
	"github.com/dimstore-go/dimstore/model"
)

type record[V any] struct {
	value V
	key   storedKey
}

// Store is an in-memory container of values of type V, each addressed by a
// Key matching the arity and per-position element types of spec.
//
// A Store is not safe for concurrent use; callers owning a *Store[V] are
// its single logical writer. External synchronization, if any, is the
// caller's responsibility.
type Store[V any] struct {
	spec    *Spec
	values  map[model.Oid]*record[V]
	indices []*dimindex.Index
	nextOid model.Oid
	logger  *Logger
}

// New returns an empty Store for spec: no values, no index entries, and
// every Auto dimension's generator at its initial value.
func New[V any](spec *Spec, opts ...Option) *Store[V] {
	o := applyOptions(opts)
	indices := make([]*dimindex.Index, spec.Arity())
	for i, d := range spec.dims {
		if d.Mode == Auto {
			indices[i] = dimindex.NewAuto(dimindex.NewGenerator(d.Initial, d.Step))
		} else {
			indices[i] = dimindex.New()
		}
	}
	return &Store[V]{
		spec:    spec,
		values:  make(map[model.Oid]*record[V]),
		indices: indices,
		nextOid: 1,
		logger:  o.logger,
	}
}

// Size returns the number of values currently stored.
func (s *Store[V]) Size() int {
	return len(s.values)
}

// Insert allocates a fresh oid, installs key's element sets into every
// Multi dimension's index and a freshly generated element into every Auto
// dimension's index, and stores v under the resulting oid. It returns the
// insert-result projection: the tuple of elements assigned to the Auto
// dimensions, in position order.
func (s *Store[V]) Insert(key Key, v V) InsertResult {
	requireSameSpec(s.spec, key.spec)

	oid := s.nextOid
	s.nextOid++

	sk := storedKey{fragments: make([][]element.Element, s.spec.Arity())}
	for pos, d := range s.spec.dims {
		switch d.Mode {
		case Multi:
			frag := append([]element.Element(nil), key.fragments[pos]...)
			sk.fragments[pos] = frag
			s.indices[pos].InsertMany(frag, oid)
		case Auto:
			e := s.indices[pos].AssignNext()
			sk.fragments[pos] = []element.Element{e}
			s.indices[pos].Insert(e, oid)
		}
	}

	s.values[oid] = &record[V]{value: v, key: sk}
	s.logger.logInsert(uint64(oid), s.spec.Arity())
	return projectAuto(s.spec, sk)
}

// InsertDiscard is Insert without the insert-result projection, for
// callers that have no Auto dimensions to observe.
func (s *Store[V]) InsertDiscard(key Key, v V) {
	s.Insert(key, v)
}

// Pair is one (key, value) to insert via FromList.
type Pair[V any] struct {
	Key   Key
	Value V
}

// FromList builds a Store by left-folding InsertDiscard over pairs in
// order. The resulting oids are 1, 2, ..., len(pairs).
func FromList[V any](spec *Spec, pairs []Pair[V], opts ...Option) *Store[V] {
	store := New[V](spec, opts...)
	for _, p := range pairs {
		store.InsertDiscard(p.Key, p.Value)
	}
	return store
}

type outcomeKind uint8

const (
	outcomeDelete outcomeKind = iota
	outcomeKeep
	outcomeMove
)

// Outcome is the result an UpdateFunc returns for a single matched value:
// deletion, an in-place value replacement, or a value-and-key replacement.
type Outcome[V any] struct {
	kind  outcomeKind
	value V
	key   *Key
}

// DeleteValue reports that the matched value should be removed from the
// store, along with every index entry for its oid.
func DeleteValue[V any]() Outcome[V] {
	return Outcome[V]{kind: outcomeDelete}
}

// KeepValue reports that the matched value should be replaced by v,
// leaving its key, and therefore every index bucket, untouched.
func KeepValue[V any](v V) Outcome[V] {
	return Outcome[V]{kind: outcomeKeep, value: v}
}

// MoveValue reports that the matched value should be replaced by v and its
// Multi-dimension fragments replaced by k's; the oid's Auto-assigned
// elements never change.
func MoveValue[V any](v V, k Key) Outcome[V] {
	return Outcome[V]{kind: outcomeMove, value: v, key: &k}
}

// UpdateFunc is called once per oid matched by an Update's selection.
type UpdateFunc[V any] func(v V) Outcome[V]

// Update resolves sel to an id-set and applies f to the current value at
// every matched oid, in unspecified order, committing each Outcome before
// moving to the next oid.
func (s *Store[V]) Update(f UpdateFunc[V], sel *Selection) {
	requireSameSpec(s.spec, sel.spec)

	ids := s.resolve(sel)
	ids.ForEach(func(oid model.Oid) bool {
		rec, ok := s.values[oid]
		if !ok {
			return true
		}

		outcome := f(rec.value)
		switch outcome.kind {
		case outcomeDelete:
			s.deleteOid(oid, rec.key)
			s.logger.logUpdateOutcome(uint64(oid), "delete")
		case outcomeKeep:
			rec.value = outcome.value
			s.logger.logUpdateOutcome(uint64(oid), "keep")
		case outcomeMove:
			requireSameSpec(s.spec, outcome.key.spec)
			newKey := s.replaceMultiFragments(rec.key, *outcome.key)
			s.reindexMulti(oid, rec.key, newKey)
			rec.value = outcome.value
			rec.key = newKey
			s.logger.logUpdateOutcome(uint64(oid), "move")
		default:
			invariantViolation("update outcome carries unknown kind %d", outcome.kind)
		}
		return true
	})
}

// replaceMultiFragments builds the new stored key for a key-replacing
// update: userKey's element sets for every Multi dimension, old's elements
// unchanged for every Auto dimension.
func (s *Store[V]) replaceMultiFragments(old storedKey, userKey Key) storedKey {
	next := old.clone()
	for pos, d := range s.spec.dims {
		if d.Mode == Multi {
			next.fragments[pos] = append([]element.Element(nil), userKey.fragments[pos]...)
		}
	}
	return next
}

// reindexMulti moves oid from old's Multi-dimension index buckets to new's.
// Auto-dimension buckets are left untouched since their element never
// changes for a given oid.
func (s *Store[V]) reindexMulti(oid model.Oid, old, new storedKey) {
	for pos, d := range s.spec.dims {
		if d.Mode != Multi {
			continue
		}
		s.indices[pos].Delete(old.fragments[pos], oid)
		s.indices[pos].InsertMany(new.fragments[pos], oid)
	}
}

// deleteOid removes oid from values and from every index slot under every
// element of key at that position.
func (s *Store[V]) deleteOid(oid model.Oid, key storedKey) {
	for pos := range s.spec.dims {
		s.indices[pos].Delete(key.fragments[pos], oid)
	}
	delete(s.values, oid)
}

// Tuple is one matched value together with the Auto-assigned elements of
// its oid, as returned by Lookup.
type Tuple[V any] struct {
	Value V
	Auto  InsertResult
}

// Lookup resolves sel to an id-set and returns one Tuple per still-present
// matched oid, in descending oid order.
func (s *Store[V]) Lookup(sel *Selection) []Tuple[V] {
	requireSameSpec(s.spec, sel.spec)

	ids := s.resolve(sel)
	out := make([]Tuple[V], 0, ids.Len())
	for _, oid := range ids.ToSliceDescending() {
		rec, ok := s.values[oid]
		if !ok {
			continue
		}
		out = append(out, Tuple[V]{Value: rec.value, Auto: projectAuto(s.spec, rec.key)})
	}
	return out
}

// LookupValues is Lookup with the Auto-assigned projection dropped.
func (s *Store[V]) LookupValues(sel *Selection) []V {
	tuples := s.Lookup(sel)
	out := make([]V, len(tuples))
	for i, t := range tuples {
		out[i] = t.Value
	}
	return out
}

// resolve is the query evaluator: a pure fold of sel over s's indices into
// an id-set. It never mutates s.
func (s *Store[V]) resolve(sel *Selection) *oidset.Set {
	switch sel.op {
	case opEQ:
		return s.indices[sel.pos].Lookup(sel.value)
	case opGT:
		_, greater := s.indices[sel.pos].Split(sel.value)
		return greater
	case opLT:
		less, _ := s.indices[sel.pos].Split(sel.value)
		return less
	case opGTE:
		_, equal, greater := s.indices[sel.pos].SplitLookup(sel.value)
		equal.Or(greater)
		return equal
	case opLTE:
		less, equal, _ := s.indices[sel.pos].SplitLookup(sel.value)
		less.Or(equal)
		return less
	case opAND:
		left := s.resolve(sel.left)
		left.And(s.resolve(sel.right))
		return left
	case opOR:
		left := s.resolve(sel.left)
		left.Or(s.resolve(sel.right))
		return left
	case opALL:
		out := oidset.New()
		for oid := range s.values {
			out.Add(oid)
		}
		return out
	case opNONE:
		return oidset.New()
	default:
		invariantViolation("selection carries unknown op %d", sel.op)
		return nil
	}
}

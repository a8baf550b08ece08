// Package dimindex implements the per-dimension ordered index: an ordered
// map from an element to the set of object identifiers stored under it,
// plus range-split primitives.
//
// The layout is a sorted slice of buckets, a columnar binary-search layout
// generalized to the ordered element.Element used at every dimension
// position. Buckets are kept sorted by element.Compare and empty buckets
// are dropped on delete, keeping split/splitLookup cheap.
package dimindex

import (
	"sort"

	"github.com/dimstore-go/dimstore/element"
	"github.com/dimstore-go/dimstore/internal/oidset"
	"github.com/dimstore-go/dimstore/model"
)

type bucket struct {
	elem element.Element
	ids  *oidset.Set
}

// Index is an ordered map element -> set of oids for a single dimension.
//
// An Index for an auto dimension additionally owns a *Generator; multi
// dimensions leave gen nil.
type Index struct {
	buckets []bucket
	gen     *Generator
}

// New returns an empty index for a multi dimension.
func New() *Index {
	return &Index{}
}

// NewAuto returns an empty index for an auto dimension, backed by gen.
func NewAuto(gen *Generator) *Index {
	return &Index{gen: gen}
}

// IsAuto reports whether this index owns an element generator.
func (ix *Index) IsAuto() bool {
	return ix.gen != nil
}

// AssignNext returns the generator's next element without inserting it
// into the index. It panics if this index is not an auto index.
func (ix *Index) AssignNext() element.Element {
	if ix.gen == nil {
		panic("dimindex: AssignNext called on a non-auto index")
	}
	return ix.gen.AssignNext()
}

// find returns the position of e in buckets and whether it was found.
// When not found, the position is where e would be inserted to keep
// buckets sorted.
func (ix *Index) find(e element.Element) (int, bool) {
	n := len(ix.buckets)
	i := sort.Search(n, func(i int) bool {
		return element.Compare(ix.buckets[i].elem, e) >= 0
	})
	if i < n && element.Equal(ix.buckets[i].elem, e) {
		return i, true
	}
	return i, false
}

// Insert adds oid to the bucket at e, creating the bucket if absent.
func (ix *Index) Insert(e element.Element, oid model.Oid) {
	i, found := ix.find(e)
	if found {
		ix.buckets[i].ids.Add(oid)
		return
	}
	ix.buckets = append(ix.buckets, bucket{})
	copy(ix.buckets[i+1:], ix.buckets[i:])
	ix.buckets[i] = bucket{elem: e, ids: oidset.Of(oid)}
}

// InsertMany adds oid under every element of es. An empty es leaves the
// index unchanged; an oid with no elements at this dimension is still
// tracked by the store's own value table, not by any bucket here.
func (ix *Index) InsertMany(es []element.Element, oid model.Oid) {
	for _, e := range es {
		ix.Insert(e, oid)
	}
}

// Delete removes oid from the bucket at each element of es, dropping any
// bucket that becomes empty.
func (ix *Index) Delete(es []element.Element, oid model.Oid) {
	for _, e := range es {
		i, found := ix.find(e)
		if !found {
			continue
		}
		ix.buckets[i].ids.Remove(oid)
		if ix.buckets[i].ids.IsEmpty() {
			ix.buckets = append(ix.buckets[:i], ix.buckets[i+1:]...)
		}
	}
}

// Lookup returns the bucket at e, or an empty set if e is absent.
func (ix *Index) Lookup(e element.Element) *oidset.Set {
	i, found := ix.find(e)
	if !found {
		return oidset.New()
	}
	return ix.buckets[i].ids.Clone()
}

// Split returns the union of buckets with a key strictly less than e, and
// the union of buckets with a key strictly greater than e. A bucket at e
// itself, if present, is in neither.
func (ix *Index) Split(e element.Element) (less, greater *oidset.Set) {
	i, found := ix.find(e)
	less = ix.union(0, i)
	lo := i
	if found {
		lo = i + 1
	}
	greater = ix.union(lo, len(ix.buckets))
	return less, greater
}

// SplitLookup is Split plus the bucket at e itself.
func (ix *Index) SplitLookup(e element.Element) (less, equal, greater *oidset.Set) {
	i, found := ix.find(e)
	less = ix.union(0, i)
	if found {
		equal = ix.buckets[i].ids.Clone()
		greater = ix.union(i+1, len(ix.buckets))
	} else {
		equal = oidset.New()
		greater = ix.union(i, len(ix.buckets))
	}
	return less, equal, greater
}

// union returns the union of buckets[lo:hi]'s id-sets.
func (ix *Index) union(lo, hi int) *oidset.Set {
	out := oidset.New()
	for _, b := range ix.buckets[lo:hi] {
		out.Or(b.ids)
	}
	return out
}

// Package oidset provides a compact, sorted set of object identifiers.
//
// Evaluator intermediate results are sets of small non-negative integers,
// and a Roaring Bitmap is a good default representation because it
// preserves set equality and supports fast union/intersection.
package oidset

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/dimstore-go/dimstore/model"
)

// Set is a mutable, ordered set of Oids backed by a 64-bit Roaring Bitmap.
type Set struct {
	rb *roaring64.Bitmap
}

// New returns a new, empty Set.
func New() *Set {
	return &Set{rb: roaring64.New()}
}

// Of returns a new Set containing the given oids.
func Of(oids ...model.Oid) *Set {
	s := New()
	for _, o := range oids {
		s.Add(o)
	}
	return s
}

// Add adds oid to the set.
func (s *Set) Add(oid model.Oid) {
	s.rb.Add(uint64(oid))
}

// Remove removes oid from the set. It is a no-op if oid is absent.
func (s *Set) Remove(oid model.Oid) {
	s.rb.Remove(uint64(oid))
}

// Contains reports whether oid is a member of the set.
func (s *Set) Contains(oid model.Oid) bool {
	return s.rb.Contains(uint64(oid))
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Or mutates s into the union of s and other.
func (s *Set) Or(other *Set) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// And mutates s into the intersection of s and other.
func (s *Set) And(other *Set) {
	if other == nil {
		s.rb.Clear()
		return
	}
	s.rb.And(other.rb)
}

// ForEach calls fn for every member in ascending order, stopping early if
// fn returns false.
func (s *Set) ForEach(fn func(oid model.Oid) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(model.Oid(it.Next())) {
			return
		}
	}
}

// ToSlice returns the members in ascending order.
func (s *Set) ToSlice() []model.Oid {
	out := make([]model.Oid, 0, s.Len())
	s.ForEach(func(oid model.Oid) bool {
		out = append(out, oid)
		return true
	})
	return out
}

// ToSliceDescending returns the members in descending order.
//
// This is the order dimstore's Lookup/LookupValues use for their result
// list, matching the reference implementation's fold-left-into-prepended
// -list behavior. Callers should not rely on it being ascending order.
func (s *Set) ToSliceDescending() []model.Oid {
	asc := s.ToSlice()
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc
}

package oidset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dimstore-go/dimstore/model"
)

func TestSetBasics(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(1)
	s.Add(3)
	s.Add(2)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(5))

	assert.Equal(t, []model.Oid{1, 2, 3}, s.ToSlice())
	assert.Equal(t, []model.Oid{3, 2, 1}, s.ToSliceDescending())

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
}

func TestSetOrAnd(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(2, 3, 4)

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, []model.Oid{1, 2, 3, 4}, union.ToSlice())

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, []model.Oid{2, 3}, inter.ToSlice())

	// a and b are untouched by operations on their clones.
	assert.Equal(t, []model.Oid{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []model.Oid{2, 3, 4}, b.ToSlice())
}

func TestSetForEachEarlyStop(t *testing.T) {
	s := Of(1, 2, 3, 4)
	var seen []model.Oid
	s.ForEach(func(oid model.Oid) bool {
		seen = append(seen, oid)
		return oid < 2
	})
	assert.Equal(t, []model.Oid{1, 2}, seen)
}

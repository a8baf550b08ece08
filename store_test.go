package dimstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimstore-go/dimstore"
	"github.com/dimstore-go/dimstore/element"
)

type Article struct {
	Title string
}

// Scenario 1: a single insert into an empty store yields size 1 and the
// insert-result projection (1,).
func TestScenario1_InsertIntoEmptyStore(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)

	key := spec.NewKey().
		Set("name", element.Text("About Haskell")).
		Set("body", element.Text("Haskell is great")).
		Set("tag", element.Text("Haskell")).
		Build()
	result := store.Insert(key, Article{Title: "About Haskell"})

	assert.Equal(t, 1, store.Size())
	require.Equal(t, 1, result.Len())
	assert.Equal(t, int64(1), result.At(0).Int())
}

// Scenario 2: OR across two distinct dimensions matches the union of oids
// each side matches.
func TestScenario2_OrAcrossDimensions(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)

	haskell := Article{Title: "About Haskell"}
	store.Insert(spec.NewKey().
		Set("name", element.Text("About Haskell")).
		Set("tag", element.Text("Haskell")).
		Build(), haskell)

	intro := Article{Title: "Intro"}
	store.Insert(spec.NewKey().
		Set("name", element.Text("Intro")).
		Set("tag", element.Text("Go")).
		Build(), intro)

	sel := dimstore.Or(
		dimstore.EQ(spec, "name", element.Text("About Haskell")),
		dimstore.EQ(spec, "tag", element.Text("Go")),
	)
	values := store.LookupValues(sel)
	assert.ElementsMatch(t, []Article{haskell, intro}, values)
}

// Scenario 3: an update matching nothing leaves the store unchanged.
func TestScenario3_UpdateMatchingNothingIsNoop(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Set("tag", element.Text("Go")).Build(), Article{Title: "Article1"})

	store.Update(func(a Article) dimstore.Outcome[Article] {
		t.Fatal("update function must not be called when the selection matches nothing")
		return dimstore.DeleteValue[Article]()
	}, dimstore.EQ(spec, "tag", element.Text("Python")))

	assert.Equal(t, 1, store.Size())
}

// Scenario 4: an in-place value update leaves every index bucket alone.
func TestScenario4_KeepValueUpdateLeavesIndicesAlone(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	names := []string{"X", "Y", "Z"}
	for _, n := range names {
		store.Insert(spec.NewKey().Set("name", element.Text(n)).Build(), Article{Title: n})
	}

	sel := dimstore.EQ(spec, "id", element.Int(2))
	store.Update(func(a Article) dimstore.Outcome[Article] {
		return dimstore.KeepValue(Article{Title: "Y-renamed"})
	}, sel)

	updated := store.LookupValues(sel)
	require.Len(t, updated, 1)
	assert.Equal(t, "Y-renamed", updated[0].Title)

	// The name index still finds oid 2 under its original "Y" bucket.
	byOldName := store.LookupValues(dimstore.EQ(spec, "name", element.Text("Y")))
	require.Len(t, byOldName, 1)
	assert.Equal(t, "Y-renamed", byOldName[0].Title)
}

// Scenario 5: a key-replacing update moves the oid's bucket membership at
// the changed dimension but never touches its Auto-assigned id.
func TestScenario5_MoveValueUpdateReindexes(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Set("name", element.Text("X")).Build(), Article{Title: "first"})
	store.Insert(spec.NewKey().Set("name", element.Text("X2")).Build(), Article{Title: "second"})

	sel := dimstore.EQ(spec, "id", element.Int(2))
	store.Update(func(a Article) dimstore.Outcome[Article] {
		newKey := spec.NewKey().Set("name", element.Text("Y")).Build()
		return dimstore.MoveValue(Article{Title: "second-renamed"}, newKey)
	}, sel)

	assert.Empty(t, store.LookupValues(dimstore.EQ(spec, "name", element.Text("X2"))))
	byNewName := store.LookupValues(dimstore.EQ(spec, "name", element.Text("Y")))
	require.Len(t, byNewName, 1)
	assert.Equal(t, "second-renamed", byNewName[0].Title)

	tuples := store.Lookup(dimstore.EQ(spec, "name", element.Text("Y")))
	require.Len(t, tuples, 1)
	assert.Equal(t, int64(2), tuples[0].Auto.At(0).Int())
}

// Scenario 6: AND across a GTE/LT range on the auto id dimension selects
// exactly the expected contiguous sub-range.
func TestScenario6_RangeAndOnAutoDimension(t *testing.T) {
	spec := articleSpec()
	pairs := make([]dimstore.Pair[Article], 0, 6)
	for i := 1; i <= 6; i++ {
		pairs = append(pairs, dimstore.Pair[Article]{
			Key:   spec.NewKey().Set("name", element.Text("n")).Build(),
			Value: Article{Title: "a"},
		})
	}
	store := dimstore.FromList(spec, pairs)

	sel := dimstore.And(
		dimstore.GTE(spec, "id", element.Int(2)),
		dimstore.LT(spec, "id", element.Int(5)),
	)
	tuples := store.Lookup(sel)
	require.Len(t, tuples, 3)

	var ids []int64
	for _, tup := range tuples {
		ids = append(ids, tup.Auto.At(0).Int())
	}
	assert.ElementsMatch(t, []int64{2, 3, 4}, ids)
}

func TestLookupNoneAlwaysEmpty(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Build(), Article{Title: "x"})
	assert.Empty(t, store.Lookup(dimstore.None(spec)))
}

func TestLookupAllOnEmptyStore(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	assert.Empty(t, store.Lookup(dimstore.All(spec)))
}

func TestInsertIncreasesSizeByOne(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	for i := 0; i < 5; i++ {
		before := store.Size()
		store.Insert(spec.NewKey().Build(), Article{})
		assert.Equal(t, before+1, store.Size())
	}
}

func TestDeleteBySelectionRemovesExactlyMatched(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Set("tag", element.Text("go")).Build(), Article{Title: "a"})
	store.Insert(spec.NewKey().Set("tag", element.Text("rust")).Build(), Article{Title: "b"})
	store.Insert(spec.NewKey().Set("tag", element.Text("go")).Build(), Article{Title: "c"})

	sel := dimstore.EQ(spec, "tag", element.Text("go"))
	matched := len(store.LookupValues(sel))
	before := store.Size()

	store.Update(func(a Article) dimstore.Outcome[Article] {
		return dimstore.DeleteValue[Article]()
	}, sel)

	assert.Empty(t, store.LookupValues(sel))
	assert.Equal(t, before-matched, store.Size())
}

// Identity update: replacing every value with itself preserves values and
// index bucket contents.
func TestIdentityUpdatePreservesState(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Set("tag", element.Text("go")).Build(), Article{Title: "a"})
	store.Insert(spec.NewKey().Set("tag", element.Text("rust")).Build(), Article{Title: "b"})

	before := store.LookupValues(dimstore.All(spec))
	store.Update(func(a Article) dimstore.Outcome[Article] {
		return dimstore.KeepValue(a)
	}, dimstore.All(spec))
	after := store.LookupValues(dimstore.All(spec))

	assert.Equal(t, before, after)
	assert.Equal(t, 2, store.Size())
	assert.Equal(t, []Article{{Title: "a"}}, store.LookupValues(dimstore.EQ(spec, "tag", element.Text("go"))))
	assert.Equal(t, []Article{{Title: "b"}}, store.LookupValues(dimstore.EQ(spec, "tag", element.Text("rust"))))
}

func TestDeleteDropsEmptyIndexBucket(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	store.Insert(spec.NewKey().Set("tag", element.Text("go")).Build(), Article{Title: "solo"})

	store.Update(func(a Article) dimstore.Outcome[Article] {
		return dimstore.DeleteValue[Article]()
	}, dimstore.EQ(spec, "tag", element.Text("go")))

	// Once the bucket's only oid is deleted, a GT split over tag matches
	// nothing. The bucket's removal itself is only observable inside
	// dimindex and is checked by its TestDeleteDropsEmptyBucket.
	tuples := store.Lookup(dimstore.GT(spec, "tag", element.Text("aaa")))
	assert.Empty(t, tuples)
}

func TestEmptyMultiSetIsAcceptedAndInsertResultStillWorks(t *testing.T) {
	spec := articleSpec()
	store := dimstore.New[Article](spec)
	result := store.Insert(spec.NewKey().Build(), Article{Title: "untagged"})
	assert.Equal(t, 1, store.Size())
	assert.Equal(t, int64(1), result.At(0).Int())

	// Nothing indexes it under any tag, but ALL still finds it.
	assert.Len(t, store.LookupValues(dimstore.All(spec)), 1)
}

func TestMismatchedStoreAndSelectionSpecPanics(t *testing.T) {
	a := articleSpec()
	b := articleSpec()
	store := dimstore.New[Article](a)
	sel := dimstore.EQ(b, "tag", element.Text("go"))
	assert.Panics(t, func() { store.Lookup(sel) })
}

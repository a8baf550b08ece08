// Package dimstore provides an in-memory, multi-key, multi-value store
// keyed on a fixed-arity tuple of dimensions.
//
// Each stored value is addressed by a Key: one fragment per dimension,
// where a fragment is either a set of elements (a "multi" dimension,
// tested with EQ/GT/LT/...) or a single element assigned by the store
// itself on insert (an "auto" dimension, useful for a monotonically
// increasing version or sequence number). Lookups are expressed with a
// Selection, a small boolean algebra over per-dimension comparisons that
// is evaluated directly against each dimension's ordered index rather
// than by scanning stored values.
//
// # Quick Start
//
//	spec := dimstore.NewSpec(
//	    dimstore.DimensionSpec{Name: "tag", Mode: dimstore.Multi, Kind: element.KindText},
//	    dimstore.DimensionSpec{Name: "version", Mode: dimstore.Auto, Kind: element.KindInt, Initial: 1, Step: 1},
//	)
//	store := dimstore.New[Article](spec)
//
//	key := spec.NewKey().Set("tag", element.Text("go"), element.Text("db")).Build()
//	result := store.Insert(key, myArticle)
//
//	sel := dimstore.EQ(spec, "tag", element.Text("go"))
//	for _, t := range store.Lookup(sel) {
//	    fmt.Println(t.Value)
//	}
//
// # Selections
//
// EQ, GT, LT, GTE, LTE compare a dimension against a single element;
// And, Or combine selections; All and None are the identity
// and absorbing elements of the algebra. And/Or apply the algebra's
// absorption identities at construction time rather than at evaluation
// time, so a Selection built once and reused for many lookups pays the
// simplification cost only once.
//
// # Shapes
//
// A Key, Selection, or DimensionRef is only valid against the Spec it
// was built from. Mixing values built from different Specs panics with
// a ShapeMismatchError rather than silently misinterpreting positions,
// since Go's generics cannot express "these two variadic tuples share a
// shape" at compile time.
package dimstore

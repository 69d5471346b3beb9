// Package builder is the named-shape and scene-assembly sugar layer on top
// of prim and set (spec.md §4.1, SPEC_FULL.md §4.7). It adds nothing to the
// algebra itself: every function here either delegates straight to an
// existing prim constructor or, for PlatonicSolid, folds a table of
// half-space primitives together with set.Intersection.
//
// Grounded on the teacher's builder/impl_platonic.go and builder/api.go:
// where the teacher's Constructor closures mutate a shared *core.Graph,
// these constructors return plain immutable values, since prim and set are
// already persistent DAGs with no graph-wide state to thread through.
package builder

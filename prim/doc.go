// Package prim implements svlis's primitive algebra: a reference-counted,
// shared, directed acyclic expression graph over planes and reals, closed
// under {+, -, *, /, ^, unary -} and the monadic functions
// {abs, sin, cos, exp, s_sqrt, sign}.
//
// A Primitive is an immutable handle to a DAG node. Point evaluation
// (Value), interval range evaluation (Range), lazy cached gradient
// derivation (Grad), structural equality up to sign/abs (Same), rigid-
// motion transforms and named-shape parameter recovery all recurse through
// the same node shape.
package prim

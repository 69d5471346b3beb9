// Package model implements the spatial subdivision layer (spec §3.4/§4.3):
// a binary tree of axis-aligned boxes, each leaf carrying the set-list (the
// AND of sets) that applies inside it. divide descends from a single leaf,
// asking an injectable decision policy which axis and cut to split on and
// pruning each child's set-list against its sub-box using NOTHING/
// EVERYTHING interval identities; redivide reuses an existing tree's shape
// to incorporate a changed set-list without rebuilding from scratch.
//
// Grounded on the teacher's gridgraph package: a plain options struct with
// a zero-arg Default*() constructor (gridgraph.GridOptions /
// DefaultGridOptions()) becomes model.Limits / DefaultLimits(), and
// gridgraph's grid-as-tree construction generalizes from a fixed 2-D grid
// to a binary box tree built on demand.
package model

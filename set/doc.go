// Package set implements the Boolean set algebra layered on top of prim's
// primitive expression graph (spec §3.3/§4.2): NOTHING, EVERYTHING, single-
// primitive sets, and binary union/intersection, with lazily cached
// complements, an attribute chain, and membership classification.
package set

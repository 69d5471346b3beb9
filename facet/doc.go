// Package facet implements facet/refacet (spec §6/§4.3): converting a
// subdivided model into a set of polygons approximating its boundary
// surface. Grounded on gridgraph/expand.go's cell-by-cell walk, generalized
// from 2-D flood fill over grid cells to 3-D leaf-by-leaf polygon emission:
// each leaf is inspected independently (no shared frontier state), mirroring
// expand.go's per-cell cost evaluation.
package facet

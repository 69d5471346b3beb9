// Package raycast implements fire_ray (spec §6): intersecting a line with a
// model's subdivision and bisecting the hit leaf's combined potential for a
// surface crossing. Grounded on bfs's frontier-walk shape (bfs/bfs.go): a
// FIFO-ish frontier of (node, param-range) pairs is expanded node by node,
// generalized from graph-neighbor expansion to box-child descent, with the
// frontier kept ordered by entry parameter so the first hit popped is the
// first hit along the ray.
package raycast

// Package serial implements the tagged-stream format spec §4.4/§6
// describes: a fixed 2-line version header followed by a sequence of
// `<TAG> { <address-or-0> <payload...> }` entities. Shared sub-expressions
// (primitive and set DAG nodes) are written once by address and referenced
// thereafter by address alone; address 0 is reserved for "no entity"
// (prim's zero Primitive, set's zero Set) and is never assigned to a real
// node, since both packages' ID() counters start at 1.
//
// The address tables are instance-scoped: map[uint64]bool on *Writer and
// typed maps on *Reader rather than the process-wide table spec §5 flags as a
// concurrency hazard (REDESIGN FLAGS adopts the instance-scoped version),
// mirroring matrix/conversions.go's own per-call converter state rather
// than a shared global.
package serial

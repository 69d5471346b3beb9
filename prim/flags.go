package prim

// FlagMask is the set of low bits callers may write via SetFlags/ResetFlags
// (spec §6: "only the low FLAG_MASK bits are writable; upper bits are
// reserved for internal scratch"). The kernel itself uses bit 31
// (flagWritten) to track serialisation's "already written" state.
const FlagMask uint32 = 0x7fffffff

const flagWritten uint32 = 1 << 31

// SetFlags sets the given mask's bits (restricted to FlagMask) on the
// node's scratch flag word.
func (p Primitive) SetFlags(mask uint32) {
	p.node().flags.Or(mask & FlagMask)
}

// ResetFlags clears the given mask's bits (restricted to FlagMask).
func (p Primitive) ResetFlags(mask uint32) {
	p.node().flags.And(^(mask & FlagMask))
}

// Flags returns the full scratch flag word, including reserved bits.
func (p Primitive) Flags() uint32 {
	return p.node().flags.Load()
}

// written reports the internal write-visited bit used by Unwrite/the
// serial writer.
func (p Primitive) written() bool {
	return p.node().flags.Load()&flagWritten != 0
}

func (p Primitive) markWritten() {
	p.node().flags.Or(flagWritten)
}

// Unwrite clears the write-visited bit across the whole DAG reachable from
// p, exactly mirroring the teacher's recursive DFS shape (Walk) applied
// before every top-level serialisation write (spec §4.4: "the write path
// first performs unwrite() to clear the already-written flag across the
// tree").
func (p Primitive) Unwrite() {
	Walk(p, func(q Primitive) bool {
		q.node().flags.And(^flagWritten)
		return true
	})
}

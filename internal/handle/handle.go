// Package handle provides the reference-counted shared handle that backs
// every node in svlis's primitive, set and model DAGs (spec §3.2: "Each
// node is ref-counted; the storage is freed when the last external handle
// drops.").
//
// Go's garbage collector already reclaims unreachable nodes, so Ref[T]
// exists to make node identity and explicit teardown hooks (onDrop)
// observable and testable rather than to manage memory by hand. set installs
// no onDrop hook, so the set<->complement back-pointer pair is not broken on
// Release; the garbage collector reclaims both nodes once neither is
// reachable.
package handle

import (
	"sync/atomic"

	"github.com/svlis-go/svlis/report"
)

// Ref is a reference-counted handle around a payload of type T. Copying a
// Ref value does not copy the payload or bump the count; use Retain/Release
// to manage sharing explicitly, mirroring the teacher's pattern of counters
// guarded by atomics (core/methods_clone.go's nextEdgeID).
type Ref[T any] struct {
	payload  T
	refs     atomic.Int32
	onDrop   func(T)
	released atomic.Bool
}

// New wraps payload in a Ref with an initial count of 1. onDrop, if
// non-nil, runs exactly once when the count reaches zero.
func New[T any](payload T, onDrop func(T)) *Ref[T] {
	r := &Ref[T]{payload: payload, onDrop: onDrop}
	r.refs.Store(1)
	return r
}

// Value returns the wrapped payload.
func (r *Ref[T]) Value() T { return r.payload }

// Retain increments the reference count and returns r for chaining.
func (r *Ref[T]) Retain() *Ref[T] {
	r.refs.Add(1)
	return r
}

// Release decrements the reference count; at zero it runs onDrop exactly
// once. Calling Release more times than the handle was retained is a
// programmer error and is reported rather than allowed to go negative.
func (r *Ref[T]) Release() {
	n := r.refs.Add(-1)
	if n < 0 {
		r.refs.Add(1)
		report.CorruptReport("handle", "Release called more times than the handle was retained")
		return
	}
	if n == 0 && r.released.CompareAndSwap(false, true) && r.onDrop != nil {
		r.onDrop(r.payload)
	}
}

// Count returns the current reference count, for diagnostics and tests.
func (r *Ref[T]) Count() int32 { return r.refs.Load() }

// Unique reports whether this handle is the sole owner (count == 1); used
// by svlis's DAG to decide whether a node may be mutated in place (flag
// word scratch bits) without affecting other sharers. This is advisory: the
// flag word is an atomic word, so concurrent updates are safe regardless.
func (r *Ref[T]) Unique() bool { return r.refs.Load() == 1 }

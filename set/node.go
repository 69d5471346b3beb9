package set

import (
	"sync/atomic"

	"github.com/svlis-go/svlis/internal/handle"
	"github.com/svlis-go/svlis/prim"
)

var nextID atomic.Uint64

// node is the shared set-tree node. Set is the ref-counted handle wrapping
// one of these, mirroring prim's node/Primitive split (internal/handle
// generalizes across both DAGs).
type node struct {
	id   uint64
	kind Kind

	leaf prim.Primitive // KindPrim payload

	ch0, ch1 Set // KindUnion/KindIntersection children

	complement *node // cached back-pointer (spec §4.2), nil until first use

	attrs *Attribute // advisory annotation chain (spec §4.2)
}

// Set is a shared handle to a set-tree node.
type Set struct {
	h *handle.Ref[*node]
}

func (s Set) zero() bool  { return s.h == nil }

// Zero reports whether s is the zero Set, for callers outside the package
// (serial's writer) that cannot reach the unexported zero().
func (s Set) Zero() bool { return s.zero() }
func (s Set) node() *node { return s.h.Value() }
func wrap(n *node) Set    { return Set{h: handle.New(n, nil)} }

// Retain bumps the shared reference count and returns s.
func (s Set) Retain() Set {
	s.h.Retain()
	return s
}

// Release drops one reference.
func (s Set) Release() { s.h.Release() }

// ID returns s's node identity, used as unique() and as serial's address
// key.
func (s Set) ID() uint64 { return s.node().id }

// Kind returns the node's shape tag.
func (s Set) Kind() Kind { return s.node().kind }

// Primitive returns the wrapped primitive for a KindPrim node (the zero
// Primitive otherwise).
func (s Set) Primitive() prim.Primitive {
	if s.node().kind == KindPrim {
		return s.node().leaf
	}
	return prim.Primitive{}
}

// Child returns the i'th child (0 or 1) of a union/intersection node.
func (s Set) Child(i int) Set {
	n := s.node()
	if i == 0 {
		return n.ch0
	}
	return n.ch1
}

var (
	nothingNode    = &node{id: nextID.Add(1), kind: KindNothing}
	everythingNode = &node{id: nextID.Add(1), kind: KindEverything}
)

func init() {
	nothingNode.complement = everythingNode
	everythingNode.complement = nothingNode
}

// Nothing returns the empty set.
func Nothing() Set { return wrap(nothingNode) }

// Everything returns the universal set.
func Everything() Set { return wrap(everythingNode) }

// FromPrimitive wraps a primitive as the set {x : p(x) <= 0} (spec §3.3).
func FromPrimitive(p prim.Primitive) Set {
	return wrap(&node{id: nextID.Add(1), kind: KindPrim, leaf: p})
}

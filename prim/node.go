package prim

import (
	"sync"
	"sync/atomic"

	"github.com/svlis-go/svlis/internal/handle"
	"github.com/svlis-go/svlis/scalar"
)

// Real is re-exported for callers that want to avoid importing scalar
// directly for the common case.
type Real = scalar.Real

var nextID atomic.Uint64

// node is the shared, immutable (apart from the flag word and the lazy
// gradient cache) DAG node. Primitive is the ref-counted handle wrapping
// one of these; node itself is never exposed outside the package.
type node struct {
	id    uint64 // monotonic construction order; doubles as unique() identity
	kind  Kind   // advisory shape tag
	arity int8   // 0 = leaf, 1 = unary interior, 2 = binary interior
	op    Op     // meaningful when arity > 0

	real    Real        // KindReal leaf payload
	plane   scalar.Plane // KindPlane leaf payload
	block   scalar.Box   // KindBlock leaf payload
	userTag int          // KindUser leaf payload

	ch0, ch1 Primitive // children; ch1 is the zero value for arity <= 1

	degree int // polynomial-degree estimate, computed at construction

	flags atomic.Uint32

	gradMu   sync.Mutex
	gradDone bool
	gradX    Primitive
	gradY    Primitive
	gradZ    Primitive
}

// Primitive is a shared handle to a DAG node.
type Primitive struct {
	h *handle.Ref[*node]
}

// zero reports whether p is the zero Primitive (no node), used as the
// "absent" child slot for leaves and unary nodes.
func (p Primitive) zero() bool { return p.h == nil }

// Zero reports whether p is the zero Primitive, for callers outside the
// package (serial's writer, which must distinguish an absent child from a
// real leaf) that cannot reach the unexported zero().
func (p Primitive) Zero() bool { return p.zero() }

func (p Primitive) node() *node { return p.h.Value() }

func wrap(n *node) Primitive {
	return Primitive{h: handle.New(n, nil)}
}

// Retain bumps the shared reference count and returns p, mirroring the
// ref-counted shared handle spec §3.2 describes; Go's GC reclaims the
// underlying node regardless, so Retain/Release mainly exist to make
// sharing and node-identity testable (see internal/handle's doc comment).
func (p Primitive) Retain() Primitive {
	p.h.Retain()
	return p
}

// Release drops one reference.
func (p Primitive) Release() { p.h.Release() }

// Unique reports whether p is the DAG's sole handle to its node.
func (p Primitive) Unique() bool { return p.h.Unique() }

// ID returns p's construction-order identity, used as unique() (spec
// §3.2) and as the serial package's address-table key.
func (p Primitive) ID() uint64 { return p.node().id }

// Kind returns the advisory shape tag.
func (p Primitive) Kind() Kind { return p.node().kind }

// Degree returns the polynomial-degree estimate (spec §3.2).
func (p Primitive) Degree() int { return p.node().degree }

// Op returns the node's operator (OpNone for leaves).
func (p Primitive) Op() Op { return p.node().op }

// Arity returns 0 for a leaf, 1 for a unary interior node, 2 for binary.
func (p Primitive) Arity() int { return int(p.node().arity) }

// Child returns the i'th child (0 or 1); it is the zero Primitive if out
// of range for this node's arity.
func (p Primitive) Child(i int) Primitive {
	n := p.node()
	if i == 0 {
		return n.ch0
	}
	if i == 1 {
		return n.ch1
	}
	return Primitive{}
}

// RealValue returns the constant payload of a KindReal leaf (0 otherwise).
func (p Primitive) RealValue() Real {
	if p.node().kind == KindReal && p.node().arity == 0 {
		return p.node().real
	}
	return 0
}

// PlaneValue returns the payload of a KindPlane leaf (the zero Plane
// otherwise).
func (p Primitive) PlaneValue() scalar.Plane {
	if p.node().kind == KindPlane && p.node().arity == 0 {
		return p.node().plane
	}
	return scalar.Plane{}
}

// BlockValue returns the payload of a KindBlock leaf (the zero Box
// otherwise).
func (p Primitive) BlockValue() scalar.Box {
	if p.node().kind == KindBlock && p.node().arity == 0 {
		return p.node().block
	}
	return scalar.Box{}
}

// UserTag returns the tag of a KindUser leaf.
func (p Primitive) UserTag() int {
	return p.node().userTag
}

func newLeaf(kind Kind, degree int) *node {
	return &node{id: nextID.Add(1), kind: kind, arity: 0, degree: degree}
}

// NewReal builds a real leaf of degree 0.
func NewReal(r Real) Primitive {
	n := newLeaf(KindReal, 0)
	n.real = r
	return wrap(n)
}

// NewPlaneLeaf builds a plane leaf of degree 1.
func NewPlaneLeaf(pl scalar.Plane) Primitive {
	n := newLeaf(KindPlane, 1)
	n.plane = pl
	return wrap(n)
}

// NewBlock builds a block leaf from an axis-aligned box. Its potential is
// the max-of-axis-distances function (negative inside the box), treated
// as degree 1 like a plane for the purposes of degree propagation.
func NewBlock(b scalar.Box) Primitive {
	n := newLeaf(KindBlock, 1)
	n.block = b
	return wrap(n)
}

// NewUser builds a user-primitive leaf for the given tag. Semantics are
// delegated to the callbacks registered via RegisterUser; an unregistered
// tag reports ErrUnknownUserTag as a WARNING on first use rather than at
// construction (construction never fails).
func NewUser(tag int) Primitive {
	n := newLeaf(KindUser, 0)
	n.userTag = tag
	return wrap(n)
}

// Walk performs a pre-order traversal of the DAG rooted at p, calling
// visit on every node reached. Shared sub-expressions are visited once per
// path (this is a tree walk over the DAG, not a node-deduplicated walk);
// visit returning false skips that node's children, and the traversal goes
// on with the remaining nodes. Grounded on the
// teacher's dfs package's recursive descent shape, generalized from graph
// adjacency to primitive children.
func Walk(p Primitive, visit func(Primitive) bool) {
	if p.zero() {
		return
	}
	if !visit(p) {
		return
	}
	n := p.node()
	if n.arity >= 1 {
		Walk(n.ch0, visit)
	}
	if n.arity == 2 {
		Walk(n.ch1, visit)
	}
}

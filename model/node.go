package model

import (
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Model is one node of the binary box tree (spec §3.4). Unlike prim.Primitive
// and set.Set, a Model is not a shared, ref-counted DAG node — each
// subdivision builds its own private tree of plain pointers, since nothing
// in the spec calls for sharing model subtrees across models.
type Model struct {
	kind Kind
	box  scalar.Box

	// KindLeaf payload.
	setList []set.Set

	// Interior payload.
	axis   scalar.SplitAxis
	cut    scalar.Real
	low    *Model
	high   *Model
	parent *Model
}

// NewLeaf builds a leaf model over box with the given set-list.
func NewLeaf(box scalar.Box, setList []set.Set) *Model {
	return &Model{kind: KindLeaf, box: box, setList: append([]set.Set(nil), setList...)}
}

// Kind returns the node's shape tag.
func (m *Model) Kind() Kind { return m.kind }

// Box returns the node's box.
func (m *Model) Box() scalar.Box { return m.box }

// SetList returns a leaf's set-list (nil for an interior node).
func (m *Model) SetList() []set.Set { return m.setList }

// Axis returns an interior node's split axis.
func (m *Model) Axis() scalar.SplitAxis { return m.axis }

// Cut returns an interior node's split value.
func (m *Model) Cut() scalar.Real { return m.cut }

// Low returns an interior node's low-side child.
func (m *Model) Low() *Model { return m.low }

// High returns an interior node's high-side child.
func (m *Model) High() *Model { return m.high }

// Parent returns the node's parent, nil at the root (spec §3.4: "a
// back-link to the parent is maintained").
func (m *Model) Parent() *Model { return m.parent }

func axisKind(a scalar.SplitAxis) Kind {
	switch a {
	case scalar.AxisX:
		return KindXDiv
	case scalar.AxisY:
		return KindYDiv
	default:
		return KindZDiv
	}
}

func kindAxis(k Kind) scalar.SplitAxis {
	switch k {
	case KindXDiv:
		return scalar.AxisX
	case KindYDiv:
		return scalar.AxisY
	default:
		return scalar.AxisZ
	}
}

func coordOf(p scalar.Point, a scalar.SplitAxis) scalar.Real {
	switch a {
	case scalar.AxisX:
		return p.X
	case scalar.AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func newInterior(box scalar.Box, axis scalar.SplitAxis, cut scalar.Real, low, high *Model) *Model {
	m := &Model{kind: axisKind(axis), box: box, axis: axis, cut: cut, low: low, high: high}
	low.parent = m
	high.parent = m
	return m
}

// NewInterior builds an interior node directly, for consumers (serial's
// reader) that already know the full shape rather than deriving it via
// Divide.
func NewInterior(box scalar.Box, axis scalar.SplitAxis, cut scalar.Real, low, high *Model) *Model {
	return newInterior(box, axis, cut, low, high)
}

package model

import (
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Limits bounds how far divide descends (spec §4.3 step 4: "depth limit
// reached... box volume below a configured threshold; pruned primitive
// count below a configured threshold"). Grounded on gridgraph.GridOptions:
// a plain struct paired with a zero-arg Default*() constructor.
type Limits struct {
	DepthLimit   int
	MinVolume    scalar.Real
	MinPrimCount int
}

// DefaultLimits returns the baseline limits: a generous depth cap, a small
// volume floor, and a primitive-count floor of 1 (terminate once pruning
// has nothing left to refine on).
func DefaultLimits() Limits {
	return Limits{
		DepthLimit:   12,
		MinVolume:    1e-9,
		MinPrimCount: 1,
	}
}

// LimitsOption configures a Limits value (mirrors gridgraph's functional-
// option-free plain struct, generalized with the rest of the module's
// With*-option idiom for consistency across packages).
type LimitsOption func(*Limits)

// WithDepthLimit overrides the maximum subdivision depth.
func WithDepthLimit(n int) LimitsOption {
	return func(l *Limits) { l.DepthLimit = n }
}

// WithMinVolume overrides the minimum box volume worth subdividing further.
func WithMinVolume(v scalar.Real) LimitsOption {
	return func(l *Limits) { l.MinVolume = v }
}

// WithMinPrimCount overrides the minimum number of live (non-constant)
// primitives worth subdividing further.
func WithMinPrimCount(n int) LimitsOption {
	return func(l *Limits) { l.MinPrimCount = n }
}

// NewLimits builds a Limits starting from DefaultLimits and applying opts
// in order.
func NewLimits(opts ...LimitsOption) Limits {
	l := DefaultLimits()
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// DecisionFunc is the injectable split policy (spec §4.3 step 2: "Ask the
// decision_fn ... which axis to split and at what cut value").
type DecisionFunc func(box scalar.Box, setList []set.Set) (scalar.SplitAxis, scalar.Real)

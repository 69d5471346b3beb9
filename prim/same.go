package prim

import (
	"math"

	"github.com/svlis-go/svlis/scalar"
)

// Verdict is the result of a structural-equality comparison (spec §4.1).
type Verdict int

const (
	// VerdictNE indicates the two primitives are unrelated.
	VerdictNE Verdict = iota
	// VerdictEQ indicates the two primitives are set-theoretically
	// identical.
	VerdictEQ
	// VerdictComplement indicates one primitive is the negation of the
	// other.
	VerdictComplement
	// VerdictAbs indicates one primitive is the absolute value of the
	// other.
	VerdictAbs
)

// String renders the verdict using the spec's {≠, =, complement, abs}
// vocabulary.
func (v Verdict) String() string {
	switch v {
	case VerdictEQ:
		return "="
	case VerdictComplement:
		return "complement"
	case VerdictAbs:
		return "abs"
	default:
		return "≠"
	}
}

// tol is the numeric tolerance Same uses when comparing folded constants
// and recovered shape parameters.
const tol = 1e-9

// Same returns a conservative structural-equality verdict for a and b:
// false negatives are permitted for structurally different but
// mathematically equal expressions; false positives are forbidden (spec
// §4.1).
func Same(a, b Primitive) Verdict {
	if a.zero() || b.zero() {
		return VerdictNE
	}
	if a.node() == b.node() {
		return VerdictEQ
	}
	sa := dumpScales(a)
	sb := dumpScales(b)
	base := sameCore(sa.core, sb.core)
	if base == VerdictNE {
		return VerdictNE
	}
	neg := sa.neg != sb.neg
	if base == VerdictComplement {
		neg = !neg
	}
	abs := sa.abs != sb.abs || base == VerdictAbs
	switch {
	case abs:
		return VerdictAbs
	case neg:
		return VerdictComplement
	default:
		return VerdictEQ
	}
}

// scaled is the result of peeling sign/magnitude-only wrappers from a
// primitive: core is what remains, neg tracks an odd/even count of sign-
// flipping peels, abs tracks whether an |.| wrapper was peeled.
type scaled struct {
	core Primitive
	neg  bool
	abs  bool
}

// dumpScales normalises p by peeling positive real scalings, division by
// positive reals, odd integer powers, sign, and s_sqrt wrappers — all of
// which preserve the zero set and (up to the tracked sign flip) the sign
// of p (spec §4.1 step 2).
func dumpScales(p Primitive) scaled {
	neg, abs := false, false
	cur := p
	for {
		if isReal(cur) {
			break
		}
		n := cur.node()
		if n.arity == 1 {
			switch n.op {
			case OpNeg:
				if !abs {
					neg = !neg
				}
				cur = n.ch0
				continue
			case OpAbs:
				abs = true
				cur = n.ch0
				continue
			case OpSign, OpSSqrt:
				cur = n.ch0
				continue
			}
		}
		if n.arity == 2 {
			switch n.op {
			case OpMul:
				if isReal(n.ch0) {
					if n.ch0.RealValue() < 0 && !abs {
						neg = !neg
					}
					cur = n.ch1
					continue
				}
				if isReal(n.ch1) {
					if n.ch1.RealValue() < 0 && !abs {
						neg = !neg
					}
					cur = n.ch0
					continue
				}
			case OpDiv:
				if isReal(n.ch1) {
					if n.ch1.RealValue() < 0 && !abs {
						neg = !neg
					}
					cur = n.ch0
					continue
				}
			case OpPow:
				if isReal(n.ch1) {
					k := int(math.Round(n.ch1.RealValue()))
					if k%2 == 1 {
						cur = n.ch0
						continue
					}
				}
			}
		}
		break
	}
	return scaled{core: cur, neg: neg, abs: abs}
}

// sameCore compares two already-dump-scaled cores.
func sameCore(a, b Primitive) Verdict {
	if a.node() == b.node() {
		return VerdictEQ
	}
	if isReal(a) && isReal(b) {
		av, bv := a.RealValue(), b.RealValue()
		switch {
		case math.Abs(av-bv) < tol:
			return VerdictEQ
		case math.Abs(av+bv) < tol:
			return VerdictComplement
		default:
			return VerdictNE
		}
	}
	if isPlane(a) && isPlane(b) {
		return comparePlanes(a.PlaneValue(), b.PlaneValue())
	}

	if a.Kind() == b.Kind() && isNamedShape(a.Kind()) {
		if v, ok := compareShapeParams(a, b); ok {
			return v
		}
	}

	if a.Arity() != b.Arity() || a.Arity() == 0 {
		return VerdictNE
	}
	if a.Op() != b.Op() {
		return VerdictNE
	}
	if a.Arity() == 1 {
		return Same(a.Child(0), b.Child(0))
	}

	direct := combineChildren(Same(a.Child(0), b.Child(0)), Same(a.Child(1), b.Child(1)))
	if direct != VerdictNE {
		return direct
	}
	if a.Op() == OpAdd || a.Op() == OpMul {
		return combineChildren(Same(a.Child(0), b.Child(1)), Same(a.Child(1), b.Child(0)))
	}
	return VerdictNE
}

func isNamedShape(k Kind) bool {
	switch k {
	case KindSphere, KindCylinder, KindCone, KindTorus, KindCyclide:
		return true
	default:
		return false
	}
}

// combineChildren folds two child verdicts per spec §4.1 step 5: an "="
// with an odd number of complements yields complement; any abs mismatch
// yields abs.
func combineChildren(v1, v2 Verdict) Verdict {
	if v1 == VerdictNE || v2 == VerdictNE {
		return VerdictNE
	}
	neg := (v1 == VerdictComplement) != (v2 == VerdictComplement)
	abs := v1 == VerdictAbs || v2 == VerdictAbs
	switch {
	case abs:
		return VerdictAbs
	case neg:
		return VerdictComplement
	default:
		return VerdictEQ
	}
}

// comparePlanes compares two plane leaves by normal direction and offset,
// within tolerance, returning EQ, Complement, or NE.
func comparePlanes(a, b scalar.Plane) Verdict {
	if a.Normal.Equal(b.Normal, tol) && math.Abs(a.D-b.D) < tol {
		return VerdictEQ
	}
	if a.Normal.Equal(b.Normal.Neg(), tol) && math.Abs(a.D+b.D) < tol {
		return VerdictComplement
	}
	return VerdictNE
}

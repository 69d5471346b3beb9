package set

import (
	"math"

	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// Verdict is the result of a membership test (spec §4.2/§6).
type Verdict int

const (
	// VerdictIN means the point is strictly inside the set.
	VerdictIN Verdict = iota
	// VerdictON means the point lies exactly on a witness primitive's
	// surface.
	VerdictON
	// VerdictOUT means the point is strictly outside the set.
	VerdictOUT
	// VerdictAIR means membership could not be determined (e.g. a user
	// primitive's value is not a finite number at this point).
	VerdictAIR
)

// String renders the verdict's name.
func (v Verdict) String() string {
	switch v {
	case VerdictIN:
		return "IN"
	case VerdictON:
		return "ON"
	case VerdictOUT:
		return "OUT"
	default:
		return "AIR"
	}
}

// Member classifies point against s, returning the verdict and — for ON,
// and best-effort for AIR — a witness primitive whose surface the
// classification turned on (spec §4.2: "member(point, &witness)").
func Member(s Set, point scalar.Point) (Verdict, prim.Primitive) {
	if s.zero() {
		report.Warn(site, "Member: %v", ErrNilSet)
		return VerdictOUT, prim.Primitive{}
	}
	n := s.node()
	switch n.kind {
	case KindNothing:
		return VerdictOUT, prim.Primitive{}
	case KindEverything:
		return VerdictIN, prim.Primitive{}
	case KindPrim:
		v := n.leaf.Value(point)
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return VerdictAIR, n.leaf
		case v < 0:
			return VerdictIN, prim.Primitive{}
		case v > 0:
			return VerdictOUT, prim.Primitive{}
		default:
			return VerdictON, n.leaf
		}
	case KindUnion:
		va, wa := Member(n.ch0, point)
		vb, wb := Member(n.ch1, point)
		return combineUnion(va, wa, vb, wb)
	case KindIntersection:
		va, wa := Member(n.ch0, point)
		vb, wb := Member(n.ch1, point)
		return combineIntersection(va, wa, vb, wb)
	default:
		report.CorruptReport(site, "Member: %v: %v", ErrUnknownKind, n.kind)
		return VerdictOUT, prim.Primitive{}
	}
}

// combineUnion implements the ∪ membership table: IN dominates (at least
// one child inside is enough); otherwise AIR dominates over a determined
// OUT (an undetermined child could turn out to be IN); otherwise ON
// dominates over OUT; two OUTs are OUT.
func combineUnion(va Verdict, wa prim.Primitive, vb Verdict, wb prim.Primitive) (Verdict, prim.Primitive) {
	if va == VerdictIN {
		return VerdictIN, prim.Primitive{}
	}
	if vb == VerdictIN {
		return VerdictIN, prim.Primitive{}
	}
	if va == VerdictAIR {
		return VerdictAIR, wa
	}
	if vb == VerdictAIR {
		return VerdictAIR, wb
	}
	if va == VerdictON {
		return VerdictON, wa
	}
	if vb == VerdictON {
		return VerdictON, wb
	}
	return VerdictOUT, prim.Primitive{}
}

// combineIntersection implements the dual ∩ table: OUT dominates;
// otherwise AIR dominates over IN; otherwise ON dominates over IN; two INs
// are IN.
func combineIntersection(va Verdict, wa prim.Primitive, vb Verdict, wb prim.Primitive) (Verdict, prim.Primitive) {
	if va == VerdictOUT {
		return VerdictOUT, prim.Primitive{}
	}
	if vb == VerdictOUT {
		return VerdictOUT, prim.Primitive{}
	}
	if va == VerdictAIR {
		return VerdictAIR, wa
	}
	if vb == VerdictAIR {
		return VerdictAIR, wb
	}
	if va == VerdictON {
		return VerdictON, wa
	}
	if vb == VerdictON {
		return VerdictON, wb
	}
	return VerdictIN, prim.Primitive{}
}

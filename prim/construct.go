package prim

import (
	"math"

	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

const site = "prim"

// isReal reports whether p is a real leaf.
func isReal(p Primitive) bool { return !p.zero() && p.node().kind == KindReal && p.node().arity == 0 }

// isPlane reports whether p is a plane leaf.
func isPlane(p Primitive) bool { return !p.zero() && p.node().kind == KindPlane && p.node().arity == 0 }

func newInterior(kind Kind, op Op, degree int, ch0, ch1 Primitive) Primitive {
	n := &node{id: nextID.Add(1), kind: kind, op: op, degree: degree}
	if op.IsBinary() {
		n.arity = 2
		n.ch0, n.ch1 = ch0, ch1
	} else {
		n.arity = 1
		n.ch0 = ch0
	}
	return wrap(n)
}

// NewBinary builds a binary interior node a <op> b, applying the constant-
// folding rules of spec §4.1 to keep the DAG small and to preserve the
// invariants (rational rejection, integer powers) downstream passes rely
// on. NewBinary never panics: argument errors are reported as WARNINGs and
// a defensive value is returned so the caller's recursion can complete
// (spec §7).
func NewBinary(op Op, a, b Primitive) Primitive {
	if !op.IsBinary() {
		report.CorruptReport(site, "NewBinary: %v is not a binary operator", op)
		return a
	}

	if isReal(a) && isReal(b) {
		return foldRealReal(op, a.RealValue(), b.RealValue())
	}

	switch op {
	case OpAdd:
		if isPlane(a) && isPlane(b) {
			return combinePlanes(a.PlaneValue().Normal.Add(b.PlaneValue().Normal), a.PlaneValue().D+b.PlaneValue().D)
		}
		if isPlane(a) && isReal(b) {
			pl := a.PlaneValue()
			return NewPlaneLeaf(scalar.Plane{Normal: pl.Normal, D: pl.D + b.RealValue()})
		}
		if isReal(a) && isPlane(b) {
			return NewBinary(OpAdd, b, a)
		}
	case OpSub:
		if isPlane(a) && isPlane(b) {
			return combinePlanes(a.PlaneValue().Normal.Sub(b.PlaneValue().Normal), a.PlaneValue().D-b.PlaneValue().D)
		}
		if isPlane(a) && isReal(b) {
			pl := a.PlaneValue()
			return NewPlaneLeaf(scalar.Plane{Normal: pl.Normal, D: pl.D - b.RealValue()})
		}
	case OpDiv:
		if !isReal(b) {
			report.Warn(site, "NewBinary: %v", ErrRational)
			return a
		}
		if b.RealValue() == 0 {
			report.Warn(site, "NewBinary: division by zero")
			return a
		}
	case OpPow:
		if !isReal(b) {
			report.Warn(site, "NewBinary: %v", ErrNonIntegerExponent)
			return a
		}
		exp := math.Round(b.RealValue())
		if math.Abs(exp-b.RealValue()) > 1e-9 {
			report.Warn(site, "NewBinary: %v", ErrNonIntegerExponent)
			return a
		}
		if exp < 0 {
			report.Warn(site, "NewBinary: %v", ErrNegativeExponent)
			return a
		}
		if exp == 0 {
			return NewReal(1)
		}
		if exp == 1 {
			return a
		}
	}

	return newInterior(KindGeneral, op, degreeBinary(op, a, b), a, b)
}

// combinePlanes folds "plane op plane" into |n|*plane(n/|n|, d/|n|), the
// rescaling rule of spec §4.1 that keeps the resulting potential
// ||-normalised in its stored normal while making the true magnitude
// explicit as a multiplying real. A zero resultant normal (the two planes
// cancel) degenerates to the constant real d.
func combinePlanes(n scalar.Point, d scalar.Real) Primitive {
	mag := n.Mod()
	if mag == 0 {
		return NewReal(d)
	}
	unit := n.Scale(1 / mag)
	pl := NewPlaneLeaf(scalar.Plane{Normal: unit, D: d / mag})
	return NewBinary(OpMul, NewReal(mag), pl)
}

func foldRealReal(op Op, a, b Real) Primitive {
	switch op {
	case OpAdd:
		return NewReal(a + b)
	case OpSub:
		return NewReal(a - b)
	case OpMul:
		return NewReal(a * b)
	case OpDiv:
		if b == 0 {
			report.Warn(site, "foldRealReal: division by zero")
			return NewReal(a)
		}
		return NewReal(a / b)
	case OpPow:
		exp := math.Round(b)
		if math.Abs(exp-b) > 1e-9 {
			report.Warn(site, "foldRealReal: %v", ErrNonIntegerExponent)
			return NewReal(a)
		}
		if exp < 0 {
			report.Warn(site, "foldRealReal: %v", ErrNegativeExponent)
			return NewReal(a)
		}
		return NewReal(math.Pow(a, exp))
	default:
		report.CorruptReport(site, "foldRealReal: %v: %v", ErrUnknownOperator, op)
		return NewReal(a)
	}
}

func degreeBinary(op Op, a, b Primitive) int {
	switch op {
	case OpAdd, OpSub:
		return max(a.Degree(), b.Degree())
	case OpMul:
		return a.Degree() + b.Degree()
	case OpDiv:
		return a.Degree()
	case OpPow:
		n := int(math.Round(b.RealValue()))
		return a.Degree() * n
	default:
		return a.Degree()
	}
}

// NewUnary builds a unary interior node <op>(a), applying constant folding
// for real leaves and the double-complement / kind-dropping rules of spec
// §4.1.
func NewUnary(op Op, a Primitive) Primitive {
	if !op.IsUnary() {
		report.CorruptReport(site, "NewUnary: %v is not a unary operator", op)
		return a
	}

	if isReal(a) {
		return foldRealUnary(op, a.RealValue())
	}

	if op == OpNeg && a.node().op == OpNeg && a.node().arity == 1 {
		// Double complement collapses to the child (spec §4.1).
		return a.Child(0)
	}

	return newInterior(KindGeneral, op, a.Degree()+1, a, Primitive{})
}

func foldRealUnary(op Op, a Real) Primitive {
	switch op {
	case OpNeg:
		return NewReal(-a)
	case OpAbs:
		return NewReal(math.Abs(a))
	case OpSin:
		return NewReal(math.Sin(a))
	case OpCos:
		return NewReal(math.Cos(a))
	case OpExp:
		return NewReal(math.Exp(a))
	case OpSSqrt:
		return NewReal(sSqrt(a))
	case OpSign:
		return NewReal(signOf(a))
	default:
		report.CorruptReport(site, "foldRealUnary: %v: %v", ErrUnknownOperator, op)
		return NewReal(a)
	}
}

// sSqrt is sign(x) * sqrt(|x|), the kernel's signed square root.
func sSqrt(x Real) Real {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}

// signOf implements the kernel's sign convention: sign(0) = 0 (spec §9
// leaves this an open choice; fixed here and tested both sides).
func signOf(x Real) Real {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Arithmetic sugar over NewBinary/NewUnary.
func Add(a, b Primitive) Primitive { return NewBinary(OpAdd, a, b) }
func Sub(a, b Primitive) Primitive { return NewBinary(OpSub, a, b) }
func Mul(a, b Primitive) Primitive { return NewBinary(OpMul, a, b) }
func Div(a, b Primitive) Primitive { return NewBinary(OpDiv, a, b) }
func Pow(a, b Primitive) Primitive { return NewBinary(OpPow, a, b) }
func Neg(a Primitive) Primitive    { return NewUnary(OpNeg, a) }
func Abs(a Primitive) Primitive    { return NewUnary(OpAbs, a) }
func Sin(a Primitive) Primitive    { return NewUnary(OpSin, a) }
func Cos(a Primitive) Primitive    { return NewUnary(OpCos, a) }
func Exp(a Primitive) Primitive    { return NewUnary(OpExp, a) }
func SSqrt(a Primitive) Primitive  { return NewUnary(OpSSqrt, a) }
func Sign(a Primitive) Primitive   { return NewUnary(OpSign, a) }

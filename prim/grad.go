package prim

import (
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
)

// Grad returns the symbolic gradient of p as a point-valued triple of
// primitives (∂/∂x, ∂/∂y, ∂/∂z). The first call per node computes and
// caches all three partials in one pass (spec §4.1); later calls return
// the cached children. computeGrad is pure, so a benign race under
// concurrent first-access recomputes rather than corrupting state — the
// gradMu mutex avoids that duplicate work rather than guarding for
// correctness.
func (p Primitive) Grad() (gx, gy, gz Primitive) {
	n := p.node()
	n.gradMu.Lock()
	defer n.gradMu.Unlock()
	if n.gradDone {
		return n.gradX, n.gradY, n.gradZ
	}
	n.gradX, n.gradY, n.gradZ = computeGrad(p)
	n.gradDone = true
	return n.gradX, n.gradY, n.gradZ
}

// GradAt evaluates the gradient at a point, returning it as a scalar.Point.
func (p Primitive) GradAt(at scalar.Point) scalar.Point {
	gx, gy, gz := p.Grad()
	return scalar.Point{X: gx.Value(at), Y: gy.Value(at), Z: gz.Value(at)}
}

// GradRange evaluates the gradient's interval range over a box, returning
// the per-axis overestimate as a Box of intervals bundled as a box's
// corner triple (spec §6: "grad(box) -> box").
func (p Primitive) GradRange(b scalar.Box) scalar.Box {
	gx, gy, gz := p.Grad()
	return scalar.Box{X: gx.Range(b), Y: gy.Range(b), Z: gz.Range(b)}
}

func computeGrad(p Primitive) (gx, gy, gz Primitive) {
	n := p.node()
	switch n.arity {
	case 0:
		switch n.kind {
		case KindReal:
			z := NewReal(0)
			return z, z, z
		case KindPlane:
			nrm := n.plane.Normal
			return NewReal(nrm.X), NewReal(nrm.Y), NewReal(nrm.Z)
		case KindBlock:
			// The block leaf's potential is piecewise-linear (max of axis
			// distances); its gradient is not a single smooth expression.
			// Convention: report a zero gradient and let consumers that
			// need a surface normal recover it from the nearest half-space
			// instead (documented limitation, not in the original set of
			// differentiable leaves).
			z := NewReal(0)
			return z, z, z
		case KindUser:
			cb, ok := userRegistry[n.userTag]
			if ok && cb.Gradient != nil {
				return cb.Gradient(n.userTag)
			}
			report.Warn(site, "Grad: user primitives have no registered gradient callback (tag %d)", n.userTag)
			z := NewReal(0)
			return z, z, z
		default:
			report.CorruptReport(site, "Grad: leaf with kind %v", n.kind)
			z := NewReal(0)
			return z, z, z
		}
	case 1:
		cx, cy, cz := n.ch0.Grad()
		switch n.op {
		case OpNeg:
			return Neg(cx), Neg(cy), Neg(cz)
		case OpAbs:
			s := Sign(n.ch0)
			return Mul(s, cx), Mul(s, cy), Mul(s, cz)
		case OpSin:
			c := Cos(n.ch0)
			return Mul(c, cx), Mul(c, cy), Mul(c, cz)
		case OpCos:
			// d/dx cos(f) = -sin(f) * df/dx, encoded as sin(-f) * df/dx to
			// stay within the closed operator set (spec §4.1).
			negSin := Sin(Neg(n.ch0))
			return Mul(negSin, cx), Mul(negSin, cy), Mul(negSin, cz)
		case OpExp:
			e := Exp(n.ch0)
			return Mul(e, cx), Mul(e, cy), Mul(e, cz)
		case OpSSqrt:
			// Deliberate deviation from calculus (spec §4.1/§9): the
			// gradient of s_sqrt(f) is taken to be that of f itself, since
			// only direction matters for surface normals and the true
			// derivative blows up at f=0.
			return cx, cy, cz
		case OpSign:
			z := NewReal(0)
			return z, z, z
		default:
			report.CorruptReport(site, "Grad: %v: %v", ErrUnknownOperator, n.op)
			z := NewReal(0)
			return z, z, z
		}
	default:
		ax, ay, az := n.ch0.Grad()
		bx, by, bz := n.ch1.Grad()
		switch n.op {
		case OpAdd:
			return Add(ax, bx), Add(ay, by), Add(az, bz)
		case OpSub:
			return Sub(ax, bx), Sub(ay, by), Sub(az, bz)
		case OpMul:
			a, b := n.ch0, n.ch1
			return productRule(a, b, ax, bx), productRule(a, b, ay, by), productRule(a, b, az, bz)
		case OpDiv:
			// Construction guarantees b is a real constant (rationals are
			// rejected), so d/dx (a/b) = (da/dx) / b.
			return Div(ax, n.ch1), Div(ay, n.ch1), Div(az, n.ch1)
		case OpPow:
			// Power rule for an integer exponent k: d/dx f^k = k*f^(k-1)*df/dx.
			k := n.ch1.RealValue()
			coeff := Mul(n.ch1, Pow(n.ch0, NewReal(k-1)))
			return Mul(coeff, ax), Mul(coeff, ay), Mul(coeff, az)
		default:
			report.CorruptReport(site, "Grad: %v: %v", ErrUnknownOperator, n.op)
			z := NewReal(0)
			return z, z, z
		}
	}
}

// productRule returns d/dx (a*b) = a*db/dx + b*da/dx for one axis, given
// that axis's da/dx and db/dx.
func productRule(a, b, da, db Primitive) Primitive {
	return Add(Mul(a, db), Mul(b, da))
}

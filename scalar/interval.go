package scalar

import "math"

// Real is the kernel's scalar type: a 64-bit float by convention.
type Real = float64

// Interval is an ordered pair [Lo, Hi]. Lo > Hi denotes the empty interval;
// this is a sentinel the caller may construct deliberately (e.g. as the
// result of intersecting two disjoint intervals) — NewInterval does not
// normalise or reject it.
type Interval struct {
	Lo, Hi Real
}

// NewInterval builds an Interval from lo and hi verbatim.
// Complexity: O(1).
func NewInterval(lo, hi Real) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// Degenerate returns the single-point interval [x, x].
func Degenerate(x Real) Interval {
	return Interval{Lo: x, Hi: x}
}

// Empty reports whether the interval is the empty sentinel (Lo > Hi).
func (iv Interval) Empty() bool {
	return iv.Lo > iv.Hi
}

// Contains reports whether x lies within [Lo, Hi], inclusive.
func (iv Interval) Contains(x Real) bool {
	return !iv.Empty() && x >= iv.Lo && x <= iv.Hi
}

// StraddlesZero reports whether the interval contains both a non-negative
// and a non-positive value, i.e. the true range may cross the surface.
func (iv Interval) StraddlesZero() bool {
	return !iv.Empty() && iv.Lo <= 0 && iv.Hi >= 0
}

// Width returns Hi - Lo, or 0 for an empty interval.
func (iv Interval) Width() Real {
	if iv.Empty() {
		return 0
	}
	return iv.Hi - iv.Lo
}

// Mid returns the interval midpoint.
func (iv Interval) Mid() Real {
	return (iv.Lo + iv.Hi) / 2
}

// Add returns the interval sum, inclusion-monotone.
func (iv Interval) Add(o Interval) Interval {
	return Interval{iv.Lo + o.Lo, iv.Hi + o.Hi}
}

// Sub returns the interval difference iv - o.
func (iv Interval) Sub(o Interval) Interval {
	return Interval{iv.Lo - o.Hi, iv.Hi - o.Lo}
}

// Neg returns the additive inverse of the interval.
func (iv Interval) Neg() Interval {
	return Interval{-iv.Hi, -iv.Lo}
}

// Mul returns the interval product, considering all four corner products.
func (iv Interval) Mul(o Interval) Interval {
	a, b, c, d := iv.Lo*o.Lo, iv.Lo*o.Hi, iv.Hi*o.Lo, iv.Hi*o.Hi
	return Interval{min4(a, b, c, d), max4(a, b, c, d)}
}

// Div returns iv / o. o must not straddle zero; the caller (prim.Range) is
// responsible for treating a zero-straddling divisor as corruption, per the
// "rationals not supported" rule in spec §4.1.
func (iv Interval) Div(o Interval) Interval {
	if o.Lo == 0 && o.Hi == 0 {
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	inv := Interval{1 / o.Hi, 1 / o.Lo}
	return iv.Mul(inv)
}

// Abs returns the interval range of |x| for x in iv.
func (iv Interval) Abs() Interval {
	if iv.Empty() {
		return iv
	}
	if iv.Lo >= 0 {
		return iv
	}
	if iv.Hi <= 0 {
		return iv.Neg()
	}
	return Interval{0, math.Max(-iv.Lo, iv.Hi)}
}

// Sign returns the interval range of sign(x) for x in iv: {-1}, {0}, {1}, or
// a span covering the subset that actually occurs.
func (iv Interval) Sign() Interval {
	lo, hi := Real(1), Real(-1)
	if iv.Lo < 0 {
		lo = -1
	} else if iv.Lo == 0 {
		lo = 0
	}
	if iv.Hi > 0 {
		hi = 1
	} else if iv.Hi == 0 {
		hi = 0
	} else {
		hi = -1
	}
	if iv.Lo <= 0 && iv.Hi >= 0 {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	return Interval{math.Min(lo, hi), math.Max(lo, hi)}
}

// SSqrt returns the interval range of sign(x)*sqrt(|x|) for x in iv.
func (iv Interval) SSqrt() Interval {
	f := func(x Real) Real {
		if x < 0 {
			return -math.Sqrt(-x)
		}
		return math.Sqrt(x)
	}
	return Interval{f(iv.Lo), f(iv.Hi)}
}

// Sin returns an inclusion-monotone overestimate of sin(x) for x in iv.
// Conservative: falls back to the full [-1, 1] range whenever the interval
// width reaches one half-period; a narrower interval is widened to 1 or -1
// only where a peak or trough of sin lies inside it.
func (iv Interval) Sin() Interval {
	if iv.Width() >= math.Pi {
		return Interval{-1, 1}
	}
	lo, hi := math.Sin(iv.Lo), math.Sin(iv.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	return extendTrig(iv, math.Pi/2, lo, hi)
}

// Cos returns an inclusion-monotone overestimate of cos(x) for x in iv.
func (iv Interval) Cos() Interval {
	if iv.Width() >= math.Pi {
		return Interval{-1, 1}
	}
	lo, hi := math.Cos(iv.Lo), math.Cos(iv.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	return extendTrig(iv, 0, lo, hi)
}

// extendTrig widens the endpoint range [lo, hi] of sin or cos over iv to 1
// where a maximum (at peak + 2kπ) lies inside iv and to -1 where a minimum
// (at peak + π + 2kπ) does, so the range always contains the true one.
func extendTrig(iv Interval, peak, lo, hi Real) Interval {
	contains := func(c Real) bool {
		return c+2*math.Pi*math.Ceil((iv.Lo-c)/(2*math.Pi)) <= iv.Hi
	}
	if contains(peak) {
		hi = 1
	}
	if contains(peak + math.Pi) {
		lo = -1
	}
	return Interval{lo, hi}
}

// Exp returns the interval range of exp(x) for x in iv. exp is monotone, so
// this is exact (up to floating point), not an overestimate.
func (iv Interval) Exp() Interval {
	return Interval{math.Exp(iv.Lo), math.Exp(iv.Hi)}
}

// Pow raises iv to an integer power n (n >= 0), by repeated interval
// multiplication; for an even n and an iv straddling zero this overestimates
// (e.g. [-3, 3]^2 gives [-9, 9]). Negative exponents are rejected by the caller (prim),
// per spec §4.1's "negative integer exponent is an error".
func (iv Interval) Pow(n int) Interval {
	if n == 0 {
		return Degenerate(1)
	}
	result := iv
	for i := 1; i < n; i++ {
		result = result.Mul(iv)
	}
	return result
}

func min4(a, b, c, d Real) Real { return math.Min(math.Min(a, b), math.Min(c, d)) }
func max4(a, b, c, d Real) Real { return math.Max(math.Max(a, b), math.Max(c, d)) }

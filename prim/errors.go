package prim

import "errors"

// Sentinel errors for the prim package. Argument errors are WARNINGs per
// spec §7: recursions continue with a defensive value, and the caller may
// additionally branch on the returned error with errors.Is.
var (
	// ErrZeroScale indicates a scale transform was asked for a zero factor.
	ErrZeroScale = errors.New("prim: zero scale factor")

	// ErrNegativeExponent indicates a negative integer power, which is
	// undefined for the kernel's potential-preserving ^ operator.
	ErrNegativeExponent = errors.New("prim: negative exponent")

	// ErrNonIntegerExponent indicates a ^ operator whose exponent did not
	// round to an integer within tolerance.
	ErrNonIntegerExponent = errors.New("prim: non-integer exponent")

	// ErrRational indicates a ÷ whose divisor does not reduce to a real
	// constant; the kernel declares rationals unsupported (spec §1).
	ErrRational = errors.New("prim: rationals not supported")

	// ErrUnknownUserTag indicates a user-primitive tag with no registered
	// callback set.
	ErrUnknownUserTag = errors.New("prim: unknown user primitive tag")

	// ErrUnknownOperator indicates a dispatch encountered an operator value
	// it cannot classify; this is structural corruption (spec §7: CORRUPT).
	ErrUnknownOperator = errors.New("prim: unknown operator")
)

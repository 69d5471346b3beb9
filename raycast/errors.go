package raycast

import "errors"

// Sentinel errors for the raycast package (spec §7).
var (
	// ErrNilModel indicates FireRay was given a nil model.
	ErrNilModel = errors.New("raycast: nil model")

	// ErrDegenerateDirection indicates a line direction of zero length.
	ErrDegenerateDirection = errors.New("raycast: degenerate ray direction")
)

const site = "raycast"

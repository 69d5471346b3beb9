package linalg

import (
	"math"

	"github.com/svlis-go/svlis/scalar"
)

// Rodrigues builds the 3x3 rotation matrix that rotates by angle radians
// about axis (expected unit length), via Rodrigues' rotation formula
// R = I + sin(θ)K + (1-cos(θ))K², where K is axis's cross-product matrix.
// Used by prim.Spin to rotate plane normals (a linear-algebra concern kept
// out of prim itself).
func Rodrigues(axis scalar.Point, angle float64) (*Dense, error) {
	kx, ky, kz := axis.X, axis.Y, axis.Z
	k, err := NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	// Cross-product matrix of axis.
	k.data = []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	}
	k2, err := Mul(k, k)
	if err != nil {
		return nil, err
	}
	id, err := Identity(3)
	if err != nil {
		return nil, err
	}
	sinT, cosT := math.Sin(angle), math.Cos(angle)
	term2 := Scale(k, sinT)
	term3 := Scale(k2, 1-cosT)
	r, err := Add(id, term2)
	if err != nil {
		return nil, err
	}
	r, err = Add(r, term3)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RotatePoint applies rotation matrix r (as built by Rodrigues) to the free
// vector p.
func RotatePoint(r *Dense, p scalar.Point) (scalar.Point, error) {
	y, err := MatVec(r, []float64{p.X, p.Y, p.Z})
	if err != nil {
		return scalar.Point{}, err
	}
	return scalar.Point{X: y[0], Y: y[1], Z: y[2]}, nil
}

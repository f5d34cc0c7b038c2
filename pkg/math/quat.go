package math

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis r3.Vec, angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Rotate applies the rotation to v. q must be a unit quaternion.
func (q Quat) Rotate(v r3.Vec) r3.Vec {
	u := r3.Vec{X: q.X, Y: q.Y, Z: q.Z}
	t := r3.Scale(2, r3.Cross(u, v))
	return r3.Add(r3.Add(v, r3.Scale(q.W, t)), r3.Cross(u, t))
}

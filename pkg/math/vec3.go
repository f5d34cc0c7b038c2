package math

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Distance returns the distance between two points.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Reject returns the component of v perpendicular to the unit vector n.
func Reject(v, n r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(r3.Dot(v, n), n))
}

// SignedAngle returns the angle in radians that rotates a onto b about axis,
// positive counter-clockwise when looking down the axis. Both vectors are
// projected onto the plane perpendicular to the (unit) axis first.
func SignedAngle(a, b, axis r3.Vec) float64 {
	a = Reject(a, axis)
	b = Reject(b, axis)
	return math.Atan2(r3.Dot(r3.Cross(a, b), axis), r3.Dot(a, b))
}

// ApproxEqual reports whether a and b are within tol of each other.
func ApproxEqual(a, b r3.Vec, tol float64) bool {
	return Distance(a, b) <= tol
}

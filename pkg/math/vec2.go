// Package math provides the geometric helpers used by the mesh packages:
// planar coordinates, rotations, affine matrices and orthonormal frames.
// Points and vectors in space are gonum r3.Vec values.
package math

import "math"

// Vec2 is a 2D vector, used for flattened layouts.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

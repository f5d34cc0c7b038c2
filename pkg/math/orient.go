package math

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Orient is a right-handed orthonormal frame positioned in space.
type Orient struct {
	Origin  r3.Vec
	X, Y, Z r3.Vec
}

// NewOrient builds a frame at origin whose X axis follows x and whose XY
// plane contains xy. ok is false if x is zero or parallel to xy.
func NewOrient(origin, x, xy r3.Vec) (o Orient, ok bool) {
	const eps = 1e-12

	if r3.Norm2(x) < eps {
		return Orient{}, false
	}
	xa := r3.Unit(x)
	z := r3.Cross(xa, xy)
	if r3.Norm2(z) < eps {
		return Orient{}, false
	}
	za := r3.Unit(z)
	return Orient{
		Origin: origin,
		X:      xa,
		Y:      r3.Cross(za, xa),
		Z:      za,
	}, true
}

// ToLocal expresses the world point p in frame coordinates.
func (o Orient) ToLocal(p r3.Vec) r3.Vec {
	d := r3.Sub(p, o.Origin)
	return r3.Vec{X: r3.Dot(d, o.X), Y: r3.Dot(d, o.Y), Z: r3.Dot(d, o.Z)}
}

// Planar returns the XY frame coordinates of p.
func (o Orient) Planar(p r3.Vec) Vec2 {
	l := o.ToLocal(p)
	return Vec2{l.X, l.Y}
}

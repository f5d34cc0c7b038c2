package polymesh

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
)

// AreaVector returns the face normal scaled by twice the face area,
// computed with Newell's method so non-planar faces get a sensible value.
func AreaVector(m *Mesh, f int) r3.Vec {
	var n r3.Vec
	first := m.First(f)
	for h := range m.FaceLoop(first) {
		p := m.VertexAttr(m.Start(h)).Position
		q := m.VertexAttr(m.End(h)).Position
		n = r3.Add(n, r3.Cross(p, q))
	}
	return n
}

// FaceNormal returns the unit normal of face f, or the zero vector for a
// degenerate face.
func FaceNormal(m *Mesh, f int) r3.Vec {
	return unit(AreaVector(m, f))
}

// FaceArea returns the area of face f.
func FaceArea(m *Mesh, f int) float64 {
	return r3.Norm(AreaVector(m, f)) / 2
}

// FaceCentroid returns the average of the vertices of face f.
func FaceCentroid(m *Mesh, f int) r3.Vec {
	var c r3.Vec
	n := 0
	for v := range m.FaceVertices(f) {
		c = r3.Add(c, m.VertexAttr(v).Position)
		n++
	}
	return r3.Scale(1/float64(n), c)
}

// EdgeVector returns End(h) - Start(h).
func EdgeVector(m *Mesh, h int) r3.Vec {
	return r3.Sub(m.VertexAttr(m.End(h)).Position, m.VertexAttr(m.Start(h)).Position)
}

// DihedralAngle returns the signed angle between the normals of the faces
// on either side of h, 0 on the boundary. It is positive when the surface
// folds away from the normal side (convex) and negative for a valley.
func DihedralAngle(m *Mesh, h int) float64 {
	f, g := m.FaceOf(h), m.FaceOf(m.Twin(h))
	if f == halfedge.None || g == halfedge.None {
		return 0
	}
	n0, n1 := FaceNormal(m, f), FaceNormal(m, g)
	e := unit(EdgeVector(m, h))
	return gomath.Atan2(r3.Dot(r3.Cross(n0, n1), e), r3.Dot(n0, n1))
}

// Circumcenter returns the circumcenter of a triangular face.
func Circumcenter(m *Mesh, f int) (r3.Vec, error) {
	h := m.First(f)
	if !m.IsTriangle(h) {
		return r3.Vec{}, fmt.Errorf("circumcenter of %d-sided face %d: %w", m.LoopLength(h), f, halfedge.ErrNotImplemented)
	}
	a := m.VertexAttr(m.Start(h)).Position
	b := m.VertexAttr(m.End(h)).Position
	c := m.VertexAttr(m.End(m.Next(h))).Position

	ab, ac := r3.Sub(b, a), r3.Sub(c, a)
	n := r3.Cross(ab, ac)
	d := 2 * r3.Norm2(n)
	if d == 0 {
		return r3.Vec{}, fmt.Errorf("circumcenter of degenerate face %d: %w", f, halfedge.ErrTopology)
	}
	off := r3.Add(
		r3.Scale(r3.Norm2(ac), r3.Cross(n, ab)),
		r3.Scale(r3.Norm2(ab), r3.Cross(ac, n)),
	)
	return r3.Add(a, r3.Scale(1/d, off)), nil
}

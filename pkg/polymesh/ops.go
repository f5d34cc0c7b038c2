package polymesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/math"
	"github.com/Faultbox/halfmesh/pkg/quad"
	"github.com/Faultbox/halfmesh/pkg/unroll"
)

// Dual returns the dual mesh with each dual vertex at the centroid of its
// primal face and the primal vertex normals carried over as dual face
// normals.
func Dual(m *Mesh) (*Mesh, error) {
	d, err := m.Dual(
		func(f int) Vertex {
			return Vertex{Position: FaceCentroid(m, f), Normal: FaceNormal(m, f)}
		},
		func(v int) Face {
			return Face{Normal: m.VertexAttr(v).Normal}
		},
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Quadrangulate applies st to every face with more than four sides and
// returns the number of splits.
func Quadrangulate(m *Mesh, st quad.Strategy) (int, error) {
	var faces []int
	for f := range m.Faces.All() {
		if m.LoopLength(m.First(f)) > 4 {
			faces = append(faces, f)
		}
	}
	n, err := quad.All(m, faces, st)
	if err != nil {
		return n, err
	}
	return n, UpdateNormals(m, Serial)
}

// Unroll flattens m into the plane of face seed, marks the halfedges on
// both sides of every cut as seams and recomputes normals.
func Unroll(m *Mesh, seed int, opts ...unroll.Option) (*unroll.Result, error) {
	res, err := unroll.Unroll(m, seed, Position, opts...)
	if err != nil {
		return nil, err
	}
	for h, n := range res.EdgeMap {
		if n == halfedge.None {
			continue
		}
		m.HalfedgeAttr(h).Seam = true
		m.HalfedgeAttr(n).Seam = true
	}
	if err := UpdateNormals(m, Serial); err != nil {
		return res, err
	}
	return res, nil
}

// Layout sets the texture coordinate of every used vertex to its position
// in the plane of face f, with the origin at the face's first vertex and
// the X axis along its first edge.
func Layout(m *Mesh, f int) error {
	if !m.Faces.Used(f) {
		return fmt.Errorf("layout face %d: %w", f, halfedge.ErrUnused)
	}
	h := m.First(f)
	origin := m.VertexAttr(m.Start(h)).Position
	frame, ok := math.NewOrient(origin, EdgeVector(m, h), r3.Scale(-1, EdgeVector(m, m.Prev(h))))
	if !ok {
		return fmt.Errorf("layout face %d is degenerate: %w", f, halfedge.ErrTopology)
	}
	for _, a := range m.Vertices.All() {
		a.Attr.TexCoord = frame.Planar(a.Attr.Position)
	}
	return nil
}

// Seams returns the number of halfedges marked as seams.
func Seams(m *Mesh) int {
	n := 0
	for h := range m.Halfedges.All() {
		if m.HalfedgeAttr(h).Seam {
			n++
		}
	}
	return n
}

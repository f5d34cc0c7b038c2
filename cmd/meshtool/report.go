package main

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/polymesh"
)

type topologyReport struct {
	Counts           halfedge.Counts `yaml:"counts"`
	Edges            int             `yaml:"edges"`
	Components       int             `yaml:"components"`
	BoundaryVertices int             `yaml:"boundary_vertices"`
	Euler            int             `yaml:"euler"`
	Valid            bool            `yaml:"valid"`
}

type span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type geometryReport struct {
	BoundsMin  [3]float64 `yaml:"bounds_min"`
	BoundsMax  [3]float64 `yaml:"bounds_max"`
	EdgeLength span       `yaml:"edge_length"`
	Dihedral   span       `yaml:"dihedral"`
}

func describeTopology(m *polymesh.Mesh) topologyReport {
	c := m.Counts()
	r := topologyReport{
		Counts:     c,
		Edges:      c.Edges(),
		Components: len(m.ConnectedComponents(polymesh.Copier).Meshes),
		Euler:      c.Vertices - c.Edges() + c.Faces,
		Valid:      m.Validate() == nil,
	}
	for v := range m.Vertices.All() {
		if m.IsBoundaryVertex(v) {
			r.BoundaryVertices++
		}
	}
	return r
}

func describeGeometry(m *polymesh.Mesh, p polymesh.Parallelism) (geometryReport, error) {
	var r geometryReport
	box, err := polymesh.Bounds(m, p)
	if err != nil {
		return r, err
	}
	r.BoundsMin = [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	r.BoundsMax = [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	lengths, err := polymesh.EdgeLengths(m, p)
	if err != nil {
		return r, err
	}
	angles, err := polymesh.DihedralAngles(m, p)
	if err != nil {
		return r, err
	}
	used := func(h int) bool { return m.Halfedges.Used(h) }
	r.EdgeLength = spanOf(lengths, used)
	r.Dihedral = spanOf(angles, func(h int) bool { return used(h) && !m.IsBoundaryHalfedge(h) })
	return r, nil
}

func spanOf(values []float64, keep func(i int) bool) span {
	s := span{Min: gomath.Inf(1), Max: gomath.Inf(-1)}
	for i, v := range values {
		if !keep(i) {
			continue
		}
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	if s.Min > s.Max {
		return span{}
	}
	return s
}

// layoutStretch spans, over used halfedges, how much longer each edge is in
// the planar layout than in space.
func layoutStretch(m *polymesh.Mesh) span {
	d := make([]float64, m.Halfedges.Len())
	for h := range m.Halfedges.All() {
		a, b := m.VertexAttr(m.Start(h)), m.VertexAttr(m.End(h))
		d[h] = a.TexCoord.Distance(b.TexCoord) - r3.Norm(r3.Sub(b.Position, a.Position))
	}
	return spanOf(d, m.Halfedges.Used)
}

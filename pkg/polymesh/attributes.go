package polymesh

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/internal/parallel"
	"github.com/Faultbox/halfmesh/pkg/math"
)

// EdgeLengths returns the length of every halfedge, indexed by handle.
// Unused slots hold 0.
func EdgeLengths(m *Mesh, p Parallelism) ([]float64, error) {
	out := make([]float64, m.Halfedges.Len())
	err := parallel.For(len(out), p.Grain, p.Workers, func(lo, hi int) error {
		for h := lo; h < hi; h++ {
			if m.Halfedges.Used(h) {
				out[h] = r3.Norm(EdgeVector(m, h))
			}
		}
		return nil
	})
	return out, err
}

// DihedralAngles returns DihedralAngle for every halfedge, indexed by
// handle.
func DihedralAngles(m *Mesh, p Parallelism) ([]float64, error) {
	out := make([]float64, m.Halfedges.Len())
	err := parallel.For(len(out), p.Grain, p.Workers, func(lo, hi int) error {
		for h := lo; h < hi; h++ {
			if m.Halfedges.Used(h) {
				out[h] = DihedralAngle(m, h)
			}
		}
		return nil
	})
	return out, err
}

// FaceCentroids returns the centroid of every face, indexed by handle.
func FaceCentroids(m *Mesh, p Parallelism) ([]r3.Vec, error) {
	out := make([]r3.Vec, m.Faces.Len())
	err := parallel.For(len(out), p.Grain, p.Workers, func(lo, hi int) error {
		for f := lo; f < hi; f++ {
			if m.Faces.Used(f) {
				out[f] = FaceCentroid(m, f)
			}
		}
		return nil
	})
	return out, err
}

// UpdateNormals recomputes face normals, then vertex normals as the
// area-weighted average of the surrounding faces.
func UpdateNormals(m *Mesh, p Parallelism) error {
	err := parallel.For(m.Faces.Len(), p.Grain, p.Workers, func(lo, hi int) error {
		for f := lo; f < hi; f++ {
			if m.Faces.Used(f) {
				m.FaceAttr(f).Normal = FaceNormal(m, f)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return parallel.For(m.Vertices.Len(), p.Grain, p.Workers, func(lo, hi int) error {
		for v := lo; v < hi; v++ {
			if !m.Vertices.Used(v) {
				continue
			}
			var n r3.Vec
			for f := range m.SurroundingFaces(v) {
				n = r3.Add(n, AreaVector(m, f))
			}
			m.VertexAttr(v).Normal = unit(n)
		}
		return nil
	})
}

// Bounds returns the axis-aligned box around the used vertices. An empty
// mesh gives the zero box.
func Bounds(m *Mesh, p Parallelism) (r3.Box, error) {
	var (
		mu    sync.Mutex
		box   r3.Box
		empty = true
	)
	err := parallel.For(m.Vertices.Len(), p.Grain, p.Workers, func(lo, hi int) error {
		var local r3.Box
		found := false
		for v := lo; v < hi; v++ {
			if !m.Vertices.Used(v) {
				continue
			}
			q := m.VertexAttr(v).Position
			if !found {
				local = r3.Box{Min: q, Max: q}
				found = true
				continue
			}
			local = extend(local, q, q)
		}
		if !found {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		if empty {
			box, empty = local, false
		} else {
			box = extend(box, local.Min, local.Max)
		}
		return nil
	})
	return box, err
}

func extend(b r3.Box, lo, hi r3.Vec) r3.Box {
	b.Min = r3.Vec{X: min(b.Min.X, lo.X), Y: min(b.Min.Y, lo.Y), Z: min(b.Min.Z, lo.Z)}
	b.Max = r3.Vec{X: max(b.Max.X, hi.X), Y: max(b.Max.Y, hi.Y), Z: max(b.Max.Z, hi.Z)}
	return b
}

// Transform applies t to every vertex position and normal, then
// recomputes face normals. Normals are mapped as directions, which is
// only exact for rotations and uniform scales.
func Transform(m *Mesh, t math.Mat4, p Parallelism) error {
	err := parallel.For(m.Vertices.Len(), p.Grain, p.Workers, func(lo, hi int) error {
		for v := lo; v < hi; v++ {
			if !m.Vertices.Used(v) {
				continue
			}
			a := m.VertexAttr(v)
			a.Position = t.TransformPoint(a.Position)
			a.Normal = unit(t.TransformDirection(a.Normal))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return parallel.For(m.Faces.Len(), p.Grain, p.Workers, func(lo, hi int) error {
		for f := lo; f < hi; f++ {
			if m.Faces.Used(f) {
				m.FaceAttr(f).Normal = FaceNormal(m, f)
			}
		}
		return nil
	})
}

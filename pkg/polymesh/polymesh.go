// Package polymesh is the geometric mesh used by the tools: a halfedge
// mesh whose vertices carry a position, a normal and a texture coordinate.
//
// It adds what the topology packages leave to the caller: primitive
// shapes, per-element geometry computed in parallel, rigid transforms,
// a dual with centroid positions and planar layouts for unrolled meshes.
package polymesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/math"
)

// ErrShape reports invalid primitive parameters.
var ErrShape = errors.New("invalid shape parameters")

// Vertex is the per-vertex attribute.
type Vertex struct {
	Position r3.Vec
	Normal   r3.Vec
	TexCoord math.Vec2
}

// Edge is the per-halfedge attribute.
type Edge struct {
	// Seam marks halfedges on either side of a cut made by Unroll.
	Seam bool
}

// Face is the per-face attribute.
type Face struct {
	Normal r3.Vec
}

// Mesh is a halfedge mesh with geometric attributes.
type Mesh = halfedge.Mesh[Vertex, Edge, Face]

// Parallelism controls how per-element computations are spread over
// goroutines. The zero value uses every CPU with an automatic grain.
type Parallelism struct {
	Workers int
	Grain   int
}

// Serial runs everything on the calling goroutine.
var Serial = Parallelism{Workers: 1}

// New returns an empty mesh.
func New() *Mesh {
	return halfedge.New[Vertex, Edge, Face]()
}

// FromPolygons builds a mesh from points and counter-clockwise polygons and
// computes its normals.
func FromPolygons(points []r3.Vec, polygons [][]int) (*Mesh, error) {
	verts := make([]Vertex, len(points))
	for i, p := range points {
		verts[i].Position = p
	}
	m, err := halfedge.FromPolygons[Vertex, Edge, Face](verts, polygons)
	if err != nil {
		return nil, err
	}
	if err := UpdateNormals(m, Serial); err != nil {
		return nil, err
	}
	return m, nil
}

// Position returns the position field of a vertex attribute.
func Position(v *Vertex) *r3.Vec { return &v.Position }

// Copier copies all attributes by value.
var Copier = halfedge.Copier[Vertex, Edge, Face]{}

func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}

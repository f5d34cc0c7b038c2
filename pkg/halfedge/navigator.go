package halfedge

import "iter"

// Navigator is the read-only view of a mesh that traversal code needs.
// *Mesh satisfies it for every attribute type.
type Navigator interface {
	Start(h int) int
	End(h int) int
	Twin(h int) int
	Next(h int) int
	Prev(h int) int
	FaceOf(h int) int
	First(f int) int
	Outgoing(v int) int
}

// Splitter is a Navigator that can also split faces.
type Splitter interface {
	Navigator
	SplitFace(a, b int) (int, error)
}

var (
	_ Navigator = (*Mesh[struct{}, struct{}, struct{}])(nil)
	_ Splitter  = (*Mesh[struct{}, struct{}, struct{}])(nil)
)

// VertexNeighborsFrom yields the halfedges leaving Start(h), beginning at h.
func (m *Mesh[V, E, F]) VertexNeighborsFrom(h int) iter.Seq[int] {
	return m.Star(h)
}

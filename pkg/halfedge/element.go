package halfedge

// None is the null handle.
const None = -1

// header is embedded in every element record.
type header struct {
	index int
	tag   int
}

func (h *header) base() *header { return h }

// Index returns the element's position within its list.
func (h *header) Index() int { return h.index }

// Vertex is a vertex record.
type Vertex[V any] struct {
	header

	// Outgoing is a halfedge starting at this vertex, None if the vertex is
	// unused. Boundary vertices always point at a boundary halfedge.
	Outgoing int

	Attr V
}

// Unused reports whether the vertex has been removed.
func (v *Vertex[V]) Unused() bool { return v.Outgoing == None }

// Halfedge is one oriented half of an edge.
type Halfedge[E any] struct {
	header

	Start int
	Twin  int
	Next  int
	Prev  int

	// Face is the face to the left of the halfedge, None on the boundary.
	Face int

	Attr E
}

// Unused reports whether the halfedge has been removed.
func (e *Halfedge[E]) Unused() bool { return e.Start == None }

// Face is a face record.
type Face[F any] struct {
	header

	// First is an arbitrary halfedge of the face loop.
	First int

	Attr F
}

// Unused reports whether the face has been removed.
func (f *Face[F]) Unused() bool { return f.First == None }

func newVertex[V any](attr V) Vertex[V] {
	return Vertex[V]{Outgoing: None, Attr: attr}
}

func newHalfedge[E any]() Halfedge[E] {
	return Halfedge[E]{Start: None, Twin: None, Next: None, Prev: None, Face: None}
}

func newFace[F any](attr F) Face[F] {
	return Face[F]{First: None, Attr: attr}
}

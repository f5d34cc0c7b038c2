package halfedge

// Copier copies attributes between meshes. A nil function means plain
// assignment.
type Copier[V, E, F any] struct {
	Vertex   func(dst, src *V)
	Halfedge func(dst, src *E)
	Face     func(dst, src *F)
}

func (c Copier[V, E, F]) vertex(dst, src *V) {
	if c.Vertex == nil {
		*dst = *src
		return
	}
	c.Vertex(dst, src)
}

func (c Copier[V, E, F]) halfedge(dst, src *E) {
	if c.Halfedge == nil {
		*dst = *src
		return
	}
	c.Halfedge(dst, src)
}

func (c Copier[V, E, F]) face(dst, src *F) {
	if c.Face == nil {
		*dst = *src
		return
	}
	c.Face(dst, src)
}

// Offsets are the index bases at which Append placed the other mesh.
type Offsets struct {
	Vertices  int
	Halfedges int
	Faces     int
}

// Duplicate returns a copy of the mesh with identical indices. Unused
// slots are mirrored so handles stay valid across the two meshes.
func (m *Mesh[V, E, F]) Duplicate(c Copier[V, E, F]) *Mesh[V, E, F] {
	d := NewWithCapacity[V, E, F](len(m.Vertices.items), len(m.Halfedges.items), len(m.Faces.items))
	d.Append(m, c)
	return d
}

// Append adds a copy of other after the elements of m and returns where
// it went. Every handle of the copy is shifted by the matching offset.
// other may be m itself.
func (m *Mesh[V, E, F]) Append(other *Mesh[V, E, F], c Copier[V, E, F]) Offsets {
	off := Offsets{
		Vertices:  len(m.Vertices.items),
		Halfedges: len(m.Halfedges.items),
		Faces:     len(m.Faces.items),
	}
	nv, nh, nf := len(other.Vertices.items), len(other.Halfedges.items), len(other.Faces.items)
	m.Vertices.grow(nv)
	m.Halfedges.grow(nh)
	m.Faces.grow(nf)

	for i := range nv {
		src := other.Vertices.items[i]
		v := m.Vertices.add(Vertex[V]{Outgoing: shift(src.Outgoing, off.Halfedges)})
		c.vertex(&m.Vertices.items[v].Attr, &other.Vertices.items[i].Attr)
	}
	for i := range nh {
		src := other.Halfedges.items[i]
		h := m.Halfedges.add(Halfedge[E]{
			Start: shift(src.Start, off.Vertices),
			Twin:  shift(src.Twin, off.Halfedges),
			Next:  shift(src.Next, off.Halfedges),
			Prev:  shift(src.Prev, off.Halfedges),
			Face:  shift(src.Face, off.Faces),
		})
		c.halfedge(&m.Halfedges.items[h].Attr, &other.Halfedges.items[i].Attr)
	}
	for i := range nf {
		src := other.Faces.items[i]
		f := m.Faces.add(Face[F]{First: shift(src.First, off.Halfedges)})
		c.face(&m.Faces.items[f].Attr, &other.Faces.items[i].Attr)
	}
	return off
}

func shift(h, by int) int {
	if h == None {
		return None
	}
	return h + by
}

// AddPolygons builds a polygon soup as in FromPolygons and appends it to
// m as a separate piece. Polygon indices refer to vertices, not to the
// existing vertices of m.
func (m *Mesh[V, E, F]) AddPolygons(vertices []V, polygons [][]int) (Offsets, error) {
	p, err := FromPolygons[V, E, F](vertices, polygons)
	if err != nil {
		return Offsets{}, err
	}
	return m.Append(p, Copier[V, E, F]{}), nil
}

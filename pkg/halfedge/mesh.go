package halfedge

import "fmt"

// Mesh is a halfedge mesh whose vertices, halfedges and faces carry user
// attributes of type V, E and F.
type Mesh[V, E, F any] struct {
	Vertices  List[Vertex[V], *Vertex[V]]
	Halfedges List[Halfedge[E], *Halfedge[E]]
	Faces     List[Face[F], *Face[F]]
}

// New returns an empty mesh.
func New[V, E, F any]() *Mesh[V, E, F] {
	return &Mesh[V, E, F]{}
}

// NewWithCapacity returns an empty mesh with room for the given number of
// vertices, halfedges and faces.
func NewWithCapacity[V, E, F any](vertices, halfedges, faces int) *Mesh[V, E, F] {
	m := New[V, E, F]()
	m.Vertices.grow(vertices)
	m.Halfedges.grow(halfedges)
	m.Faces.grow(faces)
	return m
}

// Counts holds element totals.
type Counts struct {
	Vertices  int `yaml:"vertices"`
	Halfedges int `yaml:"halfedges"`
	Faces     int `yaml:"faces"`
}

// Edges returns the number of undirected edges.
func (c Counts) Edges() int { return c.Halfedges / 2 }

// String returns the counts as "V/H/F".
func (c Counts) String() string {
	return fmt.Sprintf("%dv/%dh/%df", c.Vertices, c.Halfedges, c.Faces)
}

// Counts returns the number of used elements of each kind.
func (m *Mesh[V, E, F]) Counts() Counts {
	return Counts{
		Vertices:  m.Vertices.CountUsed(),
		Halfedges: m.Halfedges.CountUsed(),
		Faces:     m.Faces.CountUsed(),
	}
}

// Start returns the vertex halfedge h starts at.
func (m *Mesh[V, E, F]) Start(h int) int { return m.Halfedges.items[h].Start }

// End returns the vertex halfedge h points to.
func (m *Mesh[V, E, F]) End(h int) int { return m.Halfedges.items[m.Halfedges.items[h].Twin].Start }

// Twin returns the opposite halfedge of h.
func (m *Mesh[V, E, F]) Twin(h int) int { return m.Halfedges.items[h].Twin }

// Next returns the halfedge following h around its face.
func (m *Mesh[V, E, F]) Next(h int) int { return m.Halfedges.items[h].Next }

// Prev returns the halfedge preceding h around its face.
func (m *Mesh[V, E, F]) Prev(h int) int { return m.Halfedges.items[h].Prev }

// FaceOf returns the face to the left of h, None on the boundary.
func (m *Mesh[V, E, F]) FaceOf(h int) int { return m.Halfedges.items[h].Face }

// First returns the first halfedge of face f.
func (m *Mesh[V, E, F]) First(f int) int { return m.Faces.items[f].First }

// Outgoing returns the outgoing halfedge of vertex v.
func (m *Mesh[V, E, F]) Outgoing(v int) int { return m.Vertices.items[v].Outgoing }

// VertexAttr returns a pointer to the attribute of vertex v.
func (m *Mesh[V, E, F]) VertexAttr(v int) *V { return &m.Vertices.items[v].Attr }

// HalfedgeAttr returns a pointer to the attribute of halfedge h.
func (m *Mesh[V, E, F]) HalfedgeAttr(h int) *E { return &m.Halfedges.items[h].Attr }

// FaceAttr returns a pointer to the attribute of face f.
func (m *Mesh[V, E, F]) FaceAttr(f int) *F { return &m.Faces.items[f].Attr }

// AddVertex appends a vertex. It stays unused until an edge starts at it.
func (m *Mesh[V, E, F]) AddVertex(attr V) int {
	return m.Vertices.add(newVertex(attr))
}

// addPair appends two halfedges that are each other's twin.
func (m *Mesh[V, E, F]) addPair(u, v int) (int, int) {
	h := m.Halfedges.add(newHalfedge[E]())
	t := m.Halfedges.add(newHalfedge[E]())
	he, te := &m.Halfedges.items[h], &m.Halfedges.items[t]
	he.Start, he.Twin = u, t
	te.Start, te.Twin = v, h
	return h, t
}

func (m *Mesh[V, E, F]) addFace(attr F) int {
	return m.Faces.add(newFace(attr))
}

// link makes b follow a.
func (m *Mesh[V, E, F]) link(a, b int) {
	m.Halfedges.items[a].Next = b
	m.Halfedges.items[b].Prev = a
}

// setLoopFace assigns f to every halfedge of the loop through h.
func (m *Mesh[V, E, F]) setLoopFace(h, f int) {
	e := h
	for {
		m.Halfedges.items[e].Face = f
		e = m.Halfedges.items[e].Next
		if e == h {
			break
		}
	}
}

// setStarStart assigns v as the start of every halfedge in the star
// through h.
func (m *Mesh[V, E, F]) setStarStart(h, v int) {
	e := h
	for {
		m.Halfedges.items[e].Start = v
		e = m.Next(m.Twin(e))
		if e == h {
			break
		}
	}
}

// fixOutgoing points v at a boundary halfedge of its star if there is one.
func (m *Mesh[V, E, F]) fixOutgoing(v int) {
	o := m.Vertices.items[v].Outgoing
	if o == None {
		return
	}
	e := o
	for {
		if m.FaceOf(e) == None {
			m.Vertices.items[v].Outgoing = e
			return
		}
		e = m.Next(m.Twin(e))
		if e == o {
			return
		}
	}
}

func (m *Mesh[V, E, F]) checkVertex(v int) error {
	if !m.Vertices.Contains(v) {
		return fmt.Errorf("vertex %d: %w", v, ErrNotOwned)
	}
	if m.Vertices.items[v].Unused() {
		return fmt.Errorf("vertex %d: %w", v, ErrUnused)
	}
	return nil
}

func (m *Mesh[V, E, F]) checkHalfedge(h int) error {
	if !m.Halfedges.Contains(h) {
		return fmt.Errorf("halfedge %d: %w", h, ErrNotOwned)
	}
	if m.Halfedges.items[h].Unused() {
		return fmt.Errorf("halfedge %d: %w", h, ErrUnused)
	}
	return nil
}

func (m *Mesh[V, E, F]) checkFace(f int) error {
	if !m.Faces.Contains(f) {
		return fmt.Errorf("face %d: %w", f, ErrNotOwned)
	}
	if m.Faces.items[f].Unused() {
		return fmt.Errorf("face %d: %w", f, ErrUnused)
	}
	return nil
}

// RemoveFace marks face f unused and turns its loop into boundary. Edges
// left without a face on either side are removed, and vertices left
// without edges become unused.
func (m *Mesh[V, E, F]) RemoveFace(f int) error {
	if err := m.checkFace(f); err != nil {
		return err
	}

	var loop []int
	for h := range m.FaceLoop(m.First(f)) {
		loop = append(loop, h)
	}
	for _, h := range loop {
		m.Halfedges.items[h].Face = None
	}

	starts := make([]int, len(loop))
	for i, h := range loop {
		starts[i] = m.Start(h)
		if m.FaceOf(m.Twin(h)) == None {
			m.removeEdge(h)
		}
	}
	for _, v := range starts {
		m.fixOutgoing(v)
	}

	m.Faces.items[f].First = None
	return nil
}

// removeEdge unlinks a halfedge pair whose sides are both boundary.
func (m *Mesh[V, E, F]) removeEdge(h int) {
	t := m.Twin(h)
	u, w := m.Start(h), m.Start(t)
	ph, nh := m.Prev(h), m.Next(h)
	pt, nt := m.Prev(t), m.Next(t)

	if nt == h {
		m.Vertices.items[u].Outgoing = None
	} else {
		m.link(ph, nt)
		if m.Outgoing(u) == h {
			m.Vertices.items[u].Outgoing = nt
		}
	}
	if nh == t {
		m.Vertices.items[w].Outgoing = None
	} else {
		m.link(pt, nh)
		if m.Outgoing(w) == t {
			m.Vertices.items[w].Outgoing = nh
		}
	}

	for _, e := range [2]int{h, t} {
		he := &m.Halfedges.items[e]
		he.Start, he.Next, he.Prev, he.Face = None, None, None, None
	}
}

// Remap holds the old-to-new index maps produced by Compact.
type Remap struct {
	Vertices  []int
	Halfedges []int
	Faces     []int
}

// Compact drops every unused element and rewrites all handles. Calling it
// again on a compact mesh changes nothing.
func (m *Mesh[V, E, F]) Compact() Remap {
	r := Remap{
		Vertices:  m.Vertices.Compact(),
		Halfedges: m.Halfedges.Compact(),
		Faces:     m.Faces.Compact(),
	}

	for i := range m.Vertices.items {
		v := &m.Vertices.items[i]
		v.Outgoing = remapHandle(r.Halfedges, v.Outgoing)
	}
	for i := range m.Halfedges.items {
		h := &m.Halfedges.items[i]
		h.Start = remapHandle(r.Vertices, h.Start)
		h.Twin = remapHandle(r.Halfedges, h.Twin)
		h.Next = remapHandle(r.Halfedges, h.Next)
		h.Prev = remapHandle(r.Halfedges, h.Prev)
		h.Face = remapHandle(r.Faces, h.Face)
	}
	for i := range m.Faces.items {
		f := &m.Faces.items[i]
		f.First = remapHandle(r.Halfedges, f.First)
	}
	return r
}

func remapHandle(remap []int, h int) int {
	if h == None {
		return None
	}
	return remap[h]
}

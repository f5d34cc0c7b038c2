package halfedge

// Handle locates an element inside one of the meshes returned by
// ConnectedComponents.
type Handle struct {
	Component int
	Index     int
}

// Components is the result of ConnectedComponents. The handle slices are
// parallel to the source mesh's lists; unused source elements map to
// Handle{None, None}.
type Components[V, E, F any] struct {
	Meshes    []*Mesh[V, E, F]
	Vertices  []Handle
	Halfedges []Handle
	Faces     []Handle
}

// ConnectedComponents splits the mesh into one mesh per edge-connected
// piece. Elements keep their relative order inside each piece. The
// source mesh is only touched through its vertex tags.
func (m *Mesh[V, E, F]) ConnectedComponents(c Copier[V, E, F]) *Components[V, E, F] {
	nv, nh, nf := len(m.Vertices.items), len(m.Halfedges.items), len(m.Faces.items)
	vc := make([]int, nv)
	for i := range vc {
		vc[i] = None
	}

	tag := m.Vertices.NextTag()
	ncomp := 0
	var queue []int
	for v := range nv {
		if m.Vertices.items[v].Unused() || !m.Vertices.Visit(v, tag) {
			continue
		}
		queue = append(queue[:0], v)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			vc[u] = ncomp
			for w := range m.ConnectedVertices(u) {
				if m.Vertices.Visit(w, tag) {
					queue = append(queue, w)
				}
			}
		}
		ncomp++
	}

	res := &Components[V, E, F]{
		Meshes:    make([]*Mesh[V, E, F], ncomp),
		Vertices:  make([]Handle, nv),
		Halfedges: make([]Handle, nh),
		Faces:     make([]Handle, nf),
	}
	for i := range res.Meshes {
		res.Meshes[i] = New[V, E, F]()
	}

	place := func(handles []Handle, i, comp int, next []int) {
		if comp == None {
			handles[i] = Handle{None, None}
			return
		}
		handles[i] = Handle{comp, next[comp]}
		next[comp]++
	}
	next := make([]int, ncomp)
	for v := range nv {
		place(res.Vertices, v, vc[v], next)
	}
	clear(next)
	for h := range nh {
		comp := None
		if !m.Halfedges.items[h].Unused() {
			comp = vc[m.Start(h)]
		}
		place(res.Halfedges, h, comp, next)
	}
	clear(next)
	for f := range nf {
		comp := None
		if !m.Faces.items[f].Unused() {
			comp = vc[m.Start(m.First(f))]
		}
		place(res.Faces, f, comp, next)
	}

	index := func(handles []Handle, i int) int {
		if i == None {
			return None
		}
		return handles[i].Index
	}
	for v := range nv {
		if vc[v] == None {
			continue
		}
		d := res.Meshes[vc[v]]
		src := &m.Vertices.items[v]
		i := d.Vertices.add(Vertex[V]{Outgoing: index(res.Halfedges, src.Outgoing)})
		c.vertex(&d.Vertices.items[i].Attr, &src.Attr)
	}
	for h := range nh {
		hc := res.Halfedges[h].Component
		if hc == None {
			continue
		}
		d := res.Meshes[hc]
		src := &m.Halfedges.items[h]
		i := d.Halfedges.add(Halfedge[E]{
			Start: index(res.Vertices, src.Start),
			Twin:  index(res.Halfedges, src.Twin),
			Next:  index(res.Halfedges, src.Next),
			Prev:  index(res.Halfedges, src.Prev),
			Face:  index(res.Faces, src.Face),
		})
		c.halfedge(&d.Halfedges.items[i].Attr, &src.Attr)
	}
	for f := range nf {
		fc := res.Faces[f].Component
		if fc == None {
			continue
		}
		d := res.Meshes[fc]
		src := &m.Faces.items[f]
		i := d.Faces.add(Face[F]{First: index(res.Halfedges, src.First)})
		c.face(&d.Faces.items[i].Attr, &src.Attr)
	}
	return res
}

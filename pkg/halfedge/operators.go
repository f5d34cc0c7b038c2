package halfedge

import "fmt"

// SplitFace divides the face of a and b with a new edge from Start(a) to
// Start(b). The new halfedge x runs Start(a)->Start(b) and stays on the
// original face together with b; its twin starts a new face that takes a.
// The new face copies the original face's attribute. x is returned, so a
// caller can keep walking the retained loop from it.
//
// a and b must be distinct, non-consecutive halfedges of the same face,
// and their start vertices must not already share an edge.
func (m *Mesh[V, E, F]) SplitFace(a, b int) (int, error) {
	if err := m.checkHalfedge(a); err != nil {
		return None, err
	}
	if err := m.checkHalfedge(b); err != nil {
		return None, err
	}
	f := m.FaceOf(a)
	if f == None {
		return None, fmt.Errorf("split face at halfedge %d: %w", a, ErrBoundary)
	}
	if m.FaceOf(b) != f {
		return None, fmt.Errorf("split face: halfedges %d and %d are on different faces: %w", a, b, ErrTopology)
	}
	if a == b || m.Next(a) == b || m.Next(b) == a {
		return None, fmt.Errorf("split face: halfedges %d and %d are adjacent: %w", a, b, ErrTopology)
	}
	u, w := m.Start(a), m.Start(b)
	if u == w || m.FindHalfedge(u, w) != None {
		return None, fmt.Errorf("split face: vertices %d and %d already joined: %w", u, w, ErrTopology)
	}

	pa, pb := m.Prev(a), m.Prev(b)
	x, y := m.addPair(u, w)
	g := m.addFace(m.Faces.items[f].Attr)

	m.link(pa, x)
	m.link(x, b)
	m.link(pb, y)
	m.link(y, a)

	m.Halfedges.items[x].Face = f
	m.Faces.items[f].First = x
	m.setLoopFace(y, g)
	m.Faces.items[g].First = y
	return x, nil
}

// DetachEdge cuts the mesh open along the interior edge of h. Both h and
// its former twin get a new boundary twin. An endpoint that was already on
// the boundary has its star split, and a new vertex copying the original's
// attribute takes the half of the star on the former twin's side; an
// interior endpoint just becomes a boundary vertex. The returned halfedge
// is the new one running parallel to h.
func (m *Mesh[V, E, F]) DetachEdge(h int) (int, error) {
	if err := m.checkHalfedge(h); err != nil {
		return None, err
	}
	if m.IsBoundaryHalfedge(h) {
		return None, fmt.Errorf("detach edge %d: %w", h, ErrBoundary)
	}

	t := m.Twin(h)
	u, w := m.Start(h), m.Start(t)
	uBoundary, wBoundary := m.IsBoundaryVertex(u), m.IsBoundaryVertex(w)

	// Boundary halfedges bounding the fans of h at u and of t at w.
	var inU, outU, inW, outW int
	if uBoundary {
		outU = m.fanBoundary(h)
		inU = m.Prev(outU)
	}
	if wBoundary {
		outW = m.fanBoundary(t)
		inW = m.Prev(outW)
	}

	n1, n2 := m.addPair(w, u)
	m.Halfedges.items[h].Twin, m.Halfedges.items[n1].Twin = n1, h
	m.Halfedges.items[t].Twin, m.Halfedges.items[n2].Twin = n2, t

	if uBoundary {
		m.link(n1, outU)
		m.link(inU, n2)
	} else {
		m.link(n1, n2)
		m.Vertices.items[u].Outgoing = n2
	}
	if wBoundary {
		m.link(n2, outW)
		m.link(inW, n1)
	} else {
		m.link(n2, n1)
		m.Vertices.items[w].Outgoing = n1
	}

	if uBoundary {
		u2 := m.AddVertex(m.Vertices.items[u].Attr)
		m.setStarStart(n2, u2)
		m.Vertices.items[u2].Outgoing = n2
	}
	if wBoundary {
		w2 := m.AddVertex(m.Vertices.items[w].Attr)
		m.setStarStart(n1, w2)
		m.Vertices.items[w2].Outgoing = n1
	}
	return n2, nil
}

// fanBoundary walks backwards around Start(h) from h to the boundary
// halfedge that opens its fan. The vertex must be on the boundary.
func (m *Mesh[V, E, F]) fanBoundary(h int) int {
	o := h
	for m.FaceOf(o) != None {
		o = m.Twin(m.Prev(o))
	}
	return o
}

// AddEdgeBetween inserts a free edge from u to v. Each endpoint must be
// isolated or on the boundary, and the edge must not exist yet. The new
// edge is linked into the boundary loops at both ends and the halfedge
// running u->v is returned.
func (m *Mesh[V, E, F]) AddEdgeBetween(u, v int) (int, error) {
	for _, x := range [2]int{u, v} {
		if !m.Vertices.Contains(x) {
			return None, fmt.Errorf("add edge: vertex %d: %w", x, ErrNotOwned)
		}
		if m.Outgoing(x) != None && !m.IsBoundaryVertex(x) {
			return None, fmt.Errorf("add edge: vertex %d is interior: %w", x, ErrTopology)
		}
	}
	if u == v {
		return None, fmt.Errorf("add edge: loop at vertex %d: %w", u, ErrTopology)
	}
	if m.FindHalfedge(u, v) != None {
		return None, fmt.Errorf("add edge: %d->%d already exists: %w", u, v, ErrTopology)
	}

	h, t := m.addPair(u, v)
	if out := m.Outgoing(u); out == None {
		m.link(t, h)
	} else {
		m.link(m.Prev(out), h)
		m.link(t, out)
	}
	if out := m.Outgoing(v); out == None {
		m.link(h, t)
	} else {
		m.link(m.Prev(out), t)
		m.link(h, out)
	}
	m.Vertices.items[u].Outgoing = h
	m.Vertices.items[v].Outgoing = t
	return h, nil
}

// FindHalfedge returns the halfedge running from u to v, or None.
func (m *Mesh[V, E, F]) FindHalfedge(u, v int) int {
	for h := range m.OutgoingHalfedges(u) {
		if m.End(h) == v {
			return h
		}
	}
	return None
}

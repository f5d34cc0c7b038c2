package halfedge

// IsBoundaryHalfedge reports whether h or its twin has no face.
func (m *Mesh[V, E, F]) IsBoundaryHalfedge(h int) bool {
	return m.FaceOf(h) == None || m.FaceOf(m.Twin(h)) == None
}

// IsBoundaryVertex reports whether v lies on the boundary. It relies on
// boundary vertices pointing at a boundary halfedge.
func (m *Mesh[V, E, F]) IsBoundaryVertex(v int) bool {
	o := m.Outgoing(v)
	return o != None && m.FaceOf(o) == None
}

// IsBoundaryFace reports whether any edge of f lies on the boundary.
func (m *Mesh[V, E, F]) IsBoundaryFace(f int) bool {
	for h := range m.FaceHalfedges(f) {
		if m.FaceOf(m.Twin(h)) == None {
			return true
		}
	}
	return false
}

// IsDegree1 reports whether v has exactly one edge.
func (m *Mesh[V, E, F]) IsDegree1(v int) bool {
	o := m.Outgoing(v)
	return o != None && m.Next(m.Twin(o)) == o
}

// IsDegree2 reports whether v has exactly two edges.
func (m *Mesh[V, E, F]) IsDegree2(v int) bool {
	o := m.Outgoing(v)
	if o == None {
		return false
	}
	e := m.Next(m.Twin(o))
	return e != o && m.Next(m.Twin(e)) == o
}

// IsDegree3 reports whether v has exactly three edges.
func (m *Mesh[V, E, F]) IsDegree3(v int) bool {
	o := m.Outgoing(v)
	if o == None {
		return false
	}
	e1 := m.Next(m.Twin(o))
	if e1 == o {
		return false
	}
	e2 := m.Next(m.Twin(e1))
	return e2 != o && m.Next(m.Twin(e2)) == o
}

// IsTriangle reports whether the loop through h has three halfedges.
func (m *Mesh[V, E, F]) IsTriangle(h int) bool {
	n := m.Next(h)
	return n != h && m.Next(n) != h && m.Prev(m.Prev(h)) == m.Next(h)
}

// IsQuad reports whether the loop through h has four halfedges.
func (m *Mesh[V, E, F]) IsQuad(h int) bool {
	n := m.Next(h)
	return n != h && m.Next(n) != h && !m.IsTriangle(h) && m.Next(m.Next(n)) == m.Prev(h)
}

package halfedge

import "iter"

// FaceLoop yields the halfedges of the loop through h, starting at h and
// following Next.
func (m *Mesh[V, E, F]) FaceLoop(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		e := h
		for {
			if !yield(e) {
				return
			}
			e = m.Halfedges.items[e].Next
			if e == h {
				return
			}
		}
	}
}

// FaceLoopReverse yields the loop through h following Prev.
func (m *Mesh[V, E, F]) FaceLoopReverse(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		e := h
		for {
			if !yield(e) {
				return
			}
			e = m.Halfedges.items[e].Prev
			if e == h {
				return
			}
		}
	}
}

// FaceHalfedges yields the halfedges of face f starting at its first.
func (m *Mesh[V, E, F]) FaceHalfedges(f int) iter.Seq[int] {
	return m.FaceLoop(m.First(f))
}

// FaceVertices yields the vertices of face f in loop order.
func (m *Mesh[V, E, F]) FaceVertices(f int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := range m.FaceLoop(m.First(f)) {
			if !yield(m.Start(h)) {
				return
			}
		}
	}
}

// AdjacentFaces yields the faces across the edges of face f, skipping the
// boundary.
func (m *Mesh[V, E, F]) AdjacentFaces(f int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := range m.FaceLoop(m.First(f)) {
			g := m.FaceOf(m.Twin(h))
			if g == None {
				continue
			}
			if !yield(g) {
				return
			}
		}
	}
}

// Star yields the halfedges leaving Start(h), beginning with h and moving
// to Next(Twin(e)) each step.
func (m *Mesh[V, E, F]) Star(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		e := h
		for {
			if !yield(e) {
				return
			}
			e = m.Next(m.Twin(e))
			if e == h {
				return
			}
		}
	}
}

// OutgoingHalfedges yields the halfedges starting at v.
func (m *Mesh[V, E, F]) OutgoingHalfedges(v int) iter.Seq[int] {
	o := m.Outgoing(v)
	if o == None {
		return func(func(int) bool) {}
	}
	return m.Star(o)
}

// IncomingHalfedges yields the halfedges ending at v.
func (m *Mesh[V, E, F]) IncomingHalfedges(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := range m.OutgoingHalfedges(v) {
			if !yield(m.Twin(h)) {
				return
			}
		}
	}
}

// ConnectedVertices yields the vertices sharing an edge with v.
func (m *Mesh[V, E, F]) ConnectedVertices(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := range m.OutgoingHalfedges(v) {
			if !yield(m.End(h)) {
				return
			}
		}
	}
}

// SurroundingFaces yields the faces around v in star order, skipping the
// boundary.
func (m *Mesh[V, E, F]) SurroundingFaces(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := range m.OutgoingHalfedges(v) {
			f := m.FaceOf(h)
			if f == None {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// LoopLength counts the halfedges in the loop through h.
func (m *Mesh[V, E, F]) LoopLength(h int) int {
	n := 0
	for range m.FaceLoop(h) {
		n++
	}
	return n
}

// Degree returns the number of edges at vertex v.
func (m *Mesh[V, E, F]) Degree(v int) int {
	n := 0
	for range m.OutgoingHalfedges(v) {
		n++
	}
	return n
}

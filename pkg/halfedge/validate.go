package halfedge

import "fmt"

// Validate checks every structural invariant of the mesh and returns the
// first violation found, wrapped around ErrTopology.
//
// Two edges may join the same pair of vertices only when both lie on the
// boundary, as they do after DetachEdge.
func (m *Mesh[V, E, F]) Validate() error {
	nh := len(m.Halfedges.items)

	for h := range m.Halfedges.items {
		e := &m.Halfedges.items[h]
		if e.Unused() {
			if e.Twin != None && m.Halfedges.Contains(e.Twin) && !m.Halfedges.items[e.Twin].Unused() {
				return topologyf("halfedge %d is unused but its twin %d is not", h, e.Twin)
			}
			continue
		}
		for _, r := range [3]int{e.Twin, e.Next, e.Prev} {
			if !m.Halfedges.Used(r) {
				return topologyf("halfedge %d refers to missing halfedge %d", h, r)
			}
		}
		if !m.Vertices.Used(e.Start) {
			return topologyf("halfedge %d starts at missing vertex %d", h, e.Start)
		}
		if e.Face != None && !m.Faces.Used(e.Face) {
			return topologyf("halfedge %d refers to missing face %d", h, e.Face)
		}
		if e.Twin == h || m.Twin(e.Twin) != h {
			return topologyf("halfedge %d: twin %d is not reciprocal", h, e.Twin)
		}
		if m.Prev(e.Next) != h || m.Next(e.Prev) != h {
			return topologyf("halfedge %d: next/prev not reciprocal", h)
		}
		if m.Start(e.Next) != m.End(h) {
			return topologyf("halfedge %d: next starts at %d, want %d", h, m.Start(e.Next), m.End(h))
		}
		if m.FaceOf(e.Next) != e.Face {
			return topologyf("halfedge %d: next lies on face %d, want %d", h, m.FaceOf(e.Next), e.Face)
		}
		if m.End(h) == e.Start {
			return topologyf("halfedge %d is a loop at vertex %d", h, e.Start)
		}
	}

	for f := range m.Faces.items {
		if m.Faces.items[f].Unused() {
			continue
		}
		first := m.First(f)
		if !m.Halfedges.Used(first) || m.FaceOf(first) != f {
			return topologyf("face %d: first halfedge %d is not on the face", f, first)
		}
		n := 0
		for range m.FaceLoop(first) {
			if n++; n > nh {
				return topologyf("face %d: loop does not close", f)
			}
		}
		if n < 3 {
			return topologyf("face %d has %d sides", f, n)
		}
	}

	tag := m.Halfedges.NextTag()
	ends := make(map[int]int)
	for v := range m.Vertices.items {
		o := m.Vertices.items[v].Outgoing
		if o == None {
			continue
		}
		if !m.Halfedges.Used(o) || m.Start(o) != v {
			return topologyf("vertex %d: outgoing halfedge %d does not start there", v, o)
		}
		n, boundary := 0, false
		clear(ends)
		for h := range m.Star(o) {
			if n++; n > nh {
				return topologyf("vertex %d: star does not close", v)
			}
			if m.Start(h) != v {
				return topologyf("vertex %d: star halfedge %d starts at %d", v, h, m.Start(h))
			}
			if m.FaceOf(h) == None {
				boundary = true
			}
			if p, ok := ends[m.End(h)]; ok && !(m.IsBoundaryHalfedge(p) && m.IsBoundaryHalfedge(h)) {
				return topologyf("vertex %d: halfedges %d and %d both end at %d", v, p, h, m.End(h))
			}
			ends[m.End(h)] = h
			m.Halfedges.SetTag(h, tag)
		}
		if boundary && m.FaceOf(o) != None {
			return topologyf("boundary vertex %d points at interior halfedge %d", v, o)
		}
	}
	for h := range m.Halfedges.items {
		if !m.Halfedges.items[h].Unused() && !m.Halfedges.Tagged(h, tag) {
			return topologyf("halfedge %d is not in the star of vertex %d", h, m.Start(h))
		}
	}
	return nil
}

func topologyf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrTopology)...)
}

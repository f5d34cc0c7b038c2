package halfedge

import "fmt"

// Dual builds the dual mesh. Used face f becomes dual vertex i, where i
// counts the used faces before f, with attribute vertexOf(f). Every
// interior vertex v becomes a dual face with attribute faceOf(v), wound
// the same way as the primal faces. Interior edges that no dual face
// covers, such as those around degree-2 vertices or along the boundary,
// are added as free dual edges. Dual vertices left without edges stay
// unused.
func (m *Mesh[V, E, F]) Dual(vertexOf func(f int) V, faceOf func(v int) F) (*Mesh[V, E, F], error) {
	dv := make([]int, len(m.Faces.items))
	var verts []V
	for f := range m.Faces.items {
		dv[f] = None
		if m.Faces.items[f].Unused() {
			continue
		}
		dv[f] = len(verts)
		verts = append(verts, vertexOf(f))
	}

	var polys [][]int
	var owners []int
	for v := range m.Vertices.items {
		if m.Vertices.items[v].Unused() || m.IsBoundaryVertex(v) {
			continue
		}
		var poly []int
		for f := range m.SurroundingFaces(v) {
			poly = append(poly, dv[f])
		}
		if len(poly) < 3 {
			continue
		}
		// The star runs clockwise around v.
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
		polys = append(polys, poly)
		owners = append(owners, v)
	}

	d, err := FromPolygons[V, E, F](verts, polys)
	if err != nil {
		return nil, fmt.Errorf("dual: %w", err)
	}
	for i, v := range owners {
		d.Faces.items[i].Attr = faceOf(v)
	}

	for h := range m.Halfedges.items {
		t := m.Halfedges.items[h].Twin
		if m.Halfedges.items[h].Unused() || t < h || m.IsBoundaryHalfedge(h) {
			continue
		}
		a, b := dv[m.FaceOf(h)], dv[m.FaceOf(t)]
		if a == b || d.FindHalfedge(a, b) != None {
			continue
		}
		if _, err := d.AddEdgeBetween(a, b); err != nil {
			return nil, fmt.Errorf("dual edge of halfedge %d: %w", h, err)
		}
	}
	return d, nil
}

package halfedge

import "fmt"

// FromPolygons builds a mesh from a polygon soup. Each polygon lists
// vertex indices in counter-clockwise order; face i of the result is
// polygons[i]. Twins are matched by shared directed edges and boundary
// loops are linked around each vertex fan. Vertices no polygon refers to
// stay unused.
func FromPolygons[V, E, F any](vertices []V, polygons [][]int) (*Mesh[V, E, F], error) {
	nedges, err := validatePolygons(len(vertices), polygons)
	if err != nil {
		return nil, err
	}

	m := NewWithCapacity[V, E, F](len(vertices), 2*nedges, len(polygons))
	for _, v := range vertices {
		m.AddVertex(v)
	}

	edges := make(map[[2]int]int, 2*nedges)
	loop := make([]int, 0, 8)
	for _, poly := range polygons {
		f := m.addFace(*new(F))
		loop = loop[:0]
		for i, u := range poly {
			v := poly[(i+1)%len(poly)]
			h, ok := edges[[2]int{u, v}]
			if !ok {
				var t int
				h, t = m.addPair(u, v)
				edges[[2]int{u, v}] = h
				edges[[2]int{v, u}] = t
			}
			m.Halfedges.items[h].Face = f
			loop = append(loop, h)
		}
		for i, h := range loop {
			m.link(h, loop[(i+1)%len(loop)])
		}
		m.Faces.items[f].First = loop[0]
	}

	// Link each boundary halfedge to the boundary halfedge leaving the far
	// side of its end vertex's fan.
	for b := range m.Halfedges.items {
		if m.FaceOf(b) != None {
			continue
		}
		y := m.Twin(b)
		for m.FaceOf(y) != None {
			y = m.Twin(m.Prev(y))
		}
		m.link(b, y)
	}

	for h := range m.Halfedges.items {
		v := &m.Vertices.items[m.Start(h)]
		if v.Outgoing == None || m.FaceOf(h) == None {
			v.Outgoing = h
		}
	}
	return m, nil
}

// validatePolygons checks a polygon soup and returns its edge count.
func validatePolygons(nverts int, polygons [][]int) (int, error) {
	directed := make(map[[2]int]struct{})
	for i, poly := range polygons {
		if len(poly) < 3 {
			return 0, fmt.Errorf("polygon %d has %d vertices: %w", i, len(poly), ErrTopology)
		}
		seen := make(map[int]struct{}, len(poly))
		for j, u := range poly {
			if u < 0 || u >= nverts {
				return 0, fmt.Errorf("polygon %d refers to vertex %d: %w", i, u, ErrNotOwned)
			}
			if _, dup := seen[u]; dup {
				return 0, fmt.Errorf("polygon %d repeats vertex %d: %w", i, u, ErrTopology)
			}
			seen[u] = struct{}{}

			key := [2]int{u, poly[(j+1)%len(poly)]}
			if _, dup := directed[key]; dup {
				return 0, fmt.Errorf("polygon %d repeats directed edge %d->%d: %w", i, key[0], key[1], ErrTopology)
			}
			directed[key] = struct{}{}
		}
	}

	n := 0
	for key := range directed {
		if _, ok := directed[[2]int{key[1], key[0]}]; !ok || key[0] < key[1] {
			n++
		}
	}
	return n, nil
}

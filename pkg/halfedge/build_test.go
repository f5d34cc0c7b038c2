package halfedge

import (
	"errors"
	"slices"
	"testing"
)

func TestFromPolygonsCounts(t *testing.T) {
	tests := []struct {
		name string
		mesh func(*testing.T) *testMesh
		want Counts
	}{
		{"tetrahedron", tetrahedron, Counts{Vertices: 4, Halfedges: 12, Faces: 4}},
		{"grid", grid, Counts{Vertices: 9, Halfedges: 24, Faces: 4}},
		{"hexagon", hexagon, Counts{Vertices: 6, Halfedges: 12, Faces: 1}},
		{"bipyramid", bipyramid, Counts{Vertices: 5, Halfedges: 18, Faces: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh(t).Counts(); got != tt.want {
				t.Errorf("Counts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromPolygonsBoundary(t *testing.T) {
	m := grid(t)
	for v := range 9 {
		want := v != 4
		if got := m.IsBoundaryVertex(v); got != want {
			t.Errorf("IsBoundaryVertex(%d) = %v, want %v", v, got, want)
		}
	}
	if got := m.Degree(4); got != 4 {
		t.Errorf("Degree(4) = %d, want 4", got)
	}
	if got := m.Degree(0); got != 2 {
		t.Errorf("Degree(0) = %d, want 2", got)
	}

	for f := range 4 {
		if !m.IsBoundaryFace(f) {
			t.Errorf("IsBoundaryFace(%d) = false, want true", f)
		}
	}

	tet := tetrahedron(t)
	for h := range tet.Halfedges.All() {
		if tet.IsBoundaryHalfedge(h) {
			t.Errorf("tetrahedron halfedge %d is boundary", h)
		}
	}
}

func TestFromPolygonsErrors(t *testing.T) {
	tests := []struct {
		name     string
		polygons [][]int
		want     error
	}{
		{"too few vertices", [][]int{{0, 1}}, ErrTopology},
		{"out of range", [][]int{{0, 1, 7}}, ErrNotOwned},
		{"repeated vertex", [][]int{{0, 1, 0, 2}}, ErrTopology},
		{"duplicate directed edge", [][]int{{0, 1, 2}, {0, 1, 3}}, ErrTopology},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPolygons[int, struct{}, int](ids(4), tt.polygons)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromPolygons() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromPolygonsUnreferencedVertex(t *testing.T) {
	m, err := FromPolygons[int, struct{}, int](ids(4), [][]int{{0, 1, 2}})
	if err != nil {
		t.Fatalf("FromPolygons() error = %v", err)
	}
	if m.Vertices.Used(3) {
		t.Error("unreferenced vertex 3 is used")
	}
	mustValidate(t, m)
}

func TestCirculators(t *testing.T) {
	m := hexagon(t)
	if got := collect(m.FaceVertices(0)); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("FaceVertices(0) = %v, want [0 1 2 3 4 5]", got)
	}
	first := m.First(0)
	if got := m.LoopLength(first); got != 6 {
		t.Errorf("LoopLength() = %d, want 6", got)
	}
	rev := collect(m.FaceLoopReverse(first))
	if len(rev) != 6 || rev[1] != m.Prev(first) {
		t.Errorf("FaceLoopReverse() = %v", rev)
	}
	if m.IsTriangle(first) || m.IsQuad(first) {
		t.Error("hexagon reported as triangle or quad")
	}

	tet := tetrahedron(t)
	for v := range 4 {
		if !tet.IsDegree3(v) {
			t.Errorf("IsDegree3(%d) = false", v)
		}
		if tet.IsDegree2(v) || tet.IsDegree1(v) {
			t.Errorf("vertex %d reported with degree below 3", v)
		}
		if got := len(collect(tet.SurroundingFaces(v))); got != 3 {
			t.Errorf("SurroundingFaces(%d) yielded %d faces, want 3", v, got)
		}
		for w := range tet.ConnectedVertices(v) {
			if w == v {
				t.Errorf("ConnectedVertices(%d) yielded itself", v)
			}
		}
		for h := range tet.IncomingHalfedges(v) {
			if tet.End(h) != v {
				t.Errorf("IncomingHalfedges(%d) yielded %d ending at %d", v, h, tet.End(h))
			}
		}
	}
	for f := range 4 {
		if !tet.IsTriangle(tet.First(f)) {
			t.Errorf("IsTriangle(First(%d)) = false", f)
		}
		if got := len(collect(tet.AdjacentFaces(f))); got != 3 {
			t.Errorf("AdjacentFaces(%d) yielded %d, want 3", f, got)
		}
	}

	g := grid(t)
	if !g.IsQuad(g.First(0)) {
		t.Error("grid face 0 is not a quad")
	}
	h := g.FindHalfedge(4, 5)
	star := collect(g.VertexNeighborsFrom(h))
	if len(star) != 4 || star[0] != h {
		t.Errorf("VertexNeighborsFrom() = %v, want 4 halfedges from %d", star, h)
	}
}

func TestDegreeOneAndTwo(t *testing.T) {
	m := New[int, struct{}, int]()
	a, b, c := m.AddVertex(0), m.AddVertex(1), m.AddVertex(2)
	if _, err := m.AddEdgeBetween(a, b); err != nil {
		t.Fatalf("AddEdgeBetween() error = %v", err)
	}
	if !m.IsDegree1(a) {
		t.Error("IsDegree1(a) = false")
	}
	if _, err := m.AddEdgeBetween(b, c); err != nil {
		t.Fatalf("AddEdgeBetween() error = %v", err)
	}
	if !m.IsDegree2(b) || m.IsDegree1(b) || m.IsDegree3(b) {
		t.Errorf("degree predicates for b wrong, Degree() = %d", m.Degree(b))
	}
	mustValidate(t, m)

	if _, err := m.AddEdgeBetween(a, b); !errors.Is(err, ErrTopology) {
		t.Errorf("AddEdgeBetween() on existing edge error = %v, want %v", err, ErrTopology)
	}
	if _, err := m.AddEdgeBetween(a, a); !errors.Is(err, ErrTopology) {
		t.Errorf("AddEdgeBetween() loop error = %v, want %v", err, ErrTopology)
	}
}

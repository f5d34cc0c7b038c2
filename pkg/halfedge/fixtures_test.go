package halfedge

import "testing"

type testMesh = Mesh[int, struct{}, int]

func ids(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

func build(t *testing.T, nverts int, polygons [][]int) *testMesh {
	t.Helper()
	m, err := FromPolygons[int, struct{}, int](ids(nverts), polygons)
	if err != nil {
		t.Fatalf("FromPolygons() error = %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() after FromPolygons error = %v", err)
	}
	return m
}

func tetrahedron(t *testing.T) *testMesh {
	return build(t, 4, [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}})
}

// grid is a 2x2 block of quads over a 3x3 vertex lattice; vertex 4 is the
// only interior one.
func grid(t *testing.T) *testMesh {
	return build(t, 9, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{3, 4, 7, 6},
		{4, 5, 8, 7},
	})
}

func hexagon(t *testing.T) *testMesh {
	return build(t, 6, [][]int{{0, 1, 2, 3, 4, 5}})
}

// bipyramid is a triangular bipyramid: equator 0..2, apexes 3 and 4.
func bipyramid(t *testing.T) *testMesh {
	return build(t, 5, [][]int{
		{0, 1, 3}, {1, 2, 3}, {2, 0, 3},
		{1, 0, 4}, {2, 1, 4}, {0, 2, 4},
	})
}

func mustValidate(t *testing.T, m *testMesh) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func collect(seq func(func(int) bool)) []int {
	var out []int
	for x := range seq {
		out = append(out, x)
	}
	return out
}

package polymesh

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box returns an axis-aligned box centred on the origin.
func Box(size r3.Vec) (*Mesh, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("box size %v: %w", size, ErrShape)
	}
	points := make([]r3.Vec, 8)
	for i := range points {
		points[i] = r3.Vec{
			X: (float64(i&1) - 0.5) * size.X,
			Y: (float64(i>>1&1) - 0.5) * size.Y,
			Z: (float64(i>>2&1) - 0.5) * size.Z,
		}
	}
	return FromPolygons(points, [][]int{
		{0, 2, 3, 1},
		{4, 5, 7, 6},
		{0, 1, 5, 4},
		{2, 6, 7, 3},
		{0, 4, 6, 2},
		{1, 3, 7, 5},
	})
}

// Tetrahedron returns a regular tetrahedron centred on the origin.
func Tetrahedron(edge float64) (*Mesh, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("tetrahedron edge %v: %w", edge, ErrShape)
	}
	s := edge / (2 * gomath.Sqrt2)
	return FromPolygons([]r3.Vec{
		{X: s, Y: s, Z: s},
		{X: s, Y: -s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
	}, [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}})
}

// Bipyramid returns two n-sided pyramids joined at their base, which lies
// in the XY plane. The apexes are vertices n and n+1.
func Bipyramid(n int, radius, height float64) (*Mesh, error) {
	if n < 3 || radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("bipyramid n=%d radius=%v height=%v: %w", n, radius, height, ErrShape)
	}
	points := ring(n, radius)
	top, bottom := n, n+1
	points = append(points, r3.Vec{Z: height}, r3.Vec{Z: -height})

	polygons := make([][]int, 0, 2*n)
	for i := range n {
		j := (i + 1) % n
		polygons = append(polygons, []int{i, j, top}, []int{j, i, bottom})
	}
	return FromPolygons(points, polygons)
}

// Grid returns nx by ny quads covering [0, size.X] x [0, size.Y] in the XY
// plane. Vertex (i, j) has index j*(nx+1)+i.
func Grid(nx, ny int, size r3.Vec) (*Mesh, error) {
	if nx < 1 || ny < 1 || size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("grid %dx%d size %v: %w", nx, ny, size, ErrShape)
	}
	points := make([]r3.Vec, 0, (nx+1)*(ny+1))
	for j := range ny + 1 {
		for i := range nx + 1 {
			points = append(points, r3.Vec{
				X: size.X * float64(i) / float64(nx),
				Y: size.Y * float64(j) / float64(ny),
			})
		}
	}
	polygons := make([][]int, 0, nx*ny)
	row := nx + 1
	for j := range ny {
		for i := range nx {
			a := j*row + i
			polygons = append(polygons, []int{a, a + 1, a + row + 1, a + row})
		}
	}
	return FromPolygons(points, polygons)
}

// Ngon returns a single regular n-sided face in the XY plane.
func Ngon(n int, radius float64) (*Mesh, error) {
	if n < 3 || radius <= 0 {
		return nil, fmt.Errorf("ngon n=%d radius=%v: %w", n, radius, ErrShape)
	}
	poly := make([]int, n)
	for i := range poly {
		poly[i] = i
	}
	return FromPolygons(ring(n, radius), [][]int{poly})
}

// ring returns n points evenly spaced on a circle in the XY plane,
// counter-clockwise from the X axis.
func ring(n int, radius float64) []r3.Vec {
	points := make([]r3.Vec, n)
	for i := range points {
		s, c := gomath.Sincos(2 * gomath.Pi * float64(i) / float64(n))
		points[i] = r3.Vec{X: radius * c, Y: radius * s}
	}
	return points
}

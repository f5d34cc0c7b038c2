package polymesh

import (
	"errors"
	gomath "math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/math"
	"github.com/Faultbox/halfmesh/pkg/quad"
	"github.com/Faultbox/halfmesh/pkg/unroll"
)

const eps = 1e-9

func unitBox(t *testing.T) *Mesh {
	t.Helper()
	m, err := Box(r3.Vec{X: 1, Y: 1, Z: 1})
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	return m
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Mesh, error)
		want  halfedge.Counts
	}{
		{"box", func() (*Mesh, error) { return Box(r3.Vec{X: 1, Y: 2, Z: 3}) }, halfedge.Counts{Vertices: 8, Halfedges: 24, Faces: 6}},
		{"tetrahedron", func() (*Mesh, error) { return Tetrahedron(1) }, halfedge.Counts{Vertices: 4, Halfedges: 12, Faces: 4}},
		{"bipyramid", func() (*Mesh, error) { return Bipyramid(3, 1, 1) }, halfedge.Counts{Vertices: 5, Halfedges: 18, Faces: 6}},
		{"grid", func() (*Mesh, error) { return Grid(3, 2, r3.Vec{X: 3, Y: 2}) }, halfedge.Counts{Vertices: 12, Halfedges: 34, Faces: 6}},
		{"ngon", func() (*Mesh, error) { return Ngon(7, 1) }, halfedge.Counts{Vertices: 7, Halfedges: 14, Faces: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if err := m.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got := m.Counts(); got != tt.want {
				t.Errorf("Counts() = %v, want %v", got, tt.want)
			}
			for v, a := range m.Vertices.All() {
				if l := r3.Norm(a.Attr.Normal); gomath.Abs(l-1) > eps {
					t.Errorf("vertex %d normal length = %v", v, l)
				}
			}
		})
	}
}

func TestPrimitiveErrors(t *testing.T) {
	builds := map[string]func() (*Mesh, error){
		"box":         func() (*Mesh, error) { return Box(r3.Vec{X: 1, Y: 0, Z: 1}) },
		"tetrahedron": func() (*Mesh, error) { return Tetrahedron(-1) },
		"bipyramid":   func() (*Mesh, error) { return Bipyramid(2, 1, 1) },
		"grid":        func() (*Mesh, error) { return Grid(0, 1, r3.Vec{X: 1, Y: 1}) },
		"ngon":        func() (*Mesh, error) { return Ngon(2, 1) },
	}
	for name, build := range builds {
		if _, err := build(); !errors.Is(err, ErrShape) {
			t.Errorf("%s: error = %v, want %v", name, err, ErrShape)
		}
	}
}

func TestClosedNormalsPointOutward(t *testing.T) {
	for _, build := range []func() (*Mesh, error){
		func() (*Mesh, error) { return Box(r3.Vec{X: 1, Y: 1, Z: 1}) },
		func() (*Mesh, error) { return Tetrahedron(2) },
		func() (*Mesh, error) { return Bipyramid(5, 1, 2) },
	} {
		m, err := build()
		if err != nil {
			t.Fatalf("build error = %v", err)
		}
		for f := range m.Faces.All() {
			if r3.Dot(FaceNormal(m, f), FaceCentroid(m, f)) <= 0 {
				t.Errorf("face %d normal points inward", f)
			}
		}
	}
}

func TestEdgeLengthsAndDihedrals(t *testing.T) {
	m := unitBox(t)
	lengths, err := EdgeLengths(m, Parallelism{Workers: 4, Grain: 3})
	if err != nil {
		t.Fatalf("EdgeLengths() error = %v", err)
	}
	for h, l := range lengths {
		if gomath.Abs(l-1) > eps {
			t.Errorf("edge %d length = %v, want 1", h, l)
		}
	}

	angles, err := DihedralAngles(m, Parallelism{})
	if err != nil {
		t.Fatalf("DihedralAngles() error = %v", err)
	}
	for h, a := range angles {
		if gomath.Abs(a-gomath.Pi/2) > eps {
			t.Errorf("dihedral at %d = %v, want pi/2", h, a)
		}
	}

	serial, err := DihedralAngles(m, Serial)
	if err != nil {
		t.Fatalf("DihedralAngles() error = %v", err)
	}
	if !slices.Equal(serial, angles) {
		t.Error("parallel and serial dihedral angles differ")
	}
}

func TestDihedralSign(t *testing.T) {
	// A valley: two quads folded up along the Y axis.
	m, err := FromPolygons([]r3.Vec{
		{X: -1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 1},
		{X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	}, [][]int{{0, 1, 2, 3}, {1, 4, 5, 2}})
	if err != nil {
		t.Fatalf("FromPolygons() error = %v", err)
	}
	h := m.FindHalfedge(1, 2)
	if a := DihedralAngle(m, h); a >= 0 {
		t.Errorf("valley dihedral = %v, want negative", a)
	}
	if a, b := DihedralAngle(m, h), DihedralAngle(m, m.Twin(h)); gomath.Abs(a-b) > eps {
		t.Errorf("dihedral differs across twins: %v vs %v", a, b)
	}
	if a := DihedralAngle(m, m.FindHalfedge(0, 1)); a != 0 {
		t.Errorf("boundary dihedral = %v, want 0", a)
	}
}

func TestBoundsAndTransform(t *testing.T) {
	m := unitBox(t)
	box, err := Bounds(m, Parallelism{Workers: 3, Grain: 2})
	if err != nil {
		t.Fatalf("Bounds() error = %v", err)
	}
	want := r3.Box{Min: r3.Vec{X: -0.5, Y: -0.5, Z: -0.5}, Max: r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}}
	if box != want {
		t.Errorf("Bounds() = %v, want %v", box, want)
	}

	shift := r3.Vec{X: 10, Y: -2, Z: 1}
	if err := Transform(m, math.Translate(shift).Mul(math.RotateZ(gomath.Pi/2)), Parallelism{}); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	box, err = Bounds(m, Serial)
	if err != nil {
		t.Fatalf("Bounds() error = %v", err)
	}
	if !math.ApproxEqual(box.Min, r3.Add(want.Min, shift), eps) || !math.ApproxEqual(box.Max, r3.Add(want.Max, shift), eps) {
		t.Errorf("Bounds() after transform = %v", box)
	}
	for f := range m.Faces.All() {
		c := r3.Sub(FaceCentroid(m, f), shift)
		if r3.Dot(m.FaceAttr(f).Normal, c) <= 0 {
			t.Errorf("face %d normal inward after transform", f)
		}
	}

	empty, err := Bounds(New(), Serial)
	if err != nil || empty != (r3.Box{}) {
		t.Errorf("Bounds(empty) = %v, %v", empty, err)
	}
}

func TestFaceCentroids(t *testing.T) {
	m := unitBox(t)
	cs, err := FaceCentroids(m, Parallelism{Workers: 2, Grain: 1})
	if err != nil {
		t.Fatalf("FaceCentroids() error = %v", err)
	}
	for f, c := range cs {
		if gomath.Abs(r3.Norm(c)-0.5) > eps {
			t.Errorf("face %d centroid %v not on the box surface", f, c)
		}
		if gomath.Abs(FaceArea(m, f)-1) > eps {
			t.Errorf("face %d area = %v, want 1", f, FaceArea(m, f))
		}
	}
}

func TestCircumcenter(t *testing.T) {
	m, err := FromPolygons([]r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, [][]int{{0, 1, 2}})
	if err != nil {
		t.Fatalf("FromPolygons() error = %v", err)
	}
	c, err := Circumcenter(m, 0)
	if err != nil {
		t.Fatalf("Circumcenter() error = %v", err)
	}
	if want := (r3.Vec{X: 1, Y: 1}); !math.ApproxEqual(c, want, eps) {
		t.Errorf("Circumcenter() = %v, want %v", c, want)
	}

	if _, err := Circumcenter(unitBox(t), 0); !errors.Is(err, halfedge.ErrNotImplemented) {
		t.Errorf("Circumcenter(quad) error = %v, want %v", err, halfedge.ErrNotImplemented)
	}
}

func TestDual(t *testing.T) {
	m := unitBox(t)
	d, err := Dual(m)
	if err != nil {
		t.Fatalf("Dual() error = %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got, want := d.Counts(), (halfedge.Counts{Vertices: 6, Halfedges: 24, Faces: 8}); got != want {
		t.Errorf("Counts() = %v, want %v", got, want)
	}
	for v, a := range d.Vertices.All() {
		if gomath.Abs(r3.Norm(a.Attr.Position)-0.5) > eps {
			t.Errorf("dual vertex %d at %v", v, a.Attr.Position)
		}
	}
	for f := range d.Faces.All() {
		if !d.IsTriangle(d.First(f)) {
			t.Errorf("dual face %d is not a triangle", f)
		}
		if r3.Dot(FaceNormal(d, f), FaceCentroid(d, f)) <= 0 {
			t.Errorf("dual face %d normal points inward", f)
		}
	}
}

func TestQuadrangulate(t *testing.T) {
	m, err := Ngon(9, 1)
	if err != nil {
		t.Fatalf("Ngon() error = %v", err)
	}
	splits, err := Quadrangulate(m, quad.Strip{})
	if err != nil {
		t.Fatalf("Quadrangulate() error = %v", err)
	}
	if splits != 3 {
		t.Errorf("splits = %d, want 3", splits)
	}
	if got := m.Counts().Faces; got != 4 {
		t.Errorf("faces = %d, want 4", got)
	}
	for f := range m.Faces.All() {
		if n := m.FaceAttr(f).Normal; !math.ApproxEqual(n, r3.Vec{Z: 1}, eps) {
			t.Errorf("face %d normal = %v, want +Z", f, n)
		}
	}
}

func TestUnrollAndLayout(t *testing.T) {
	m := unitBox(t)
	res, err := Unroll(m, 0, unroll.WithFactor(1))
	if err != nil {
		t.Fatalf("Unroll() error = %v", err)
	}
	if got, want := Seams(m), 4*res.Cut; got != want {
		t.Errorf("Seams() = %d, want %d", got, want)
	}
	if err := Layout(m, 0); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	for h := range m.Halfedges.All() {
		a := m.VertexAttr(m.Start(h)).TexCoord
		b := m.VertexAttr(m.End(h)).TexCoord
		if l := a.Distance(b); gomath.Abs(l-1) > 1e-9 {
			t.Errorf("halfedge %d laid out with length %v, want 1", h, l)
		}
	}
	var area float64
	for f := range m.Faces.All() {
		var pts []math.Vec2
		for v := range m.FaceVertices(f) {
			pts = append(pts, m.VertexAttr(v).TexCoord)
		}
		area += shoelace(pts)
	}
	if gomath.Abs(area-6) > 1e-9 {
		t.Errorf("laid out signed area = %v, want 6", area)
	}

	if err := m.RemoveFace(1); err != nil {
		t.Fatalf("RemoveFace() error = %v", err)
	}
	if err := Layout(m, 1); !errors.Is(err, halfedge.ErrUnused) {
		t.Errorf("Layout(removed face) error = %v, want %v", err, halfedge.ErrUnused)
	}
}

func shoelace(p []math.Vec2) float64 {
	s := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		s += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return s / 2
}

package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 2, Y: 4, Z: -2})
	want := r3.Vec{X: 1, Y: 2, Z: -1}
	if got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestSignedAngle(t *testing.T) {
	z := r3.Vec{Z: 1}
	tests := []struct {
		name string
		a, b r3.Vec
		want float64
	}{
		{"quarter ccw", r3.Vec{X: 1}, r3.Vec{Y: 1}, math.Pi / 2},
		{"quarter cw", r3.Vec{X: 1}, r3.Vec{Y: -1}, -math.Pi / 2},
		{"same", r3.Vec{X: 1}, r3.Vec{X: 2}, 0},
		{"off plane components ignored", r3.Vec{X: 1, Z: 5}, r3.Vec{Y: 1, Z: -3}, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedAngle(tt.a, tt.b, z); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SignedAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientToLocal(t *testing.T) {
	o, ok := NewOrient(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 0, Y: 2, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 1})
	if !ok {
		t.Fatal("NewOrient() reported a degenerate frame")
	}
	if d := r3.Dot(o.X, o.Y); math.Abs(d) > 1e-12 {
		t.Errorf("X and Y not orthogonal: dot = %v", d)
	}
	local := o.ToLocal(r3.Add(o.Origin, r3.Add(r3.Scale(2, o.X), r3.Scale(-3, o.Z))))
	if !ApproxEqual(local, r3.Vec{X: 2, Z: -3}, 1e-9) {
		t.Errorf("ToLocal() = %v, want (2, 0, -3)", local)
	}
	if got := o.Planar(r3.Add(o.Origin, o.Y)); got.Distance(Vec2{Y: 1}) > 1e-9 {
		t.Errorf("Planar(origin+Y) = %v, want (0, 1)", got)
	}
}

func TestOrientDegenerate(t *testing.T) {
	if _, ok := NewOrient(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 3}); ok {
		t.Error("expected parallel axes to be rejected")
	}
	if _, ok := NewOrient(r3.Vec{}, r3.Vec{}, r3.Vec{Y: 1}); ok {
		t.Error("expected zero x axis to be rejected")
	}
}

package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTranslate(t *testing.T) {
	m := Translate(r3.Vec{X: 10, Y: 20, Z: 30})
	got := m.TransformPoint(r3.Vec{X: 1, Y: 2, Z: 3})
	want := r3.Vec{X: 11, Y: 22, Z: 33}
	if got != want {
		t.Errorf("TransformPoint with translate: got %v, want %v", got, want)
	}
	if d := m.TransformDirection(r3.Vec{X: 1}); d != (r3.Vec{X: 1}) {
		t.Errorf("TransformDirection should ignore translation, got %v", d)
	}
}

func TestMulAppliesRightFirst(t *testing.T) {
	m := Translate(r3.Vec{X: 1}).Mul(RotateZ(math.Pi / 2))
	if got := m.TransformPoint(r3.Vec{X: 1}); !ApproxEqual(got, r3.Vec{X: 1, Y: 1}, 1e-12) {
		t.Errorf("Translate * RotateZ = %v, want (1, 1, 0)", got)
	}
	if got := m.TransformDirection(r3.Vec{Y: 1}); !ApproxEqual(got, r3.Vec{X: -1}, 1e-12) {
		t.Errorf("direction = %v, want (-1, 0, 0)", got)
	}
}

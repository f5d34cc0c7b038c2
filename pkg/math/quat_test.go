package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(r3.Vec{Z: 1}, math.Pi/2)
	got := q.Rotate(r3.Vec{X: 1})
	if !ApproxEqual(got, r3.Vec{Y: 1}, 1e-12) {
		t.Errorf("Rotate((1,0,0)) = %v, want (0,1,0)", got)
	}
	if got := q.Rotate(r3.Vec{Z: 2}); !ApproxEqual(got, r3.Vec{Z: 2}, 1e-12) {
		t.Errorf("Rotate() moved a point on the axis to %v", got)
	}
}

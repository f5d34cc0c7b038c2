package main

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/math"
	"github.com/Faultbox/halfmesh/pkg/polymesh"
)

// centerOn returns the translation moving the centre of box to the origin.
func centerOn(box r3.Box) math.Mat4 {
	c := r3.Scale(0.5, r3.Add(box.Min, box.Max))
	return math.Translate(r3.Scale(-1, c))
}

// placement centres box on the origin, then turns it a quarter turn about Z.
func placement(box r3.Box) math.Mat4 {
	return math.RotateZ(gomath.Pi / 2).Mul(centerOn(box))
}

// placeRigidly moves m by placement and fails if any edge length changed.
func placeRigidly(m *polymesh.Mesh, p polymesh.Parallelism) error {
	box, err := polymesh.Bounds(m, p)
	if err != nil {
		return err
	}
	before, err := polymesh.EdgeLengths(m, p)
	if err != nil {
		return err
	}
	if err := polymesh.Transform(m, placement(box), p); err != nil {
		return err
	}
	after, err := polymesh.EdgeLengths(m, p)
	if err != nil {
		return err
	}
	for h := range before {
		if gomath.Abs(before[h]-after[h]) > 1e-9 {
			return fmt.Errorf("halfedge %d: length %v became %v", h, before[h], after[h])
		}
	}
	return nil
}

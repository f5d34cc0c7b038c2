package quad

import (
	"iter"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
)

// Fan cuts quads that all share the start vertex.
type Fan struct {
	// StartKey, if set, selects the start halfedge with the smallest key.
	StartKey func(h int) float64
}

// Windows yields (p0, p[i], p[i+1], p[i+2]) for i = 1, 3, ...
func (s Fan) Windows(nav halfedge.Navigator, face int) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		p := loopVertices(nav, startHalfedge(nav, face, s.StartKey))
		n := len(p)
		for i := 1; i+1 < n; i += 2 {
			w := Window{p[0], p[i], p[i+1], halfedge.None}
			if i+2 < n {
				w[3] = p[i+2]
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Quadrangulate splits off one quad at a time, keeping the start vertex
// on the shrinking remainder.
func (s Fan) Quadrangulate(sp halfedge.Splitter, face int) (int, error) {
	he := startHalfedge(sp, face, s.StartKey)
	splits := 0
	for m := loopLength(sp, he); m > 4; m -= 2 {
		b := sp.Next(sp.Next(sp.Next(he)))
		x, err := sp.SplitFace(he, b)
		if err != nil {
			return splits, err
		}
		he = x
		splits++
	}
	return splits, nil
}

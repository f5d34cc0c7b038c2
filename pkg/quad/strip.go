package quad

import (
	"iter"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
)

// Strip cuts quads from both ends of the loop towards the middle, giving
// a ladder of quads instead of a fan.
type Strip struct {
	// StartKey, if set, selects the start halfedge with the smallest key.
	StartKey func(h int) float64
}

// Windows yields (p[b-1], p[b], p[f], p[f+1]) with b counting down from
// the start vertex and f counting up from its successor. An odd remainder
// yields (p[b], p[f], p[f+1]).
func (s Strip) Windows(nav halfedge.Navigator, face int) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		p := loopVertices(nav, startHalfedge(nav, face, s.StartKey))
		n := len(p)
		at := func(i int) int { return p[i%n] }

		back, front := n, 1
		for m := n; m >= 3; m -= 2 {
			if m == 3 {
				yield(Window{at(back), at(front), at(front + 1), halfedge.None})
				return
			}
			if !yield(Window{at(back - 1), at(back), at(front), at(front + 1)}) || m == 4 {
				return
			}
			front++
			back--
		}
	}
}

// Quadrangulate cuts the quad across the start halfedge off the loop and
// continues on the remainder.
func (s Strip) Quadrangulate(sp halfedge.Splitter, face int) (int, error) {
	cur := startHalfedge(sp, face, s.StartKey)
	splits := 0
	for m := loopLength(sp, cur); m > 4; m -= 2 {
		x, err := sp.SplitFace(sp.Next(sp.Next(cur)), sp.Prev(cur))
		if err != nil {
			return splits, err
		}
		cur = sp.Twin(x)
		splits++
	}
	return splits, nil
}

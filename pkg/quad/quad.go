// Package quad splits polygonal faces into quads, with a triangle left
// over when the side count is odd.
//
// A Strategy first describes the split as a sequence of windows over the
// face's vertices without touching the mesh, then carries it out with
// SplitFace. Both steps work on the halfedge capability interfaces, so any
// mesh type that can navigate and split faces can be quadrangulated.
package quad

import (
	"fmt"
	"iter"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
)

// Window lists the vertices of one output face in loop order. The last
// slot is halfedge.None for a triangle.
type Window [4]int

// Triangle reports whether the window describes a triangle.
func (w Window) Triangle() bool { return w[3] == halfedge.None }

// Strategy decomposes a face into quads.
type Strategy interface {
	// Windows yields the output faces of face without modifying the mesh.
	Windows(nav halfedge.Navigator, face int) iter.Seq[Window]

	// Quadrangulate splits face and returns the number of SplitFace calls.
	Quadrangulate(s halfedge.Splitter, face int) (int, error)
}

// startHalfedge picks the halfedge a strategy begins at: the face's first
// halfedge, or the one with the smallest key.
func startHalfedge(nav halfedge.Navigator, face int, key func(h int) float64) int {
	start := nav.First(face)
	if key == nil {
		return start
	}
	best, bestKey := start, key(start)
	for h := nav.Next(start); h != start; h = nav.Next(h) {
		if k := key(h); k < bestKey {
			best, bestKey = h, k
		}
	}
	return best
}

// loopVertices returns the start vertices of the loop through h.
func loopVertices(nav halfedge.Navigator, h int) []int {
	p := []int{nav.Start(h)}
	for e := nav.Next(h); e != h; e = nav.Next(e) {
		p = append(p, nav.Start(e))
	}
	return p
}

func loopLength(nav halfedge.Navigator, h int) int {
	n := 1
	for e := nav.Next(h); e != h; e = nav.Next(e) {
		n++
	}
	return n
}

// Count returns the number of windows a face with n sides produces.
func Count(n int) int {
	if n < 3 {
		return 0
	}
	return (n - 1) / 2
}

// All quadrangulates every face in faces with st and returns the total
// number of splits. Faces created by the splits are not revisited.
func All(s halfedge.Splitter, faces []int, st Strategy) (int, error) {
	total := 0
	for _, f := range faces {
		n, err := st.Quadrangulate(s, f)
		total += n
		if err != nil {
			return total, fmt.Errorf("quadrangulate face %d: %w", f, err)
		}
	}
	return total, nil
}

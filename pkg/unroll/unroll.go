// Package unroll flattens a mesh into the plane of one of its faces.
//
// The face adjacency graph is walked breadth-first from a seed face. Edges
// crossed by the walk form a spanning tree and are kept; every other
// interior edge is cut with DetachEdge, which turns the reachable part of
// the mesh into a topological disk. The tree is then walked again and at
// each edge the far side is rotated about the edge until it lies in the
// plane of the near face.
package unroll

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/math"
)

// Result describes what Unroll changed.
type Result struct {
	// EdgeMap maps each halfedge that existed before the call to the new
	// halfedge that runs parallel to it after its edge was cut, or
	// halfedge.None if the edge was kept.
	EdgeMap []int

	// Cut is the number of edges detached.
	Cut int

	// Crossed is the number of tree edges the far side was rotated about.
	Crossed int

	// Unreached lists used faces in other components than the seed. They
	// are neither cut nor moved.
	Unreached []int
}

// Unroll cuts m along a spanning tree of its faces rooted at seed and
// folds every face into the plane of seed. pos returns the position
// stored in a vertex attribute.
func Unroll[V, E, F any](m *halfedge.Mesh[V, E, F], seed int, pos func(*V) *r3.Vec, opts ...Option) (*Result, error) {
	if !m.Faces.Contains(seed) {
		return nil, fmt.Errorf("seed face %d: %w", seed, halfedge.ErrNotOwned)
	}
	if !m.Faces.Used(seed) {
		return nil, fmt.Errorf("seed face %d: %w", seed, halfedge.ErrUnused)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(zap.Int("seed", seed))

	u := &unroller[V, E, F]{m: m, pos: pos, factor: o.factor, log: log}
	res := &Result{}

	reached := u.spanningTree(seed)
	for f := range m.Faces.All() {
		if !m.Faces.Tagged(f, u.faceTag) {
			res.Unreached = append(res.Unreached, f)
		}
	}
	log.Debug("spanning tree built",
		zap.Int("faces", reached),
		zap.Int("unreached", len(res.Unreached)))

	var err error
	res.EdgeMap, res.Cut, err = u.cut()
	if err != nil {
		return nil, err
	}
	res.Crossed = u.fold(seed)

	log.Info("mesh unrolled",
		zap.Int("cut", res.Cut),
		zap.Int("crossed", res.Crossed),
		zap.Float64("factor", o.factor))
	return res, nil
}

type unroller[V, E, F any] struct {
	m      *halfedge.Mesh[V, E, F]
	pos    func(*V) *r3.Vec
	factor float64
	log    *zap.Logger

	faceTag int
	treeTag int
}

func (u *unroller[V, E, F]) position(v int) r3.Vec {
	return *u.pos(u.m.VertexAttr(v))
}

// spanningTree tags the faces reachable from seed and the halfedge pairs
// the breadth-first walk crosses. It returns the number of faces reached.
func (u *unroller[V, E, F]) spanningTree(seed int) int {
	m := u.m
	u.faceTag = m.Faces.NextTag()
	u.treeTag = m.Halfedges.NextTag()

	m.Faces.SetTag(seed, u.faceTag)
	queue := []int{seed}
	n := 0
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		n++
		for h := range m.FaceHalfedges(f) {
			t := m.Twin(h)
			g := m.FaceOf(t)
			if g == halfedge.None || !m.Faces.Visit(g, u.faceTag) {
				continue
			}
			m.Halfedges.SetTag(h, u.treeTag)
			m.Halfedges.SetTag(t, u.treeTag)
			queue = append(queue, g)
		}
	}
	return n
}

// cut detaches every interior edge of the reached faces that the
// spanning tree does not use.
func (u *unroller[V, E, F]) cut() ([]int, int, error) {
	m := u.m
	nh := m.Halfedges.Len()
	edgeMap := make([]int, nh)
	for i := range edgeMap {
		edgeMap[i] = halfedge.None
	}

	cuts := 0
	for h := range nh {
		if !m.Halfedges.Used(h) || m.IsBoundaryHalfedge(h) || m.Halfedges.Tagged(h, u.treeTag) {
			continue
		}
		if !m.Faces.Tagged(m.FaceOf(h), u.faceTag) {
			continue
		}
		t := m.Twin(h)
		n, err := m.DetachEdge(h)
		if err != nil {
			return nil, cuts, fmt.Errorf("cut edge %d: %w", h, err)
		}
		edgeMap[h] = n
		edgeMap[t] = m.Twin(h)
		cuts++
	}
	return edgeMap, cuts, nil
}

// fold walks the tree from seed and rotates the far side of every tree
// edge into the plane of the near face. It returns the number of edges
// crossed.
func (u *unroller[V, E, F]) fold(seed int) int {
	m := u.m
	var stack []int
	for h := range m.FaceHalfedges(seed) {
		if !m.IsBoundaryHalfedge(h) {
			stack = append(stack, m.Twin(h))
		}
	}

	crossed := 0
	var visit []int
	for len(stack) > 0 {
		far := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		near := m.Twin(far)
		g := m.FaceOf(far)

		a, b := m.Start(far), m.End(far)
		pa, pb := u.position(a), u.position(b)
		axis := r3.Unit(r3.Sub(pb, pa))
		mid := math.Midpoint(pa, pb)

		y0 := math.Reject(r3.Sub(u.position(m.End(m.Next(far))), mid), axis)
		y1 := math.Reject(r3.Sub(u.position(m.End(m.Next(near))), mid), axis)
		angle := math.SignedAngle(y0, r3.Scale(-1, y1), axis) * u.factor
		q := math.QuatFromAxisAngle(axis, angle)

		tag := m.Vertices.NextTag()
		m.Vertices.SetTag(a, tag)
		m.Vertices.SetTag(b, tag)
		visit = visit[:0]
		for v := range m.FaceVertices(g) {
			if m.Vertices.Visit(v, tag) {
				visit = append(visit, v)
			}
		}
		moved := 0
		for len(visit) > 0 {
			v := visit[len(visit)-1]
			visit = visit[:len(visit)-1]
			p := u.pos(m.VertexAttr(v))
			*p = r3.Add(mid, q.Rotate(r3.Sub(*p, mid)))
			moved++
			for w := range m.ConnectedVertices(v) {
				if m.Vertices.Visit(w, tag) {
					visit = append(visit, w)
				}
			}
		}
		u.log.Debug("folded edge",
			zap.Int("halfedge", far),
			zap.Int("face", g),
			zap.Float64("angle", angle),
			zap.Int("moved", moved))

		for h := range m.FaceHalfedges(g) {
			if h != far && !m.IsBoundaryHalfedge(h) {
				stack = append(stack, m.Twin(h))
			}
		}
		crossed++
	}
	return crossed
}

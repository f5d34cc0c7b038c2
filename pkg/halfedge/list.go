package halfedge

import (
	"fmt"
	"iter"
)

// element is satisfied by pointers to the three record types.
type element[T any] interface {
	*T
	base() *header
	Unused() bool
}

// List is an index-addressable arena of one element kind. An element's
// Index always equals its position. Elements are appended through the
// owning Mesh and only leave the list when Compact runs.
type List[T any, P element[T]] struct {
	items []T
	tag   int
}

// Len returns the number of slots, used or not.
func (l *List[T, P]) Len() int { return len(l.items) }

// At returns the element at index i. The pointer is invalidated by the
// next append to or compaction of the list.
func (l *List[T, P]) At(i int) P { return P(&l.items[i]) }

// Owns reports whether p physically belongs to this list at its claimed
// index.
func (l *List[T, P]) Owns(p P) bool {
	if p == nil {
		return false
	}
	i := p.base().index
	return i >= 0 && i < len(l.items) && P(&l.items[i]) == p
}

// Contains reports whether i is a valid slot index.
func (l *List[T, P]) Contains(i int) bool { return i >= 0 && i < len(l.items) }

// Used reports whether i is a valid index of an element still in use.
func (l *List[T, P]) Used(i int) bool {
	return l.Contains(i) && !P(&l.items[i]).Unused()
}

// CountUsed returns the number of elements in use.
func (l *List[T, P]) CountUsed() int {
	n := 0
	for i := range l.items {
		if !P(&l.items[i]).Unused() {
			n++
		}
	}
	return n
}

// All yields the used elements in index order.
func (l *List[T, P]) All() iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i := range l.items {
			p := P(&l.items[i])
			if p.Unused() {
				continue
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// NextTag returns a tag no element of this list carries yet. Traversals
// mark elements with it instead of clearing a visited set.
func (l *List[T, P]) NextTag() int {
	l.tag++
	return l.tag
}

// Tagged reports whether element i carries tag.
func (l *List[T, P]) Tagged(i, tag int) bool {
	return P(&l.items[i]).base().tag == tag
}

// SetTag stamps element i with tag.
func (l *List[T, P]) SetTag(i, tag int) {
	P(&l.items[i]).base().tag = tag
}

// Visit stamps element i with tag and reports whether it was not already
// stamped, i.e. whether this is the first visit in the current pass.
func (l *List[T, P]) Visit(i, tag int) bool {
	h := P(&l.items[i]).base()
	if h.tag == tag {
		return false
	}
	h.tag = tag
	return true
}

func (l *List[T, P]) add(item T) int {
	i := len(l.items)
	P(&item).base().index = i
	l.items = append(l.items, item)
	return i
}

func (l *List[T, P]) grow(n int) {
	if n > cap(l.items)-len(l.items) {
		items := make([]T, len(l.items), len(l.items)+n)
		copy(items, l.items)
		l.items = items
	}
}

// Compact removes unused elements in a single sweep, keeping the relative
// order of the rest and renumbering them contiguously. It returns the map
// from old to new indices, with None for removed slots. Handles stored in
// other elements are not rewritten; Mesh.Compact does that.
func (l *List[T, P]) Compact() []int {
	remap := make([]int, len(l.items))
	n := 0
	for i := range l.items {
		if P(&l.items[i]).Unused() {
			remap[i] = None
			continue
		}
		if n != i {
			l.items[n] = l.items[i]
		}
		P(&l.items[n]).base().index = n
		remap[i] = n
		n++
	}
	clear(l.items[n:])
	l.items = l.items[:n]
	return remap
}

// SwimAttributes moves the entries of attrs belonging to used elements to
// the front, in order, and returns how many there are. Call it before
// compacting the list; attrs must be parallel to the list.
func SwimAttributes[T any, P element[T], A any](l *List[T, P], attrs []A) (int, error) {
	if len(attrs) != len(l.items) {
		return 0, fmt.Errorf("%d attributes for %d elements: %w", len(attrs), len(l.items), ErrLength)
	}
	n := 0
	for i := range l.items {
		if P(&l.items[i]).Unused() {
			continue
		}
		attrs[n] = attrs[i]
		n++
	}
	return n, nil
}

// CompactAttributes swims attrs and returns the surviving prefix. The tail
// of the backing array is zeroed.
func CompactAttributes[T any, P element[T], A any](l *List[T, P], attrs []A) ([]A, error) {
	n, err := SwimAttributes(l, attrs)
	if err != nil {
		return nil, err
	}
	clear(attrs[n:])
	return attrs[:n], nil
}

// RemapAttributes applies an index map returned by Compact to a parallel
// attribute slice, filtering it in place.
func RemapAttributes[A any](attrs []A, remap []int) ([]A, error) {
	if len(attrs) != len(remap) {
		return nil, fmt.Errorf("%d attributes for %d slots: %w", len(attrs), len(remap), ErrLength)
	}
	n := 0
	for i, j := range remap {
		if j == None {
			continue
		}
		attrs[j] = attrs[i]
		n++
	}
	clear(attrs[n:])
	return attrs[:n], nil
}

package quadtree

import (
	"github.com/npillmayer/vecto/linear"
	"github.com/npillmayer/vecto/spatial"
)

// Quadrant names a child slot of a branch node.
type Quadrant int

// Child slots in routing order. "Top" is the side of smaller y values.
const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TL"
	case TopRight:
		return "TR"
	case BottomLeft:
		return "BL"
	case BottomRight:
		return "BR"
	}
	return "?"
}

// Entry is a point together with its client value.
type Entry[T any] struct {
	Point linear.Vec2
	Value T
	// serial identifies an entry across its border copies.
	serial uint64
}

// node is either a leaf (no children, entries in insertion order) or a
// branch (four children, no entries).
type node[T any] struct {
	region   spatial.AABB // logical quadrant, used to compute child regions
	bounds   spatial.AABB // region inflated by half the border size
	depth    int          // remaining subdivisions below this node
	entries  []Entry[T]
	children [4]*node[T]
}

func newLeaf[T any](region spatial.AABB, border float64, depth int) *node[T] {
	return &node[T]{
		region: region,
		bounds: region.Inflate(border / 2),
		depth:  depth,
	}
}

func (n *node[T]) isLeaf() bool {
	return n.children[TopRight] == nil
}

// quadrantOf classifies p by the signs of its offset from the region's
// center. Non-positive offsets count as left/top.
func (n *node[T]) quadrantOf(p linear.Vec2) Quadrant {
	right, bottom := p.Sub(n.region.Center()).Positive()
	q := TopLeft
	if right {
		q++
	}
	if bottom {
		q += 2
	}
	return q
}

// route calls visit for every child whose box, grown by eps, contains p.
// Rounding may leave a point of the parent's box outside of all child boxes;
// such points go to the child picked by quadrantOf.
// route returns false if visit stopped the iteration.
func (n *node[T]) route(p linear.Vec2, eps float64, visit func(*node[T]) bool) bool {
	assert(!n.isLeaf(), "route called on leaf")
	routed := false
	for _, child := range n.children {
		if child.reaches(p, eps) {
			routed = true
			if !visit(child) {
				return false
			}
		}
	}
	if !routed {
		return visit(n.children[n.quadrantOf(p)])
	}
	return true
}

// childFor returns the first child containing p, in routing order.
func (n *node[T]) childFor(p linear.Vec2) *node[T] {
	assert(!n.isLeaf(), "childFor called on leaf")
	for _, child := range n.children {
		if child.bounds.Contains(p) {
			return child
		}
	}
	return n.children[n.quadrantOf(p)]
}

func (n *node[T]) reaches(p linear.Vec2, eps float64) bool {
	if eps == 0 {
		return n.bounds.Contains(p)
	}
	return n.bounds.Inflate(eps).Contains(p)
}

// walk visits nodes depth-first, parents before children.
// It stops early if fn returns false.
func (n *node[T]) walk(fn func(*node[T]) bool) bool {
	if !fn(n) {
		return false
	}
	if n.isLeaf() {
		return true
	}
	for _, child := range n.children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

package quadtree

import (
	"iter"

	"github.com/npillmayer/vecto/linear"
	"github.com/npillmayer/vecto/spatial"
)

// An entry with border copies is reported at its home leaf only, which is
// the leaf a point query for the entry's point would return.
func (t *Tree[T]) isHome(leaf *node[T], p linear.Vec2) bool {
	n := t.root
	for steps := 0; !n.isLeaf(); steps++ {
		if steps > t.cfg.MaxDepth {
			return false
		}
		n = n.childFor(p)
	}
	return n == leaf
}

// visitEntries calls fn for every distinct entry in leaves whose bounds
// satisfy within. It returns false if fn stopped the iteration.
func (t *Tree[T]) visitEntries(within func(spatial.AABB) bool, fn func(Entry[T]) bool) bool {
	return t.root.visit(within, func(leaf *node[T]) bool {
		for _, e := range leaf.entries {
			if !t.isHome(leaf, e.Point) {
				continue
			}
			if !fn(e) {
				return false
			}
		}
		return true
	})
}

// visit is walk restricted to subtrees whose bounds satisfy within. fn is
// called for leaves only.
func (n *node[T]) visit(within func(spatial.AABB) bool, fn func(*node[T]) bool) bool {
	if !within(n.bounds) {
		return true
	}
	if n.isLeaf() {
		return fn(n)
	}
	for _, child := range n.children {
		if !child.visit(within, fn) {
			return false
		}
	}
	return true
}

func everywhere(spatial.AABB) bool { return true }

// ForEach calls fn for every entry, depth-first in routing order, until fn
// returns false. Border copies are reported once.
func (t *Tree[T]) ForEach(fn func(Entry[T]) bool) {
	t.visitEntries(everywhere, fn)
}

// All returns an iterator over the points and values of all entries, in the
// order of ForEach.
func (t *Tree[T]) All() iter.Seq2[linear.Vec2, T] {
	return func(yield func(linear.Vec2, T) bool) {
		t.visitEntries(everywhere, func(e Entry[T]) bool {
			return yield(e.Point, e.Value)
		})
	}
}

// QueryRegion returns all entries whose points lie within box (edges
// included), each one reported once.
func (t *Tree[T]) QueryRegion(box spatial.AABB) []Entry[T] {
	var result []Entry[T]
	t.visitEntries(box.Intersects, func(e Entry[T]) bool {
		if box.Contains(e.Point) {
			result = append(result, e)
		}
		return true
	})
	return result
}

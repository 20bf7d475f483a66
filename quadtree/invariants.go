package quadtree

import (
	"fmt"

	"github.com/npillmayer/vecto/linear"
)

// Check walks the tree and verifies its structural invariants. It returns an
// error wrapping ErrInvalidTree for the first violation found.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t.root.depth != t.cfg.MaxDepth {
		return fmt.Errorf("%w: root depth %d, expected %d", ErrInvalidTree, t.root.depth, t.cfg.MaxDepth)
	}
	seen := make(map[uint64]linear.Vec2, t.size)
	if err := t.checkNode(t.root, nil, TopLeft, seen); err != nil {
		return err
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: %d distinct entries, size is %d", ErrInvalidTree, len(seen), t.size)
	}
	// every entry has to be found by a point query for its point
	for serial, p := range seen {
		leaf, err := t.leafFor(p)
		if err != nil {
			return fmt.Errorf("%w: entry at %v unreachable: %v", ErrInvalidTree, p, err)
		}
		if !leaf.holds(serial) {
			return fmt.Errorf("%w: entry at %v missing from leaf %v", ErrInvalidTree, p, leaf.region)
		}
	}
	return nil
}

func (n *node[T]) holds(serial uint64) bool {
	for _, e := range n.entries {
		if e.serial == serial {
			return true
		}
	}
	return false
}

func (t *Tree[T]) checkNode(n, parent *node[T], q Quadrant, seen map[uint64]linear.Vec2) error {
	if want := n.region.Inflate(t.cfg.BorderSize / 2); n.bounds != want {
		return fmt.Errorf("%w: node %v has bounds %v, expected %v", ErrInvalidTree, n.region, n.bounds, want)
	}
	if n.isLeaf() {
		return t.checkLeaf(n, parent, q, seen)
	}
	if len(n.entries) > 0 {
		return fmt.Errorf("%w: branch %v holds %d entries", ErrInvalidTree, n.region, len(n.entries))
	}
	if !n.canSubdivide(t.cfg.BorderSize) {
		return fmt.Errorf("%w: branch %v must not be subdivided", ErrInvalidTree, n.region)
	}
	quadrants := n.region.Quadrants()
	for i, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: branch %v lacks child %v", ErrInvalidTree, n.region, Quadrant(i))
		}
		if child.depth != n.depth-1 {
			return fmt.Errorf("%w: child %v has depth %d below parent depth %d",
				ErrInvalidTree, Quadrant(i), child.depth, n.depth)
		}
		if child.region != quadrants[i] {
			return fmt.Errorf("%w: child %v covers %v, expected %v",
				ErrInvalidTree, Quadrant(i), child.region, quadrants[i])
		}
		if err := t.checkNode(child, n, Quadrant(i), seen); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[T]) checkLeaf(n, parent *node[T], q Quadrant, seen map[uint64]linear.Vec2) error {
	for _, child := range n.children {
		if child != nil {
			return fmt.Errorf("%w: leaf %v has partial children", ErrInvalidTree, n.region)
		}
	}
	if len(n.entries) > t.cfg.MaxValues && n.canSubdivide(t.cfg.BorderSize) {
		return fmt.Errorf("%w: leaf %v holds %d entries, capacity is %d",
			ErrInvalidTree, n.region, len(n.entries), t.cfg.MaxValues)
	}
	for _, e := range n.entries {
		if !n.bounds.Contains(e.Point) && !placedByFallback(parent, q, e.Point) {
			return fmt.Errorf("%w: entry at %v does not belong to leaf %v", ErrInvalidTree, e.Point, n.bounds)
		}
		if e.serial == 0 {
			return fmt.Errorf("%w: entry at %v has no identity", ErrInvalidTree, e.Point)
		}
		if p, dup := seen[e.serial]; dup && p != e.Point {
			return fmt.Errorf("%w: copies of entry at %v moved to %v", ErrInvalidTree, p, e.Point)
		}
		seen[e.serial] = e.Point
	}
	return nil
}

// placedByFallback reports whether the child q of parent received p because
// no child box contains p.
func placedByFallback[T any](parent *node[T], q Quadrant, p linear.Vec2) bool {
	if parent == nil || !parent.bounds.Contains(p) {
		return false
	}
	for _, sibling := range parent.children {
		if sibling.bounds.Contains(p) {
			return false
		}
	}
	return parent.quadrantOf(p) == q
}

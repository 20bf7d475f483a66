package quadtree

import (
	"fmt"
	"slices"

	"github.com/npillmayer/vecto/linear"
	"github.com/npillmayer/vecto/spatial"
)

// Tree is a quadtree mapping points to values of type T.
//
// Create trees with New; the zero value is not usable.
type Tree[T any] struct {
	cfg    Config
	root   *node[T]
	size   int    // number of distinct entries
	serial uint64 // last serial handed out
}

// New creates a tree covering region.
//
// cfg.MaxValues must be positive; New panics otherwise. Other invalid
// configuration values, and regions which are not finite or have no area,
// are reported as ErrInvalidConfig.
func New[T any](region spatial.AABB, cfg Config) (*Tree[T], error) {
	assert(cfg.MaxValues > 0, "quadtree: MaxValues must be positive")
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !region.IsValid() || region.Size.X <= 0 || region.Size.Y <= 0 {
		return nil, fmt.Errorf("%w: region %v must be finite and non-empty", ErrInvalidConfig, region)
	}
	return &Tree[T]{
		cfg:  cfg,
		root: newLeaf[T](region, cfg.BorderSize, cfg.MaxDepth),
	}, nil
}

// Config returns the tree's configuration.
func (t *Tree[T]) Config() Config {
	return t.cfg
}

// Region returns the region the tree was created with.
func (t *Tree[T]) Region() spatial.AABB {
	return t.root.region
}

// Bounds returns the root box, i.e. the region inflated by the border.
func (t *Tree[T]) Bounds() spatial.AABB {
	return t.root.bounds
}

// IsLeaf reports whether the tree consists of a single leaf.
func (t *Tree[T]) IsLeaf() bool {
	return t.root.isLeaf()
}

// Len returns the number of entries, not counting border copies.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the number of levels, where a single leaf has height 1.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n.isLeaf() {
		return 1
	}
	h := 0
	for _, child := range n.children {
		h = max(h, height(child))
	}
	return h + 1
}

// LeafCount returns the number of leaves.
func (t *Tree[T]) LeafCount() int {
	count := 0
	t.root.walk(func(n *node[T]) bool {
		if n.isLeaf() {
			count++
		}
		return true
	})
	return count
}

// --- Insertion -------------------------------------------------------------

// Add stores value at point p. Points outside of the tree's bounds are
// rejected with ErrOutOfBounds. ErrDescentLimit signals a corrupted tree,
// which may then hold a partial copy of the entry.
func (t *Tree[T]) Add(value T, p linear.Vec2) error {
	if !t.root.bounds.Contains(p) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, t.root.bounds)
	}
	t.serial++
	if err := t.root.add(Entry[T]{Point: p, Value: value, serial: t.serial}, &t.cfg, 0); err != nil {
		return err
	}
	t.size++
	return nil
}

// descentLimit reports a descent which took more steps than the tree may
// have levels.
func descentLimit(p linear.Vec2, maxDepth int) error {
	tracer().Errorf("quadtree: descent to %v exceeded %d levels", p, maxDepth)
	return fmt.Errorf("%w: point %v", ErrDescentLimit, p)
}

func (n *node[T]) add(e Entry[T], cfg *Config, steps int) error {
	if steps > cfg.MaxDepth {
		return descentLimit(e.Point, cfg.MaxDepth)
	}
	if n.isLeaf() {
		n.entries = append(n.entries, e)
		if len(n.entries) > cfg.MaxValues && n.canSubdivide(cfg.BorderSize) {
			return n.subdivide(cfg, steps)
		}
		return nil
	}
	var err error
	n.route(e.Point, 0, func(child *node[T]) bool {
		err = child.add(e, cfg, steps+1)
		return err == nil
	})
	return err
}

// canSubdivide is false at maximum depth and once quadrants are no larger
// than the border size.
func (n *node[T]) canSubdivide(border float64) bool {
	side := min(n.region.Size.X, n.region.Size.Y) / 2
	return n.depth > 0 && side > border
}

// subdivide turns a leaf into a branch with four leaf children and
// redistributes the leaf's entries.
func (n *node[T]) subdivide(cfg *Config, steps int) error {
	assert(n.isLeaf(), "subdivide called on branch")
	assert(n.depth > 0, "subdivide called at maximum depth")
	for i, q := range n.region.Quadrants() {
		n.children[i] = newLeaf[T](q, cfg.BorderSize, n.depth-1)
	}
	entries := n.entries
	n.entries = nil
	tracer().Debugf("quadtree: subdivide %v, redistributing %d entries", n.region, len(entries))
	for _, e := range entries {
		if err := n.add(e, cfg, steps); err != nil {
			return err
		}
	}
	return nil
}

// --- Point queries ---------------------------------------------------------

// leafFor descends to the leaf responsible for p, taking the first matching
// child at every level.
func (t *Tree[T]) leafFor(p linear.Vec2) (*node[T], error) {
	if !t.root.bounds.Contains(p) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, t.root.bounds)
	}
	n := t.root
	for steps := 0; !n.isLeaf(); steps++ {
		if steps > t.cfg.MaxDepth {
			return nil, descentLimit(p, t.cfg.MaxDepth)
		}
		n = n.childFor(p)
	}
	return n, nil
}

// QueryMut returns the entries of the leaf responsible for p. The result is
// the leaf's own storage: values may be changed in place, but the slice must
// not be appended to and is invalidated by the next mutation of the tree.
// Border copies of an entry in sibling leaves do not see such changes.
func (t *Tree[T]) QueryMut(p linear.Vec2) ([]Entry[T], error) {
	leaf, err := t.leafFor(p)
	if err != nil {
		return nil, err
	}
	return leaf.entries, nil
}

// Query returns a copy of the entries of the leaf responsible for p.
// The result may contain entries at points other than p; it is empty if the
// leaf is empty.
func (t *Tree[T]) Query(p linear.Vec2) ([]Entry[T], error) {
	leaf, err := t.leafFor(p)
	if err != nil {
		return nil, err
	}
	out := make([]Entry[T], len(leaf.entries))
	copy(out, leaf.entries)
	return out, nil
}

// --- Removal ---------------------------------------------------------------

// Remove deletes the first entry stored at p (compared with Config.Epsilon)
// and returns it. All border copies of that entry are deleted as well.
// Remove does not prune the tree.
func (t *Tree[T]) Remove(p linear.Vec2) (Entry[T], error) {
	var zero Entry[T]
	eps := t.cfg.Epsilon
	if !t.root.reaches(p, eps) {
		return zero, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, t.root.bounds)
	}
	e, found, err := t.root.findAt(p, eps, t.cfg.MaxDepth, 0)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	removed, err := t.root.removeSerial(e.Point, e.serial, t.cfg.MaxDepth, 0)
	if err != nil {
		return zero, err
	}
	assert(removed > 0, "quadtree: entry vanished during remove")
	t.size--
	return e, nil
}

// findAt returns the first entry matching p in any leaf reachable for p.
func (n *node[T]) findAt(p linear.Vec2, eps float64, maxDepth, steps int) (e Entry[T], found bool, err error) {
	if steps > maxDepth {
		return e, false, descentLimit(p, maxDepth)
	}
	if n.isLeaf() {
		for _, entry := range n.entries {
			if entry.Point.ApproxEqual(p, eps) {
				return entry, true, nil
			}
		}
		return e, false, nil
	}
	n.route(p, eps, func(child *node[T]) bool {
		e, found, err = child.findAt(p, eps, maxDepth, steps+1)
		return !found && err == nil
	})
	return e, found, err
}

// removeSerial deletes every copy of the entry with the given serial, which
// is stored at p, and returns the number of copies deleted.
func (n *node[T]) removeSerial(p linear.Vec2, serial uint64, maxDepth, steps int) (int, error) {
	if steps > maxDepth {
		return 0, descentLimit(p, maxDepth)
	}
	if n.isLeaf() {
		before := len(n.entries)
		n.entries = slices.DeleteFunc(n.entries, func(e Entry[T]) bool {
			return e.serial == serial
		})
		return before - len(n.entries), nil
	}
	removed := 0
	var err error
	n.route(p, 0, func(child *node[T]) bool {
		var r int
		r, err = child.removeSerial(p, serial, maxDepth, steps+1)
		removed += r
		return err == nil
	})
	return removed, err
}

// ChangePos moves the entry stored at from to the point to. It fails with
// ErrNotFound if there is no entry at from and with ErrOutOfBounds if to is
// outside of the tree; in both cases the tree is unchanged.
func (t *Tree[T]) ChangePos(from, to linear.Vec2) error {
	if !t.root.bounds.Contains(to) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, to, t.root.bounds)
	}
	e, err := t.Remove(from)
	if err != nil {
		return err
	}
	return t.Add(e.Value, to)
}

// --- Search by value -------------------------------------------------------

// FindFunc returns the point of the first entry, in the order of ForEach,
// whose value satisfies match. Border copies are not consulted, so values
// changed through QueryMut are seen as Query reports them.
func (t *Tree[T]) FindFunc(match func(T) bool) (linear.Vec2, bool) {
	var p linear.Vec2
	found := false
	t.visitEntries(everywhere, func(e Entry[T]) bool {
		if match(e.Value) {
			p, found = e.Point, true
		}
		return !found
	})
	return p, found
}

// Find returns the point of the first entry, in the order of ForEach, whose
// value equals value. This is a linear scan over all entries.
func Find[T comparable](t *Tree[T], value T) (linear.Vec2, bool) {
	return t.FindFunc(func(v T) bool {
		return v == value
	})
}

// --- Pruning ---------------------------------------------------------------

// Prune merges branches back into leaves, bottom-up. A branch is joined if
// the number of distinct entries below it is smaller than Config.MaxValues.
func (t *Tree[T]) Prune() {
	t.root.prune(&t.cfg)
}

func (n *node[T]) prune(cfg *Config) {
	if n.isLeaf() {
		return
	}
	for _, child := range n.children {
		child.prune(cfg)
	}
	if n.fitsIntoLeaf(cfg.MaxValues) {
		n.join()
	}
}

// fitsIntoLeaf reports whether the subtree holds fewer than limit distinct
// entries.
func (n *node[T]) fitsIntoLeaf(limit int) bool {
	raw := 0
	n.walk(func(m *node[T]) bool {
		raw += len(m.entries)
		return raw < limit
	})
	if raw < limit {
		return true
	}
	// border copies inflate the raw count
	seen := make(map[uint64]struct{}, limit)
	n.walk(func(m *node[T]) bool {
		for _, e := range m.entries {
			seen[e.serial] = struct{}{}
		}
		return len(seen) < limit
	})
	return len(seen) < limit
}

// join turns a branch into a leaf holding all distinct entries of its
// subtree, in insertion order.
func (n *node[T]) join() {
	assert(!n.isLeaf(), "join called on leaf")
	entries := n.drainEntries(nil, make(map[uint64]struct{}))
	slices.SortFunc(entries, func(a, b Entry[T]) int {
		switch {
		case a.serial < b.serial:
			return -1
		case a.serial > b.serial:
			return 1
		}
		return 0
	})
	tracer().Debugf("quadtree: join %v into leaf with %d entries", n.region, len(entries))
	n.children = [4]*node[T]{}
	n.entries = entries
}

// drainEntries moves the entries of the subtree into out, depth-first,
// skipping border copies already collected.
func (n *node[T]) drainEntries(out []Entry[T], seen map[uint64]struct{}) []Entry[T] {
	if n.isLeaf() {
		for _, e := range n.entries {
			if _, dup := seen[e.serial]; !dup {
				seen[e.serial] = struct{}{}
				out = append(out, e)
			}
		}
		n.entries = nil
		return out
	}
	for _, child := range n.children {
		out = child.drainEntries(out, seen)
	}
	return out
}

package quadtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vecto/linear"
	"github.com/npillmayer/vecto/spatial"
)

func newTestTree(t *testing.T, region spatial.AABB, cfg Config) *Tree[int] {
	t.Helper()
	tree, err := New[int](region, cfg)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	return tree
}

// rawCount counts stored entries including border copies.
func rawCount[T any](tree *Tree[T]) int {
	count := 0
	tree.root.walk(func(n *node[T]) bool {
		count += len(n.entries)
		return true
	})
	return count
}

func checkTree[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func TestNewTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), DefaultConfig())
	if !tree.IsLeaf() || tree.Len() != 0 || tree.Height() != 1 || tree.LeafCount() != 1 {
		t.Fatalf("expected new tree to be a single empty leaf")
	}
	checkTree(t, tree)
	cfg := DefaultConfig()
	cfg.BorderSize = 10
	tree = newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), cfg)
	if b := tree.Bounds(); b != spatial.FromXYWH(-5, -5, 110, 110) {
		t.Errorf("expected root bounds to include half the border, have %v", b)
	}
	if r := tree.Region(); r != spatial.FromXYWH(0, 0, 100, 100) {
		t.Errorf("expected region to be kept un-inflated, have %v", r)
	}
}

func TestNewTreeInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	region := spatial.FromXYWH(0, 0, 100, 100)
	for i, cfg := range []Config{
		{MaxValues: 4, MaxDepth: -1},
		{MaxValues: 4, MaxDepth: MaxDepthLimit + 1},
		{MaxValues: 4, MaxDepth: 4, BorderSize: -1},
		{MaxValues: 4, MaxDepth: 4, Epsilon: -0.5},
	} {
		if _, err := New[int](region, cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("config #%d: expected ErrInvalidConfig, have %v", i, err)
		}
	}
	for i, r := range []spatial.AABB{
		spatial.FromXYWH(0, 0, 0, 100),
		spatial.FromXYWH(0, 0, 100, -1),
	} {
		if _, err := New[int](r, DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("region #%d: expected ErrInvalidConfig, have %v", i, err)
		}
	}
}

func TestNewTreePanicsWithoutCapacity(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected New to panic for MaxValues = 0")
		}
	}()
	New[int](spatial.FromXYWH(0, 0, 100, 100), Config{MaxDepth: 4})
}

func TestDiagonalPoints(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 500, 500), Config{MaxValues: 80, MaxDepth: 10})
	for i := range 100 {
		if err := tree.Add(i, linear.V2(float64(i), float64(i))); err != nil {
			t.Fatalf("cannot add point #%d: %v", i, err)
		}
	}
	checkTree(t, tree)
	if tree.IsLeaf() {
		t.Fatalf("expected tree to be subdivided after 100 insertions")
	}
	if tree.Len() != 100 {
		t.Errorf("expected 100 entries, have %d", tree.Len())
	}
	if h := tree.Height(); h != 4 {
		t.Errorf("expected height 4, have %d", h)
	}
	if n := tree.LeafCount(); n != 10 {
		t.Errorf("expected 10 leaves, have %d", n)
	}
	entries, err := tree.Query(linear.V2(50, 50))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 63 {
		t.Errorf("expected leaf of (50,50) to hold 63 entries, has %d", len(entries))
	}
	found := false
	for _, e := range entries {
		found = found || e.Value == 50
	}
	if !found {
		t.Errorf("expected query at (50,50) to contain value 50")
	}
	// (230,230) lies in an empty leaf of the subdivided top-left quadrant
	entries, err = tree.Query(linear.V2(230, 230))
	if err != nil || len(entries) != 0 {
		t.Errorf("expected empty leaf for (230,230), have %d entries, err=%v", len(entries), err)
	}
	for i := range 100 {
		e, err := tree.Remove(linear.V2(float64(i), float64(i)))
		if err != nil {
			t.Fatalf("cannot remove point #%d: %v", i, err)
		}
		if e.Value != i {
			t.Errorf("expected to remove value %d, removed %d", i, e.Value)
		}
	}
	if tree.Len() != 0 || tree.IsLeaf() {
		t.Fatalf("expected empty but still subdivided tree after removal")
	}
	tree.Prune()
	if !tree.IsLeaf() || tree.Height() != 1 {
		t.Errorf("expected prune to collapse the tree into a single leaf")
	}
	checkTree(t, tree)
}

func TestHorizontalPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 500, 500), Config{MaxValues: 80, MaxDepth: 10})
	for i := range 100 {
		if err := tree.Add(i, linear.V2(float64(i), 0)); err != nil {
			t.Fatalf("cannot add point #%d: %v", i, err)
		}
	}
	entries, _ := tree.Query(linear.V2(50, 0))
	if len(entries) != 63 {
		t.Errorf("expected leaf of (50,0) to hold 63 entries, has %d", len(entries))
	}
	if err := tree.Add(100, linear.V2(0, 1)); err != nil {
		t.Fatal(err)
	}
	entries, _ = tree.Query(linear.V2(0, 0))
	if len(entries) != 64 {
		t.Errorf("expected leaf of (0,0) to hold 64 entries, has %d", len(entries))
	}
	checkTree(t, tree)
}

func TestOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), DefaultConfig())
	outside := linear.V2(101, 50)
	if err := tree.Add(1, outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected Add to fail with ErrOutOfBounds, have %v", err)
	}
	if _, err := tree.Query(outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected Query to fail with ErrOutOfBounds, have %v", err)
	}
	if _, err := tree.Remove(outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected Remove to fail with ErrOutOfBounds, have %v", err)
	}
	if err := tree.Add(1, linear.V2(100, 100)); err != nil {
		t.Errorf("expected corner point to be inside of the closed region, have %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("expected 1 entry, have %d", tree.Len())
	}
}

func TestSharedEdgeCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 1})
	tree.Add(1, linear.V2(50, 50))
	tree.Add(2, linear.V2(10, 10))
	checkTree(t, tree)
	if tree.Len() != 2 {
		t.Errorf("expected 2 distinct entries, have %d", tree.Len())
	}
	if n := rawCount(tree); n != 5 {
		t.Errorf("expected center point to be stored in all 4 leaves, have %d stored entries", n)
	}
	var values []int
	tree.ForEach(func(e Entry[int]) bool {
		values = append(values, e.Value)
		return true
	})
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Errorf("expected ForEach to report [1 2], have %v", values)
	}
	if _, err := tree.Remove(linear.V2(50, 50)); err != nil {
		t.Fatal(err)
	}
	if n := rawCount(tree); n != 1 || tree.Len() != 1 {
		t.Errorf("expected all copies to be removed, have %d stored entries", n)
	}
	checkTree(t, tree)
	if _, err := tree.Remove(linear.V2(50, 50)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected second remove to fail with ErrNotFound, have %v", err)
	}
}

func TestBorderOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 1, BorderSize: 10})
	tree.Add(1, linear.V2(52, 10))
	tree.Add(2, linear.V2(90, 90))
	checkTree(t, tree)
	if n := rawCount(tree); n != 3 {
		t.Errorf("expected (52,10) to be stored in TL and TR, have %d stored entries", n)
	}
	for _, q := range []Quadrant{TopLeft, TopRight} {
		if len(tree.root.children[q].entries) != 1 {
			t.Errorf("expected 1 entry in %v", q)
		}
	}
	if err := tree.Add(3, linear.V2(-3, -3)); err != nil {
		t.Errorf("expected point in border zone to be accepted, have %v", err)
	}
	if err := tree.Add(4, linear.V2(106, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected point beyond border zone to be rejected, have %v", err)
	}
	if n := len(tree.QueryRegion(spatial.FromXYWH(0, 0, 100, 100))); n != 2 {
		t.Errorf("expected region query to report 2 entries, have %d", n)
	}
}

func TestDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 2, MaxDepth: 3})
	for i := range 10 {
		tree.Add(i, linear.V2(1, 1))
	}
	checkTree(t, tree)
	if h := tree.Height(); h != 4 {
		t.Errorf("expected height to stop at 4, have %d", h)
	}
	entries, _ := tree.QueryMut(linear.V2(1, 1))
	if len(entries) != 10 {
		t.Errorf("expected deepest leaf to hold all 10 entries, has %d", len(entries))
	}
	for i := range 10 {
		e, err := tree.Remove(linear.V2(1, 1))
		if err != nil {
			t.Fatal(err)
		}
		if e.Value != i {
			t.Errorf("expected entries to be removed in insertion order, have %d at #%d", e.Value, i)
		}
	}
	tree.Prune()
	if !tree.IsLeaf() {
		t.Errorf("expected pruned tree to be a leaf")
	}
}

func TestSubdivideAndPrune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 4, MaxDepth: 10})
	points := []linear.Vec2{
		linear.V2(10, 10), linear.V2(60, 10), linear.V2(10, 60), linear.V2(60, 60), linear.V2(80, 80),
	}
	for i, p := range points[:4] {
		tree.Add(i, p)
	}
	if !tree.IsLeaf() {
		t.Fatalf("expected leaf to hold up to MaxValues entries")
	}
	tree.Add(4, points[4])
	if tree.IsLeaf() || tree.LeafCount() != 4 {
		t.Fatalf("expected leaf to be subdivided once")
	}
	checkTree(t, tree)
	tree.Remove(points[1])
	tree.Prune()
	if tree.IsLeaf() {
		t.Errorf("expected 4 entries to keep the branch")
	}
	tree.Remove(points[2])
	tree.Prune()
	if !tree.IsLeaf() {
		t.Fatalf("expected 3 entries to be joined into a leaf")
	}
	checkTree(t, tree)
	entries, _ := tree.Query(linear.V2(0, 0))
	want := []int{0, 3, 4}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries after join, have %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Value != want[i] {
			t.Errorf("expected joined entries in insertion order %v, have %d at #%d", want, e.Value, i)
		}
	}
}

func TestPruneKeepsSharedEntriesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 2, MaxDepth: 1})
	tree.Add(1, linear.V2(50, 50))
	tree.Add(2, linear.V2(10, 10))
	tree.Add(3, linear.V2(90, 90))
	tree.Remove(linear.V2(90, 90))
	tree.Prune()
	if tree.IsLeaf() {
		t.Fatalf("expected 2 distinct entries to keep the branch")
	}
	tree.Remove(linear.V2(10, 10))
	tree.Prune()
	if !tree.IsLeaf() {
		t.Fatalf("expected 1 distinct entry to be joined into a leaf")
	}
	if n := rawCount(tree); n != 1 {
		t.Errorf("expected border copies to be merged, have %d stored entries", n)
	}
	checkTree(t, tree)
}

func TestQueryMut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), DefaultConfig())
	tree.Add(1, linear.V2(20, 20))
	entries, err := tree.QueryMut(linear.V2(20, 20))
	if err != nil {
		t.Fatal(err)
	}
	entries[0].Value = 42
	copied, _ := tree.Query(linear.V2(20, 20))
	if copied[0].Value != 42 {
		t.Errorf("expected change through QueryMut to be visible, have %d", copied[0].Value)
	}
	copied[0].Value = 7
	if entries[0].Value != 42 {
		t.Errorf("expected Query to return a copy")
	}
}

func TestChangePos(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 4})
	tree.Add(1, linear.V2(10, 10))
	tree.Add(2, linear.V2(30, 30))
	if err := tree.ChangePos(linear.V2(10, 10), linear.V2(90, 90)); err != nil {
		t.Fatal(err)
	}
	if p, ok := Find(tree, 1); !ok || p != linear.V2(90, 90) {
		t.Errorf("expected value 1 at (90,90), have %v (found=%v)", p, ok)
	}
	if err := tree.ChangePos(linear.V2(90, 90), linear.V2(200, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, have %v", err)
	}
	if p, ok := Find(tree, 1); !ok || p != linear.V2(90, 90) {
		t.Errorf("expected failed move to leave value 1 at (90,90), have %v", p)
	}
	if err := tree.ChangePos(linear.V2(11, 11), linear.V2(20, 20)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, have %v", err)
	}
	if tree.Len() != 2 {
		t.Errorf("expected 2 entries, have %d", tree.Len())
	}
	checkTree(t, tree)
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree, _ := New[string](spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 2, MaxDepth: 4})
	tree.Add("a", linear.V2(10, 10))
	tree.Add("b", linear.V2(70, 10))
	tree.Add("c", linear.V2(70, 70))
	if p, ok := Find(tree, "c"); !ok || p != linear.V2(70, 70) {
		t.Errorf("expected to find c at (70,70), have %v", p)
	}
	if _, ok := Find(tree, "x"); ok {
		t.Errorf("expected not to find x")
	}
	p, ok := tree.FindFunc(func(s string) bool { return s > "a" })
	if !ok || p != linear.V2(70, 10) {
		t.Errorf("expected first match b at (70,10), have %v", p)
	}
}

func TestRemoveWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	region := spatial.FromXYWH(0, 0, 100, 100)
	exact := newTestTree(t, region, DefaultConfig())
	exact.Add(1, linear.V2(10, 10))
	if _, err := exact.Remove(linear.V2(10.005, 10)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected exact comparison to miss, have %v", err)
	}
	cfg := DefaultConfig()
	cfg.Epsilon = 0.01
	tolerant := newTestTree(t, region, cfg)
	tolerant.Add(1, linear.V2(10, 10))
	tolerant.Add(2, linear.V2(100, 100))
	if e, err := tolerant.Remove(linear.V2(10.005, 10)); err != nil || e.Value != 1 {
		t.Errorf("expected tolerant comparison to remove value 1, have %v", err)
	}
	if _, err := tolerant.Remove(linear.V2(100.005, 100)); err != nil {
		t.Errorf("expected tolerance to reach beyond the root box, have %v", err)
	}
}

func TestDescentLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 3})
	tree.Add(1, linear.V2(10, 10))
	tree.Add(2, linear.V2(90, 90))
	// let the top-left child point back to the root's children
	tree.root.children[TopLeft].children = tree.root.children
	if _, err := tree.Query(linear.V2(10, 10)); !errors.Is(err, ErrDescentLimit) {
		t.Errorf("expected cyclic tree to hit the descent limit, have %v", err)
	}
	if err := tree.Add(3, linear.V2(10, 10)); !errors.Is(err, ErrDescentLimit) {
		t.Errorf("expected Add on cyclic tree to hit the descent limit, have %v", err)
	}
	if _, err := tree.Remove(linear.V2(10, 10)); !errors.Is(err, ErrDescentLimit) {
		t.Errorf("expected Remove on cyclic tree to hit the descent limit, have %v", err)
	}
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected Check to reject cyclic tree, have %v", err)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 3})
	tree.Add(1, linear.V2(10, 10))
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected size mismatch to be detected, have %v", err)
	}
	tree.size--
	tree.root.entries = append(tree.root.entries, Entry[int]{Point: linear.V2(5, 5), serial: 99})
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected overfull leaf to be detected, have %v", err)
	}
}

func TestCheckDetectsMisplacedEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 1})
	tree.Add(1, linear.V2(10, 10))
	tree.Add(2, linear.V2(90, 90))
	checkTree(t, tree)
	tl, br := tree.root.children[TopLeft], tree.root.children[BottomRight]
	br.entries = append(br.entries, tl.entries...)
	tl.entries = nil
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected entry in wrong sibling to be detected, have %v", err)
	}
}

func TestCheckDetectsUnreachableCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 1})
	tree.Add(1, linear.V2(50, 50))
	tree.Add(2, linear.V2(90, 90))
	checkTree(t, tree)
	// drop the copy a point query for (50,50) would find
	tree.root.children[TopLeft].entries = nil
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected missing home copy to be detected, have %v", err)
	}
}

func TestFindSeesChangedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), Config{MaxValues: 1, MaxDepth: 1})
	tree.Add(1, linear.V2(50, 50))
	tree.Add(2, linear.V2(10, 10))
	entries, err := tree.QueryMut(linear.V2(50, 50))
	if err != nil {
		t.Fatal(err)
	}
	for i := range entries {
		if entries[i].Value == 1 {
			entries[i].Value = 42
		}
	}
	if p, ok := Find(tree, 1); ok {
		t.Errorf("expected old value to be gone, found at %v", p)
	}
	if p, ok := Find(tree, 42); !ok || p != linear.V2(50, 50) {
		t.Errorf("expected changed value at (50,50), have %v (found=%v)", p, ok)
	}
	var values []int
	tree.ForEach(func(e Entry[int]) bool {
		values = append(values, e.Value)
		return true
	})
	if len(values) != 2 || values[0] != 42 || values[1] != 2 {
		t.Errorf("expected ForEach to report [42 2], have %v", values)
	}
}

func TestBorderLimitsSubdivision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.BorderSize = 10
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), cfg)
	for i := range 17 {
		if err := tree.Add(i, linear.V2(50, 50)); err != nil {
			t.Fatal(err)
		}
	}
	checkTree(t, tree)
	if n := rawCount(tree); n != 4*17 {
		t.Errorf("expected center point to be copied into the 4 root quadrants only, have %d copies", n)
	}
	if n := tree.LeafCount(); n != 28 {
		t.Errorf("expected 28 leaves, have %d", n)
	}
	if h := tree.Height(); h != 4 {
		t.Errorf("expected subdivision to stop at quadrants of border size, height is %d", h)
	}
	//
	cfg = Config{MaxValues: 1, MaxDepth: MaxDepthLimit, BorderSize: 200}
	wide := newTestTree(t, spatial.FromXYWH(0, 0, 100, 100), cfg)
	wide.Add(1, linear.V2(10, 10))
	wide.Add(2, linear.V2(90, 90))
	if !wide.IsLeaf() || wide.LeafCount() != 1 {
		t.Errorf("expected border wider than the region to prevent subdivision")
	}
	checkTree(t, wide)
}

func TestContainmentAndInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecto")
	defer teardown()
	//
	tree := newTestTree(t, spatial.FromXYWH(0, 0, 1000, 1000), Config{MaxValues: 8, MaxDepth: 6, BorderSize: 20})
	points := randomPoints(500, 1000)
	for i, p := range points {
		if err := tree.Add(i, p); err != nil {
			t.Fatalf("cannot add %v: %v", p, err)
		}
	}
	checkTree(t, tree)
	for i, p := range points {
		if q, ok := Find(tree, i); !ok || q != p {
			t.Fatalf("expected value %d at %v, found %v", i, p, q)
		}
		entries, err := tree.Query(p)
		if err != nil {
			t.Fatal(err)
		}
		found := false
		for _, e := range entries {
			found = found || e.Value == i
		}
		if !found {
			t.Fatalf("expected query at %v to contain value %d", p, i)
		}
	}
	for i, p := range points {
		e, err := tree.Remove(p)
		if err != nil || e.Point != p || e.Value != i {
			t.Fatalf("expected to remove (%v,%d), have (%v,%d), err=%v", p, i, e.Point, e.Value, err)
		}
	}
	if tree.Len() != 0 || rawCount(tree) != 0 {
		t.Errorf("expected empty tree after removing all points")
	}
	tree.Prune()
	if !tree.IsLeaf() {
		t.Errorf("expected pruned tree to be a leaf")
	}
	checkTree(t, tree)
}

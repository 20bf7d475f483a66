package spatial

import "github.com/npillmayer/vecto/linear"

// Line is a directed line through A and B.
type Line struct {
	A, B linear.Vec2
}

// EdgeFunction tells on which side of the line p lies. The result is
// positive on one side, negative on the other and zero on the line itself;
// its magnitude is twice the area of the triangle (A, B, p).
func (l Line) EdgeFunction(p linear.Vec2) float64 {
	return (p.X-l.A.X)*(l.B.Y-l.A.Y) - (p.Y-l.A.Y)*(l.B.X-l.A.X)
}

// Triangle2D is a triangle in the plane.
type Triangle2D struct {
	A, B, C linear.Vec2
}

// NewTriangle2D creates a triangle from its corners.
func NewTriangle2D(a, b, c linear.Vec2) Triangle2D {
	return Triangle2D{A: a, B: b, C: c}
}

func (t Triangle2D) edges(p linear.Vec2) (ab, bc, ca float64) {
	return Line{t.A, t.B}.EdgeFunction(p),
		Line{t.B, t.C}.EdgeFunction(p),
		Line{t.C, t.A}.EdgeFunction(p)
}

// Contains reports whether p lies strictly inside the triangle. Both windings
// are accepted; points on an edge and degenerate triangles report false.
func (t Triangle2D) Contains(p linear.Vec2) bool {
	ab, bc, ca := t.edges(p)
	return (ab > 0 && bc > 0 && ca > 0) || (ab < 0 && bc < 0 && ca < 0)
}

// Barycentric returns the barycentric coordinates (u, v, w) of p with respect
// to corners A, B and C, such that p = u·A + v·B + w·C and u+v+w = 1.
// ok is false for a degenerate triangle.
func (t Triangle2D) Barycentric(p linear.Vec2) (u, v, w float64, ok bool) {
	area := Line{t.A, t.B}.EdgeFunction(t.C)
	if area == 0 {
		return 0, 0, 0, false
	}
	ab, bc, ca := t.edges(p)
	return bc / area, ca / area, ab / area, true
}

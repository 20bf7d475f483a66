package linear

import (
	"math"
	"strconv"
)

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V2 is a shorthand for creating a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies componentwise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides componentwise.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float64) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Scale multiplies every component by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// DivScalar divides every component by s.
func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z-component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the euclidean length.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Magnitude()
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return v.DivScalar(m)
}

// Clamp clamps every component into [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{clamp(v.X, min.X, max.X), clamp(v.Y, min.Y, max.Y)}
}

// Sum returns X+Y.
func (v Vec2) Sum() float64 {
	return v.X + v.Y
}

// Positive reports per axis whether the component is strictly positive.
// Zero and negative components (and NaN) count as non-positive.
func (v Vec2) Positive() (x, y bool) {
	return v.X > 0, v.Y > 0
}

// LessEq reports whether every component of v is <= the one of o.
func (v Vec2) LessEq(o Vec2) bool {
	return v.X <= o.X && v.Y <= o.Y
}

// GreaterEq reports whether every component of v is >= the one of o.
func (v Vec2) GreaterEq(o Vec2) bool {
	return v.X >= o.X && v.Y >= o.Y
}

// ApproxEqual compares per axis with tolerance eps. With eps == 0 this is
// exact equality.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	if eps == 0 {
		return v == o
	}
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// IsNaN reports whether any component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// IsFinite reports whether all components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec2) String() string {
	return "(" + ftoa(v.X) + "," + ftoa(v.Y) + ")"
}

func clamp(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

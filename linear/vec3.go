package linear

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a shorthand for creating a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromVec2 lifts a 2D vector into 3D with z = 0.
func FromVec2(v Vec2) Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul multiplies componentwise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div divides componentwise.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides every component by s.
func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude returns the euclidean length.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return o.Sub(v).Magnitude()
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	if m == 0 {
		return Vec3{}
	}
	return v.DivScalar(m)
}

// Clamp clamps every component into [min, max].
func (v Vec3) Clamp(min, max Vec3) Vec3 {
	return Vec3{
		clamp(v.X, min.X, max.X),
		clamp(v.Y, min.Y, max.Y),
		clamp(v.Z, min.Z, max.Z),
	}
}

// Sum returns X+Y+Z.
func (v Vec3) Sum() float64 {
	return v.X + v.Y + v.Z
}

// LessEq reports whether every component of v is <= the one of o.
func (v Vec3) LessEq(o Vec3) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z
}

// RotateX rotates v in place around the x axis by angle radians.
func (v *Vec3) RotateX(angle float64) {
	sin, cos := math.Sincos(angle)
	y, z := v.Y, v.Z
	v.Y = y*cos - z*sin
	v.Z = y*sin + z*cos
}

// RotateY rotates v in place around the y axis by angle radians.
func (v *Vec3) RotateY(angle float64) {
	sin, cos := math.Sincos(angle)
	x, z := v.X, v.Z
	v.X = x*cos + z*sin
	v.Z = -x*sin + z*cos
}

// RotateZ rotates v in place around the z axis by angle radians.
func (v *Vec3) RotateZ(angle float64) {
	sin, cos := math.Sincos(angle)
	x, y := v.X, v.Y
	v.X = x*cos - y*sin
	v.Y = x*sin + y*cos
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (v Vec3) String() string {
	return "(" + ftoa(v.X) + "," + ftoa(v.Y) + "," + ftoa(v.Z) + ")"
}

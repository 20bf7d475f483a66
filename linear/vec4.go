package linear

import "math"

// Vec4 is a 4D vector, mostly used for homogeneous coordinates.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a shorthand for creating a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the component-wise sum v+o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference v-o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div returns the component-wise quotient.
func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// AddScalar adds s to every component.
func (v Vec4) AddScalar(s float64) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SubScalar subtracts s from every component.
func (v Vec4) SubScalar(s float64) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Scale multiplies every component by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar divides every component by s.
func (v Vec4) DivScalar(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Magnitude returns the euclidean length.
func (v Vec4) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the euclidean distance between v and o.
func (v Vec4) Dist(o Vec4) float64 {
	return o.Sub(v).Magnitude()
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec4) Normalized() Vec4 {
	m := v.Magnitude()
	if m == 0 {
		return Vec4{}
	}
	return v.DivScalar(m)
}

// Clamp clamps every component into [min, max].
func (v Vec4) Clamp(min, max Vec4) Vec4 {
	return Vec4{
		clamp(v.X, min.X, max.X),
		clamp(v.Y, min.Y, max.Y),
		clamp(v.Z, min.Z, max.Z),
		clamp(v.W, min.W, max.W),
	}
}

// Sum returns X+Y+Z+W.
func (v Vec4) Sum() float64 {
	return v.X + v.Y + v.Z + v.W
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) String() string {
	return "(" + ftoa(v.X) + "," + ftoa(v.Y) + "," + ftoa(v.Z) + "," + ftoa(v.W) + ")"
}

package linear

import (
	"math"
	"strings"
)

// Mat3 is a 3x3 matrix of float64, stored in row-major order.
//
// Elements are addressed as (x, y) = (column, row), both 0-indexed.
// The zero value is the zero matrix.
type Mat3 struct {
	contents [9]float64
}

// Mat3FromArray creates a matrix from nine values in row-major order.
func Mat3FromArray(a [9]float64) Mat3 {
	return Mat3{contents: a}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Diag3 returns a matrix with v on its diagonal.
func Diag3(v Vec3) Mat3 {
	var m Mat3
	m.Set(0, 0, v.X)
	m.Set(1, 1, v.Y)
	m.Set(2, 2, v.Z)
	return m
}

func mat3Index(x, y int) int {
	assert(x >= 0 && x < 3, "Mat3 column index out of range")
	assert(y >= 0 && y < 3, "Mat3 row index out of range")
	return x + y*3
}

// Get returns the element at column x, row y.
func (m Mat3) Get(x, y int) float64 {
	return m.contents[mat3Index(x, y)]
}

// Set changes the element at column x, row y.
func (m *Mat3) Set(x, y int, val float64) {
	m.contents[mat3Index(x, y)] = val
}

// Row returns row y as a vector.
func (m Mat3) Row(y int) Vec3 {
	return Vec3{m.Get(0, y), m.Get(1, y), m.Get(2, y)}
}

// Col returns column x as a vector.
func (m Mat3) Col(x int) Vec3 {
	return Vec3{m.Get(x, 0), m.Get(x, 1), m.Get(x, 2)}
}

// Array returns the elements in row-major order.
func (m Mat3) Array() [9]float64 {
	return m.contents
}

// ColumnMajor returns the elements in column-major order, as expected by
// most graphics APIs.
func (m Mat3) ColumnMajor() [9]float64 {
	return m.Transpose().contents
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			t.Set(x, y, m.Get(y, x))
		}
	}
	return t
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var c Mat3
	for y := 0; y < 3; y++ {
		row := m.Row(y)
		for x := 0; x < 3; x++ {
			c.Set(x, y, row.Dot(o.Col(x)))
		}
	}
	return c
}

// MulVec returns the product m·v, treating v as a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// Scale returns diag(v)·m, scaling row i of m by component i of v.
func (m Mat3) Scale(v Vec3) Mat3 {
	return Diag3(v).Mul(m)
}

// Rotation3 returns the matrix rotating by angle radians around axis.
// axis is expected to be of unit length.
//
// See http://www.songho.ca/opengl/gl_matrix.html
func Rotation3(angle float64, axis Vec3) Mat3 {
	s, c := math.Sincos(angle)
	c1 := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Mat3FromArray([9]float64{
		c1*x*x + c, c1*x*y - s*z, c1*x*z + s*y,
		c1*x*y + s*z, c1*y*y + c, c1*y*z - s*x,
		c1*x*z - s*y, c1*y*z + s*x, c1*z*z + c,
	})
}

// Rotate returns m·Rotation3(angle, axis).
func (m Mat3) Rotate(angle float64, axis Vec3) Mat3 {
	return m.Mul(Rotation3(angle, axis))
}

// IsNaN reports whether any element is NaN.
func (m Mat3) IsNaN() bool {
	for _, e := range m.contents {
		if math.IsNaN(e) {
			return true
		}
	}
	return false
}

func (m Mat3) String() string {
	var b strings.Builder
	for y := 0; y < 3; y++ {
		b.WriteString("[")
		for x := 0; x < 3; x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			b.WriteString(ftoa(m.Get(x, y)))
		}
		b.WriteString("]")
		if y < 2 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

package linear

// Mat4 is a 4x4 matrix, stored in row-major order.
type Mat4[N Number] struct {
	contents [16]N
}

// NewMat4 creates a matrix from 16 values in row-major order.
func NewMat4[N Number](contents [16]N) Mat4[N] {
	return Mat4[N]{contents: contents}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[N Number]() Mat4[N] {
	var m Mat4[N]
	for i := 0; i < 4; i++ {
		m.contents[i*5] = 1
	}
	return m
}

// Translation4 returns a matrix translating homogeneous column vectors by
// (x, y, z).
func Translation4[N Number](x, y, z N) Mat4[N] {
	m := Identity4[N]()
	m.contents[3] = x
	m.contents[7] = y
	m.contents[11] = z
	return m
}

// At returns the element at column x, row y.
func (m Mat4[N]) At(x, y int) N {
	assert(x >= 0 && x < 4 && y >= 0 && y < 4, "Mat4 index out of range")
	return m.contents[x+y*4]
}

// Array returns the elements in row-major order.
func (m Mat4[N]) Array() [16]N {
	return m.contents
}

// Transpose returns the transposed matrix.
func (m Mat4[N]) Transpose() Mat4[N] {
	c := m.contents
	return NewMat4([16]N{
		c[0], c[4], c[8], c[12],
		c[1], c[5], c[9], c[13],
		c[2], c[6], c[10], c[14],
		c[3], c[7], c[11], c[15],
	})
}

// Mul returns the matrix product m·o.
func (m Mat4[N]) Mul(o Mat4[N]) Mat4[N] {
	var r Mat4[N]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var sum N
			for k := 0; k < 4; k++ {
				sum += m.contents[k+y*4] * o.contents[x+k*4]
			}
			r.contents[x+y*4] = sum
		}
	}
	return r
}

// MulVec returns the product m·v, treating v as a column vector.
func (m Mat4[N]) MulVec(v [4]N) [4]N {
	var r [4]N
	for y := 0; y < 4; y++ {
		for k := 0; k < 4; k++ {
			r[y] += m.contents[k+y*4] * v[k]
		}
	}
	return r
}

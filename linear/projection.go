package linear

import "math"

// Ortho describes an orthographic view volume. Matrix maps it to clip space
// with x and y in [-1, 1] and depth in [0, 1], looking down the negative z axis.
type Ortho[F Float] struct {
	Left, Right, Top, Bottom, Near, Far F
}

// OrthoFromSize creates a view volume of the given width and height, centered
// at the origin.
func OrthoFromSize[F Float](width, height, near, far F) Ortho[F] {
	hw, hh := width/2, height/2
	return Ortho[F]{
		Left:   -hw,
		Right:  hw,
		Top:    hh,
		Bottom: -hh,
		Near:   near,
		Far:    far,
	}
}

// Matrix returns the projection matrix in row-major order. Use
// Transpose().Array() for APIs expecting column-major storage.
func (o Ortho[F]) Matrix() Mat4[F] {
	return NewMat4([16]F{
		2 / (o.Right - o.Left), 0, 0, (o.Right + o.Left) / (o.Left - o.Right),
		0, 2 / (o.Top - o.Bottom), 0, (o.Top + o.Bottom) / (o.Bottom - o.Top),
		0, 0, 1 / (o.Near - o.Far), o.Near / (o.Near - o.Far),
		0, 0, 0, 1,
	})
}

// Perspective describes a symmetric perspective frustum.
type Perspective[F Float] struct {
	FovY   Angle[F] // vertical field of view
	Aspect F        // width / height
	Near   F
	Far    F
}

// Matrix returns the projection matrix in row-major order. Points at
// z = -Near map to depth 0, points at z = -Far to depth 1 (after the
// perspective divide).
func (p Perspective[F]) Matrix() Mat4[F] {
	fovy := float64(p.FovY.AsRadians())
	f := F(1 / math.Tan(fovy/2))
	rangeInv := 1 / (p.Near - p.Far)
	return NewMat4([16]F{
		f / p.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, p.Far * rangeInv, p.Far * p.Near * rangeInv,
		0, 0, -1, 0,
	})
}

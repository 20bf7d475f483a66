/*
Package spatial holds simple 2D geometric shapes: axis-aligned boxes, lines
and triangles.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package spatial

import (
	"fmt"

	"github.com/npillmayer/vecto/linear"
)

// AABB is an axis-aligned bounding box given by its minimum corner and its
// size. Boxes are closed: points on the border are inside.
type AABB struct {
	Start linear.Vec2
	Size  linear.Vec2
}

// NewAABB creates a box from its minimum corner and its size.
func NewAABB(start, size linear.Vec2) AABB {
	return AABB{Start: start, Size: size}
}

// FromXYWH creates a box from x, y, width and height.
func FromXYWH(x, y, w, h float64) AABB {
	return AABB{Start: linear.V2(x, y), Size: linear.V2(w, h)}
}

// End returns the maximum corner.
func (b AABB) End() linear.Vec2 {
	return b.Start.Add(b.Size)
}

// Center returns the midpoint of the box.
func (b AABB) Center() linear.Vec2 {
	return b.Start.Add(b.Size.DivScalar(2))
}

// Contains reports whether p lies within [Start, Start+Size] on both axes.
// A point with NaN components is never contained.
func (b AABB) Contains(p linear.Vec2) bool {
	return p.GreaterEq(b.Start) && p.LessEq(b.End())
}

// Intersects reports whether b and o share at least one point.
func (b AABB) Intersects(o AABB) bool {
	be, oe := b.End(), o.End()
	return b.Start.X <= oe.X && o.Start.X <= be.X &&
		b.Start.Y <= oe.Y && o.Start.Y <= be.Y
}

// Inflate grows the box by d on every side. A negative d shrinks it.
func (b AABB) Inflate(d float64) AABB {
	return AABB{
		Start: b.Start.SubScalar(d),
		Size:  b.Size.AddScalar(2 * d),
	}
}

// Quadrants splits the box into four boxes of half the size, in the order
// top-left, top-right, bottom-left, bottom-right. "Top" is the side of the
// minimum y coordinate.
func (b AABB) Quadrants() [4]AABB {
	half := b.Size.DivScalar(2)
	mid := b.Start.Add(half)
	return [4]AABB{
		{Start: b.Start, Size: half},
		{Start: linear.V2(mid.X, b.Start.Y), Size: half},
		{Start: linear.V2(b.Start.X, mid.Y), Size: half},
		{Start: mid, Size: half},
	}
}

// IsValid reports whether the box has finite coordinates and a non-negative
// size.
func (b AABB) IsValid() bool {
	return b.Start.IsFinite() && b.Size.IsFinite() && b.Size.X >= 0 && b.Size.Y >= 0
}

func (b AABB) String() string {
	return fmt.Sprintf("[%v..%v]", b.Start, b.End())
}

/*
Package linear provides small vector and matrix types for 2D and 3D math.

Vectors (Vec2, Vec3, Vec4) are float64 value types; all operations return new
values and never modify the receiver, with the exception of the in-place
rotation helpers on Vec3. Mat3 is a row-major 3x3 float64 matrix. Mat4 and
Angle are generic over the number type, so callers may pick float32 for GPU
uploads and float64 elsewhere.

Comparison of vectors is componentwise only: a vector is less-or-equal to
another if every component is. This is not a total order.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package linear

import "golang.org/x/exp/constraints"

// Number is the set of element types usable in generic matrices.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of element types usable for angles and projections.
type Float interface {
	constraints.Float
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

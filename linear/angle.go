package linear

import "math"

// ToRadians converts degrees to radians.
func ToRadians[F Float](deg F) F {
	return deg * (F(math.Pi) / 180)
}

// ToDegrees converts radians to degrees.
func ToDegrees[F Float](rad F) F {
	return rad * (180 / F(math.Pi))
}

// Angle is an angle which remembers the unit it was created in.
// The zero value is an angle of 0 radians.
type Angle[F Float] struct {
	value   F
	degrees bool
}

// Radians creates an angle from radians.
func Radians[F Float](v F) Angle[F] {
	return Angle[F]{value: v}
}

// Degrees creates an angle from degrees.
func Degrees[F Float](v F) Angle[F] {
	return Angle[F]{value: v, degrees: true}
}

// IsDegrees reports whether a was created from degrees.
func (a Angle[F]) IsDegrees() bool {
	return a.degrees
}

// AsRadians returns the angle in radians.
func (a Angle[F]) AsRadians() F {
	if a.degrees {
		return ToRadians(a.value)
	}
	return a.value
}

// AsDegrees returns the angle in degrees.
func (a Angle[F]) AsDegrees() F {
	if a.degrees {
		return a.value
	}
	return ToDegrees(a.value)
}

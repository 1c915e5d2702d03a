package brushpaint

// Vec represents a 2D vector used for texture sizes, offsets and jitter
// ranges.
type Vec struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec.
func V2(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether both components are finite.
func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// String renders the vector as "<x, y>".
func (v Vec) String() string {
	return "<" + formatScalar(v.X) + ", " + formatScalar(v.Y) + ">"
}

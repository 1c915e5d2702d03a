package brushpaint

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec) Matrix {
	return Matrix{
		A: 1, B: 0, C: v.X,
		D: 0, E: 1, F: v.Y,
	}
}

// Scale creates a scaling matrix.
func Scale(v Vec) Matrix {
	return Matrix{
		A: v.X, B: 0, C: 0,
		D: 0, E: v.Y, F: 0,
	}
}

// Rotate creates a rotation matrix.
func Rotate(a Angle) Matrix {
	cos := math.Cos(float64(a))
	sin := math.Sin(float64(a))
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms v as a point (translation included).
func (m Matrix) Apply(v Vec) Vec {
	return Vec{
		X: m.A*v.X + m.B*v.Y + m.C,
		Y: m.D*v.X + m.E*v.Y + m.F,
	}
}

// Aff3 converts m to the x/image affine representation, which uses the
// same row-major layout.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

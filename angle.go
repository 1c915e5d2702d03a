package brushpaint

import (
	"math"
	"strconv"
)

// Angle is a planar angle measured in radians.
//
// Angles are plain values: any float64 is representable, including NaN and
// the infinities. Validate rejects non-finite angles before a configuration
// reaches the renderer.
type Angle float64

// Common angles.
const (
	Pi     Angle = math.Pi
	HalfPi Angle = math.Pi / 2
	TwoPi  Angle = 2 * math.Pi
)

// Radians returns an Angle of r radians.
func Radians(r float64) Angle {
	return Angle(r)
}

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// IsFinite reports whether the angle is neither NaN nor infinite.
func (a Angle) IsFinite() bool {
	return isFinite(float64(a))
}

// String renders the angle as a multiple of π with up to three significant
// digits, e.g. "0.5π" for HalfPi and "0π" for the zero angle.
func (a Angle) String() string {
	return strconv.FormatFloat(foldZero(float64(a)/math.Pi), 'g', 3, 64) + "π"
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// foldZero maps negative zero to positive zero. Equal values must print and
// hash identically, and -0 == 0.
func foldZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// formatScalar prints f the way every scalar in a canonical string is
// printed: %g with six significant digits.
func formatScalar(f float64) string {
	return strconv.FormatFloat(foldZero(f), 'g', 6, 64)
}

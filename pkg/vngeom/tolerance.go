// Package vngeom holds the vector-network engine's curve math: 2D vector
// helpers, the single source of truth for its epsilon constants, cubic
// Bézier evaluation/flattening, and the point-to-segment/point-to-cubic
// distance routines shared by planarization and picking.
package vngeom

import "math"

// Epsilon constants. Every other package imports these rather than
// redeclaring tolerances, so a tuning change has one home.
const (
	EPSPos          = 1e-4
	EPSLen          = 1e-6
	EPSDenom        = 1e-8
	EPSFaceArea     = 1e-2
	EPSAng          = 1e-6
	EPSConstraint   = 1e-3
	QuantScale      = 10.0
	MaxFlattenDepth = 16

	FlattenToleranceDefault = 0.25
	FlattenToleranceMin     = 0.01
	FlattenToleranceMax     = 10.0
)

// Vec2 is a 2D point or offset. Public fields are float32 to match the
// wire format (§3 of the spec); internal math runs in float64 for
// cross-platform determinism (see DESIGN.md's note on
// intersect_segments's f64-internal discipline).
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Len returns the Euclidean length computed in float64.
func (v Vec2) Len() float64 {
	return math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y))
}

// Norm returns the unit vector and its length. If the length is at or
// below EPSLen, the zero vector is returned with length 0, matching
// original_source/contour/src/geometry/tolerance.rs::norm2.
func (v Vec2) Norm() (Vec2, float64) {
	l := v.Len()
	if l <= EPSLen {
		return Vec2{}, 0
	}
	inv := float32(1.0 / l)
	return Vec2{v.X * inv, v.Y * inv}, l
}

func Clamp01(t float64) float64 { return Clamp(t, 0, 1) }

func Clamp(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

func NearZero(v float64) bool { return math.Abs(v) <= EPSDenom }

func ApproxEqual(a, b float32) bool { return math.Abs(float64(a-b)) <= EPSPos }

// SafeDiv returns num/den, or fallback if |den| <= EPSDenom.
func SafeDiv(num, den, fallback float64) float64 {
	if math.Abs(den) <= EPSDenom {
		return fallback
	}
	return num / den
}

func IsFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

package vngeom

// Cubic is the four control points of a cubic Bézier: P0, P3 are the
// edge's node positions, P1 = a.pos + ha, P2 = b.pos + hb.
type Cubic struct {
	P0, P1, P2, P3 Vec2
}

// Point evaluates B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
// All arithmetic happens in float64 and is rounded back to float32 once,
// matching contour::geometry::math::cubic_point.
func (c Cubic) Point(t float64) Vec2 {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	b0 := mt3
	b1 := 3 * mt2 * t
	b2 := 3 * mt * t2
	b3 := t3
	x := b0*float64(c.P0.X) + b1*float64(c.P1.X) + b2*float64(c.P2.X) + b3*float64(c.P3.X)
	y := b0*float64(c.P0.Y) + b1*float64(c.P1.Y) + b2*float64(c.P2.Y) + b3*float64(c.P3.Y)
	return Vec2{float32(x), float32(y)}
}

// BendCoeffs returns (c1, c2) = (3(1-t)^2 t, 3(1-t) t^2), the sensitivity
// of B(t) to a unit perturbation of P1 and P2 respectively.
func BendCoeffs(t float64) (c1, c2 float64) {
	mt := 1 - t
	return 3 * mt * mt * t, 3 * mt * t * t
}

// deCasteljauSplit splits a cubic at t=0.5 into two cubics covering
// [0,0.5] and [0.5,1], by repeated linear interpolation.
func deCasteljauSplit(c Cubic) (left, right Cubic) {
	lerp := func(a, b Vec2) Vec2 {
		return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	}
	p01 := lerp(c.P0, c.P1)
	p12 := lerp(c.P1, c.P2)
	p23 := lerp(c.P2, c.P3)
	p012 := lerp(p01, p12)
	p123 := lerp(p12, p23)
	p0123 := lerp(p012, p123)
	left = Cubic{c.P0, p01, p012, p0123}
	right = Cubic{p0123, p123, p23, c.P3}
	return
}

// distPointToSegSq returns the squared distance from p to the segment ab.
func distPointToSegSq(p, a, b Vec2) float64 {
	d2, _ := SegDistanceSq(p, a, b)
	return d2
}

// flatness measures how far P1, P2 deviate from the chord P0-P3, as the
// max of the two squared perpendicular distances.
func flatness(c Cubic) float64 {
	d1 := distPointToSegSq(c.P1, c.P0, c.P3)
	d2 := distPointToSegSq(c.P2, c.P0, c.P3)
	if d1 > d2 {
		return d1
	}
	return d2
}

// FlattenCubic recursively subdivides c via de Casteljau until flatness is
// within tol (squared) or depth hits MaxFlattenDepth, appending sampled
// points (excluding the start point, which the caller already has) to out.
//
// The depth guard mirrors original_source/contour/src/geometry/flatten.rs
// exactly: "depth > 16" is the forced-stop test, so depth 16 itself still
// gets one flatness check before the recursion is cut off (see DESIGN.md
// Open Question (d)).
func FlattenCubic(c Cubic, tol float64, out []Vec2) []Vec2 {
	return flattenRec(c, tol*tol, 0, out)
}

func flattenRec(c Cubic, tol2 float64, depth int, out []Vec2) []Vec2 {
	if flatness(c) <= tol2 || depth > MaxFlattenDepth {
		return append(out, c.P3)
	}
	left, right := deCasteljauSplit(c)
	out = flattenRec(left, tol2, depth+1, out)
	out = flattenRec(right, tol2, depth+1, out)
	return out
}

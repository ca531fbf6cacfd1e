package vngeom

// SegIntersectionKind tags the outcome of intersecting two segments.
type SegIntersectionKind int

const (
	IntersectNone SegIntersectionKind = iota
	IntersectProper
	IntersectTouch
	IntersectCollinearOverlap
)

// SegIntersection is the tagged result of intersecting segment (a0,a1)
// with (b0,b1). Only the fields relevant to Kind are meaningful.
// Grounded on original_source/contour/src/geometry/intersect.rs.
type SegIntersection struct {
	Kind       SegIntersectionKind
	T, U       float64 // Proper/Touch: parameter along each segment
	X, Y       float64 // Proper/Touch: intersection point
	T0, T1     float64 // CollinearOverlap: overlap range along segment a
	U0, U1     float64 // CollinearOverlap: overlap range along segment b
}

func orient(o, a, b Vec2) float64 {
	return float64(a.X-o.X)*float64(b.Y-o.Y) - float64(a.Y-o.Y)*float64(b.X-o.X)
}

func signOf(v float64) int {
	if v > EPSDenom {
		return 1
	}
	if v < -EPSDenom {
		return -1
	}
	return 0
}

// IntersectSegments classifies the intersection of (a0,a1) and (b0,b1)
// using exact f64 orientation predicates, matching
// contour::geometry::intersect::intersect_segments.
func IntersectSegments(a0, a1, b0, b1 Vec2) SegIntersection {
	d1 := orient(b0, b1, a0)
	d2 := orient(b0, b1, a1)
	d3 := orient(a0, a1, b0)
	d4 := orient(a0, a1, b1)

	s1, s2, s3, s4 := signOf(d1), signOf(d2), signOf(d3), signOf(d4)

	if s1 == 0 && s2 == 0 && s3 == 0 && s4 == 0 {
		return collinearOverlap(a0, a1, b0, b1)
	}

	if ((s1 > 0 && s2 < 0) || (s1 < 0 && s2 > 0)) &&
		((s3 > 0 && s4 < 0) || (s3 < 0 && s4 > 0)) {
		t, u := lineParams(a0, a1, b0, b1)
		x := float64(a0.X) + t*float64(a1.X-a0.X)
		y := float64(a0.Y) + t*float64(a1.Y-a0.Y)
		if isEndpointish(t) || isEndpointish(u) {
			return SegIntersection{Kind: IntersectTouch, T: Clamp01(t), U: Clamp01(u), X: x, Y: y}
		}
		if t >= -EPSPos && t <= 1+EPSPos && u >= -EPSPos && u <= 1+EPSPos {
			return SegIntersection{Kind: IntersectProper, T: Clamp01(t), U: Clamp01(u), X: x, Y: y}
		}
		return SegIntersection{Kind: IntersectNone}
	}

	return SegIntersection{Kind: IntersectNone}
}

func isEndpointish(t float64) bool {
	return t <= EPSPos || t >= 1-EPSPos
}

func lineParams(a0, a1, b0, b1 Vec2) (t, u float64) {
	x1, y1 := float64(a0.X), float64(a0.Y)
	x2, y2 := float64(a1.X), float64(a1.Y)
	x3, y3 := float64(b0.X), float64(b0.Y)
	x4, y4 := float64(b1.X), float64(b1.Y)
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if NearZero(denom) {
		return -1, -1
	}
	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u = ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / denom
	return
}

// collinearOverlap handles the case where all four orientation predicates
// are ~0: project onto the dominant axis and compute the overlap range.
func collinearOverlap(a0, a1, b0, b1 Vec2) SegIntersection {
	dx := float64(a1.X - a0.X)
	dy := float64(a1.Y - a0.Y)
	var proj func(v Vec2) float64
	var length float64
	if dx*dx >= dy*dy {
		length = dx
		proj = func(v Vec2) float64 { return float64(v.X) }
	} else {
		length = dy
		proj = func(v Vec2) float64 { return float64(v.Y) }
	}
	if NearZero(length) {
		// Degenerate point segment a: treat as touch if b contains it.
		pa := proj(a0)
		pb0, pb1 := proj(b0), proj(b1)
		lo, hi := pb0, pb1
		if lo > hi {
			lo, hi = hi, lo
		}
		if pa < lo-EPSPos || pa > hi+EPSPos {
			return SegIntersection{Kind: IntersectNone}
		}
		u := SafeDiv(pa-pb0, pb1-pb0, 0)
		return SegIntersection{Kind: IntersectTouch, T: 0, U: Clamp01(u), X: float64(a0.X), Y: float64(a0.Y)}
	}
	origin := proj(a0)
	ta0, ta1 := 0.0, 1.0
	tb0 := (proj(b0) - origin) / length
	tb1 := (proj(b1) - origin) / length
	lo0, hi0 := ta0, ta1
	lo1, hi1 := tb0, tb1
	if lo1 > hi1 {
		lo1, hi1 = hi1, lo1
	}
	lo := lo0
	if lo1 > lo {
		lo = lo1
	}
	hi := hi0
	if hi1 < hi {
		hi = hi1
	}
	if lo > hi+EPSPos {
		return SegIntersection{Kind: IntersectNone}
	}
	u0 := SafeDiv(lo-tb0, tb1-tb0, 0)
	u1 := SafeDiv(hi-tb0, tb1-tb0, 0)
	return SegIntersection{Kind: IntersectCollinearOverlap, T0: Clamp01(lo), T1: Clamp01(hi), U0: Clamp01(u0), U1: Clamp01(u1)}
}

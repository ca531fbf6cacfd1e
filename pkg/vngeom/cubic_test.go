package vngeom

import "testing"

func TestCubicPointEndpoints(t *testing.T) {
	c := Cubic{P0: Vec2{0, 0}, P1: Vec2{1, 3}, P2: Vec2{2, 3}, P3: Vec2{3, 0}}
	if p := c.Point(0); p != c.P0 {
		t.Fatalf("Point(0) = %v, want %v", p, c.P0)
	}
	if p := c.Point(1); p != c.P3 {
		t.Fatalf("Point(1) = %v, want %v", p, c.P3)
	}
}

func TestFlattenCubicLineIsTwoPoints(t *testing.T) {
	c := Cubic{P0: Vec2{0, 0}, P1: Vec2{1, 0}, P2: Vec2{2, 0}, P3: Vec2{3, 0}}
	pts := FlattenCubic(c, 0.25, nil)
	if len(pts) != 1 {
		t.Fatalf("expected a flat cubic (all points on the chord) to flatten to a single trailing point, got %d", len(pts))
	}
	if pts[0] != c.P3 {
		t.Fatalf("last point = %v, want %v", pts[0], c.P3)
	}
}

func TestFlattenCubicRespectsDepthCap(t *testing.T) {
	// A wildly oscillating "cubic" (control points far off the chord)
	// forces recursion to the depth cap rather than looping forever.
	c := Cubic{P0: Vec2{0, 0}, P1: Vec2{1000, 1000}, P2: Vec2{-1000, -1000}, P3: Vec2{1, 0}}
	pts := FlattenCubic(c, 0.01, nil)
	maxPoints := 1 << (MaxFlattenDepth + 2)
	if len(pts) > maxPoints {
		t.Fatalf("flatten produced %d points, exceeding the depth-cap bound %d", len(pts), maxPoints)
	}
	if len(pts) == 0 {
		t.Fatal("flatten produced no points")
	}
}

func TestBendCoeffsSumSquares(t *testing.T) {
	c1, c2 := BendCoeffs(0.5)
	if c1 <= 0 || c2 <= 0 {
		t.Fatalf("expected positive coefficients at t=0.5, got c1=%v c2=%v", c1, c2)
	}
	if c1 != c2 {
		t.Fatalf("expected symmetric coefficients at t=0.5, got c1=%v c2=%v", c1, c2)
	}
}

func TestSegDistanceSqClampsProjection(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 0}
	d2, tt := SegDistanceSq(Vec2{-5, 3}, a, b)
	if tt != 0 {
		t.Fatalf("expected projection to clamp to 0, got %v", tt)
	}
	if d2 != 25+9 {
		t.Fatalf("expected distance to endpoint a, got d2=%v", d2)
	}
}

func TestIntersectSegmentsProperCross(t *testing.T) {
	res := IntersectSegments(Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{10, 0})
	if res.Kind != IntersectProper {
		t.Fatalf("expected proper crossing, got %v", res.Kind)
	}
	if !ApproxEqual(float32(res.X), 5) || !ApproxEqual(float32(res.Y), 5) {
		t.Fatalf("expected crossing at (5,5), got (%v,%v)", res.X, res.Y)
	}
}

func TestIntersectSegmentsDisjointParallel(t *testing.T) {
	res := IntersectSegments(Vec2{0, 0}, Vec2{10, 0}, Vec2{0, 5}, Vec2{10, 5})
	if res.Kind != IntersectNone {
		t.Fatalf("expected no intersection between parallel segments, got %v", res.Kind)
	}
}

func TestIntersectSegmentsCollinearOverlap(t *testing.T) {
	res := IntersectSegments(Vec2{0, 0}, Vec2{10, 0}, Vec2{5, 0}, Vec2{15, 0})
	if res.Kind != IntersectCollinearOverlap {
		t.Fatalf("expected collinear overlap, got %v", res.Kind)
	}
}

package vnstore

import (
	"math"

	"github.com/chazu/vecnet/pkg/vngeom"
)

const (
	freehandRDPEpsilon    = 1.5
	freehandResampleStep  = 8.0
	freehandCuspAngleDeg  = 45.0
	freehandHandlePortion = 0.35
)

// AddFreehand fits a chain of nodes/edges through a raw stroke of sampled
// points: Douglas-Peucker simplification, cusp detection on the
// simplified polyline, then even-arc-length resampling between cusps.
// Edges with a cusp at either end (the stroke's first point counts as a
// cusp, and so does its last when the stroke is open) become Line edges;
// all other edges become Cubic edges with Catmull-Rom-derived handles. Grounded on
// original_source/contour/src/lib.rs::add_freehand (rdp/angle_between/
// resample_even helpers), adapted from the wasm boundary's raw-slice
// output to build directly into this Store.
func (s *Store) AddFreehand(points []vngeom.Vec2, close bool) []EdgeID {
	if len(points) < 2 {
		return nil
	}

	simplified := rdp(points, freehandRDPEpsilon)
	if len(simplified) < 2 {
		return nil
	}

	cusp := make([]bool, len(simplified))
	cusp[0] = true
	cusp[len(simplified)-1] = true
	for i := 1; i < len(simplified)-1; i++ {
		a := angleBetween(simplified[i-1], simplified[i], simplified[i+1])
		if a < freehandCuspAngleDeg*math.Pi/180 {
			cusp[i] = true
		}
	}

	fitted := resampleEven(simplified, cusp, freehandResampleStep, close)
	if len(fitted) < 2 {
		return nil
	}

	ids := make([]NodeID, len(fitted))
	for i, p := range fitted {
		id, _ := s.AddNode(p.pos.X, p.pos.Y)
		ids[i] = id
	}

	n := len(fitted)
	segCount := n - 1
	if close {
		segCount = n
	}

	var edgeIDs []EdgeID
	for i := 0; i < segCount; i++ {
		a := i
		b := (i + 1) % n
		if fitted[a].cusp || fitted[b].cusp {
			id, ok := s.AddEdge(ids[a], ids[b])
			if ok {
				edgeIDs = append(edgeIDs, id)
			}
			continue
		}
		prev := fitted[(a-1+n)%n].pos
		next2 := fitted[(b+1)%n].pos
		p0, p3 := fitted[a].pos, fitted[b].pos
		tanA := p3.Sub(prev).Scale(freehandHandlePortion)
		tanB := p0.Sub(next2).Scale(freehandHandlePortion)
		id, ok := s.AddEdge(ids[a], ids[b])
		if !ok {
			continue
		}
		s.SetEdgeCubic(id, p0.X+tanA.X, p0.Y+tanA.Y, p3.X+tanB.X, p3.Y+tanB.Y)
		edgeIDs = append(edgeIDs, id)
	}
	return edgeIDs
}

func perpDist2(p, a, b vngeom.Vec2) float64 {
	ab := b.Sub(a)
	ab2 := float64(ab.X)*float64(ab.X) + float64(ab.Y)*float64(ab.Y)
	if ab2 < vngeom.EPSDenom {
		d := p.Sub(a)
		return float64(d.X)*float64(d.X) + float64(d.Y)*float64(d.Y)
	}
	ap := p.Sub(a)
	cross := float64(ab.X)*float64(ap.Y) - float64(ab.Y)*float64(ap.X)
	return cross * cross / ab2
}

// rdp is the classic recursive Douglas-Peucker simplification.
func rdp(points []vngeom.Vec2, epsilon float64) []vngeom.Vec2 {
	if len(points) < 3 {
		return append([]vngeom.Vec2(nil), points...)
	}
	var rec func(pts []vngeom.Vec2) []vngeom.Vec2
	rec = func(pts []vngeom.Vec2) []vngeom.Vec2 {
		if len(pts) < 3 {
			return pts
		}
		first, last := pts[0], pts[len(pts)-1]
		maxDist := -1.0
		maxIdx := -1
		eps2 := epsilon * epsilon
		for i := 1; i < len(pts)-1; i++ {
			d := perpDist2(pts[i], first, last)
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}
		if maxDist <= eps2 || maxIdx < 0 {
			return []vngeom.Vec2{first, last}
		}
		left := rec(pts[:maxIdx+1])
		right := rec(pts[maxIdx:])
		out := append([]vngeom.Vec2(nil), left[:len(left)-1]...)
		return append(out, right...)
	}
	return rec(points)
}

// angleBetween returns the interior angle (radians) at b formed by a-b-c.
func angleBetween(a, b, c vngeom.Vec2) float64 {
	v1 := a.Sub(b)
	v2 := c.Sub(b)
	_, l1 := v1.Norm()
	_, l2 := v2.Norm()
	if l1 < vngeom.EPSLen || l2 < vngeom.EPSLen {
		return math.Pi
	}
	dot := (float64(v1.X)*float64(v2.X) + float64(v1.Y)*float64(v2.Y)) / (l1 * l2)
	dot = vngeom.Clamp(dot, -1, 1)
	return math.Acos(dot)
}

type fittedPoint struct {
	pos  vngeom.Vec2
	cusp bool
}

// resampleEven walks the simplified polyline and emits points spaced
// `step` apart along arc length, always keeping cusp vertices exactly
// (never smoothing across them) and tracking leftover distance in a
// carry accumulator between segments, matching resample_even's approach
// in original_source/contour/src/lib.rs.
func resampleEven(pts []vngeom.Vec2, cusp []bool, step float64, closed bool) []fittedPoint {
	if len(pts) < 2 {
		return nil
	}
	out := []fittedPoint{{pos: pts[0], cusp: true}}
	carry := 0.0
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		segVec := b.Sub(a)
		_, segLen := segVec.Norm()
		if segLen < vngeom.EPSLen {
			continue
		}
		dist := carry
		for dist < segLen {
			t := dist / segLen
			p := vngeom.Vec2{
				X: a.X + segVec.X*float32(t),
				Y: a.Y + segVec.Y*float32(t),
			}
			out = append(out, fittedPoint{pos: p})
			dist += step
		}
		carry = dist - segLen
		if cusp[(i+1)%n] {
			out = append(out, fittedPoint{pos: b, cusp: true})
			carry = 0
		}
	}
	if !closed {
		last := pts[n-1]
		if len(out) == 0 || out[len(out)-1].pos != last {
			out = append(out, fittedPoint{pos: last, cusp: true})
		} else {
			out[len(out)-1].cusp = true
		}
	}
	return out
}

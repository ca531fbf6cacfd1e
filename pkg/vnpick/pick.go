// Package vnpick resolves a screen-space click to the nearest pickable
// entity in a store: a cubic handle, a node, or a point along an edge,
// in that priority order.
package vnpick

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// Kind identifies what a Pick landed on.
type Kind int

const (
	KindNone Kind = iota
	KindHandle
	KindNode
	KindEdge
)

// Result describes the winning candidate. HandleEnd (0=P1, 1=P2) and T
// (the edge parameter, for Edge picks) are only meaningful for their
// respective Kind.
type Result struct {
	Kind       Kind
	NodeID     vnstore.NodeID
	EdgeID     vnstore.EdgeID
	HandleEnd  uint8
	T          float64
	DistanceSq float64
}

// Pick returns the highest-priority entity within tol of (x,y): a
// handle first, then a node, then a point on an edge. Grounded on
// original_source/contour/src/algorithms/picking.rs::pick_impl.
func Pick(s *vnstore.Store, x, y, tol float32) (Result, bool) {
	p := vngeom.Vec2{X: x, Y: y}
	tol2 := float64(tol) * float64(tol)

	if r, ok := bestHandle(s, p, tol2); ok {
		return r, true
	}
	if r, ok := bestNode(s, p, tol2); ok {
		return r, true
	}
	if r, ok := bestEdge(s, p, tol2); ok {
		return r, true
	}
	return Result{}, false
}

func bestHandle(s *vnstore.Store, p vngeom.Vec2, tol2 float64) (Result, bool) {
	found := false
	var best Result
	for _, id := range s.EdgeIDs() {
		p1, p2, ok := s.GetHandles(id)
		if !ok {
			continue
		}
		if d := distSq(p, p1); d <= tol2 && (!found || d < best.DistanceSq) {
			best = Result{Kind: KindHandle, EdgeID: id, HandleEnd: 0, DistanceSq: d}
			found = true
		}
		if d := distSq(p, p2); d <= tol2 && (!found || d < best.DistanceSq) {
			best = Result{Kind: KindHandle, EdgeID: id, HandleEnd: 1, DistanceSq: d}
			found = true
		}
	}
	return best, found
}

func bestNode(s *vnstore.Store, p vngeom.Vec2, tol2 float64) (Result, bool) {
	found := false
	var best Result
	for _, id := range s.NodeIDs() {
		pos, ok := s.GetNode(id)
		if !ok {
			continue
		}
		d := distSq(p, pos)
		if d <= tol2 && (!found || d < best.DistanceSq) {
			best = Result{Kind: KindNode, NodeID: id, DistanceSq: d}
			found = true
		}
	}
	return best, found
}

func bestEdge(s *vnstore.Store, p vngeom.Vec2, tol2 float64) (Result, bool) {
	found := false
	var best Result
	for _, id := range s.EdgeIDs() {
		e := s.GetEdge(id)
		if e == nil {
			continue
		}
		a := s.NodePos(e.A)
		b := s.NodePos(e.B)
		switch k := e.Kind.(type) {
		case vnstore.LineKind:
			d, t := vngeom.SegDistanceSq(p, a, b)
			if d <= tol2 && (!found || d < best.DistanceSq) {
				best = Result{Kind: KindEdge, EdgeID: id, T: t, DistanceSq: d}
				found = true
			}
		case vnstore.CubicKind:
			// Distance to the flattened polyline; t is its arc-length fraction.
			cubic := vngeom.Cubic{P0: a, P1: a.Add(k.HA), P2: b.Add(k.HB), P3: b}
			pts := vngeom.FlattenCubic(cubic, float64(s.FlattenTolerance()), nil)
			if d, t, ok := polylineDistanceSq(p, a, b, pts[:len(pts)-1]); ok && d <= tol2 && (!found || d < best.DistanceSq) {
				best = Result{Kind: KindEdge, EdgeID: id, T: t, DistanceSq: d}
				found = true
			}
		case vnstore.PolylineKind:
			if d, t, ok := polylineDistanceSq(p, a, b, k.Points); ok && d <= tol2 && (!found || d < best.DistanceSq) {
				best = Result{Kind: KindEdge, EdgeID: id, T: t, DistanceSq: d}
				found = true
			}
		}
	}
	return best, found
}

// polylineDistanceSq scans every chord (endpoint-interior-endpoint) and
// maps the winning chord's local parameter to a global t via arc-length
// fraction, matching picking.rs's polyline branch.
func polylineDistanceSq(p, a, b vngeom.Vec2, points []vngeom.Vec2) (float64, float64, bool) {
	chain := make([]vngeom.Vec2, 0, len(points)+2)
	chain = append(chain, a)
	chain = append(chain, points...)
	chain = append(chain, b)

	lengths := make([]float64, len(chain)-1)
	total := 0.0
	for i := 0; i < len(chain)-1; i++ {
		lengths[i] = float64(chain[i].Sub(chain[i+1]).Len())
		total += lengths[i]
	}
	if total < vngeom.EPSLen {
		return 0, 0, false
	}

	bestDist := -1.0
	bestT := 0.0
	traveled := 0.0
	for i := 0; i < len(chain)-1; i++ {
		d, localT := vngeom.SegDistanceSq(p, chain[i], chain[i+1])
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestT = (traveled + localT*lengths[i]) / total
		}
		traveled += lengths[i]
	}
	return bestDist, bestT, true
}

func distSq(a, b vngeom.Vec2) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}

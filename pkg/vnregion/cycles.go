package vnregion

import (
	"math"

	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// findSimpleCycles is the §4.5 fallback: when WalkFaces yields no
// bounded faces at all, degree-2 cycles are found directly on the
// store's node/edge graph and their boundaries are reconstructed from
// each edge's real geometry (flattened cubics, polyline interior
// points, or straight chords) rather than from planarized chord
// segments. Grounded on
// original_source/contour/src/algorithms/regions.rs::find_simple_cycles.
func findSimpleCycles(s *vnstore.Store) []Face {
	adj := make(map[vnstore.NodeID][]vnstore.NodeID)
	edgeByPair := make(map[[2]vnstore.NodeID]vnstore.EdgeID)
	for _, id := range s.EdgeIDs() {
		e := s.GetEdge(id)
		if e == nil || e.A == e.B {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
		edgeByPair[pairKey(e.A, e.B)] = id
	}

	visited := make(map[vnstore.NodeID]bool, len(adj))
	var faces []Face
	for start, neigh := range adj {
		if len(neigh) != 2 || visited[start] {
			continue
		}

		cycle := []vnstore.NodeID{start}
		prev, cur := start, start
		closed := false
		for steps := 0; steps < maxFaceSteps; steps++ {
			visited[cur] = true
			next, found := otherNeighbor(adj[cur], prev)
			if !found {
				break
			}
			if next == start {
				closed = true
				break
			}
			cycle = append(cycle, next)
			prev, cur = cur, next
		}
		if !closed || len(cycle) < 3 {
			continue
		}

		if face, ok := buildCycleFace(s, edgeByPair, cycle); ok {
			faces = append(faces, face)
		}
	}
	return faces
}

func otherNeighbor(neigh []vnstore.NodeID, prev vnstore.NodeID) (vnstore.NodeID, bool) {
	for _, n := range neigh {
		if n != prev {
			return n, true
		}
	}
	return 0, false
}

func pairKey(a, b vnstore.NodeID) [2]vnstore.NodeID {
	if a < b {
		return [2]vnstore.NodeID{a, b}
	}
	return [2]vnstore.NodeID{b, a}
}

// buildCycleFace walks the node cycle, appending each connecting edge's
// real geometry to the boundary polygon, and reports false if the
// polygon degenerates to fewer than 3 points or an area below
// vngeom.EPSFaceArea.
func buildCycleFace(s *vnstore.Store, edgeByPair map[[2]vnstore.NodeID]vnstore.EdgeID, cycle []vnstore.NodeID) (Face, bool) {
	var poly []vngeom.Vec2
	var seq []vnstore.EdgeID
	n := len(cycle)
	for i := 0; i < n; i++ {
		u := cycle[i]
		v := cycle[(i+1)%n]
		id, ok := edgeByPair[pairKey(u, v)]
		if !ok {
			return Face{}, false
		}
		e := s.GetEdge(id)
		if e == nil {
			return Face{}, false
		}
		a := s.NodePos(u)
		b := s.NodePos(v)
		if len(poly) == 0 {
			poly = append(poly, a)
		}
		switch k := e.Kind.(type) {
		case vnstore.LineKind:
			poly = append(poly, b)
		case vnstore.CubicKind:
			p1, p2 := a.Add(k.HA), b.Add(k.HB)
			if e.A != u {
				p1, p2 = a.Add(k.HB), b.Add(k.HA)
			}
			cubic := vngeom.Cubic{P0: a, P1: p1, P2: p2, P3: b}
			pts := vngeom.FlattenCubic(cubic, float64(s.FlattenTolerance()), nil)
			poly = append(poly, pts...)
		case vnstore.PolylineKind:
			pts := k.Points
			if e.A != u {
				pts = reversedPoints(pts)
			}
			poly = append(poly, pts...)
			poly = append(poly, b)
		}
		if len(seq) == 0 || seq[len(seq)-1] != id {
			seq = append(seq, id)
		}
	}
	if len(poly) >= 2 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	if len(seq) > 1 && seq[0] == seq[len(seq)-1] {
		seq = seq[:len(seq)-1]
	}
	if len(poly) < 3 {
		return Face{}, false
	}
	area, centroid := shoelacePoints(poly)
	if math.Abs(area) < vngeom.EPSFaceArea {
		return Face{}, false
	}
	return Face{Area: area, Centroid: centroid, EdgeSeq: seq}, true
}

func reversedPoints(pts []vngeom.Vec2) []vngeom.Vec2 {
	out := make([]vngeom.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// shoelacePoints computes signed area and centroid directly from a
// flattened boundary polygon, mirroring facewalk.go's shoelace but
// without the planarize.Graph vertex-index indirection: the fallback
// path never builds a planarize.Graph.
func shoelacePoints(poly []vngeom.Vec2) (float64, vngeom.Vec2) {
	var area, cx, cy float64
	n := len(poly)
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		cross := float64(p0.X)*float64(p1.Y) - float64(p1.X)*float64(p0.Y)
		area += cross
		cx += (float64(p0.X) + float64(p1.X)) * cross
		cy += (float64(p0.Y) + float64(p1.Y)) * cross
	}
	area *= 0.5
	if math.Abs(area) < vngeom.EPSDenom {
		return area, avgVec2(poly)
	}
	cx /= 6 * area
	cy /= 6 * area
	return area, vngeom.Vec2{X: float32(cx), Y: float32(cy)}
}

func avgVec2(pts []vngeom.Vec2) vngeom.Vec2 {
	var sx, sy float64
	for _, p := range pts {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(pts))
	return vngeom.Vec2{X: float32(sx / n), Y: float32(sy / n)}
}

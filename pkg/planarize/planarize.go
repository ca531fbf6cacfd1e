package planarize

import (
	"math"
	"sort"

	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// Vertex is a planar-graph vertex: the average of every raw point that
// quantized to the same cell (spec.md §4.4 "position averaging").
type Vertex struct {
	Pos vngeom.Vec2
}

// HalfEdge is one direction of a planar-graph edge. Every planar edge is
// represented by exactly two HalfEdges, each other's Twin, both carrying
// the id of the vnstore edge they were cut from.
type HalfEdge struct {
	Origin, Dest int
	Twin         int
	SourceEdge   vnstore.EdgeID
}

// Graph is the planar arrangement handed to pkg/vnregion for face
// walking.
type Graph struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
}

// Options configures broadphase selection; the grid strategy is the
// default and suits the common case of a moderate, roughly-uniform-
// density sketch. UseRTree switches to the R-tree strategy, better suited
// to very large inputs with tight spatial clusters.
type Options struct {
	UseRTree bool
}

// Planarize computes every pairwise crossing among the store's edges and
// returns the resulting half-edge arrangement. It never mutates the
// store.
func Planarize(s *vnstore.Store, opts Options) *Graph {
	segs := extractSegments(s)
	if len(segs) == 0 {
		return &Graph{}
	}

	var bp broadphase = gridBroadphase{}
	if opts.UseRTree {
		bp = rtreeBroadphase{}
	}
	pairs := bp.candidatePairs(segs)

	breakpoints := make([][]float64, len(segs))
	for _, pr := range pairs {
		i, j := pr[0], pr[1]
		res := vngeom.IntersectSegments(segs[i].a, segs[i].b, segs[j].a, segs[j].b)
		switch res.Kind {
		case vngeom.IntersectProper, vngeom.IntersectTouch:
			breakpoints[i] = append(breakpoints[i], res.T)
			breakpoints[j] = append(breakpoints[j], res.U)
		case vngeom.IntersectCollinearOverlap:
			breakpoints[i] = append(breakpoints[i], res.T0, res.T1)
			breakpoints[j] = append(breakpoints[j], res.U0, res.U1)
		}
	}

	reg := &vertexRegistry{keyToIndex: make(map[[2]int64]int)}
	var g Graph

	for i, seg := range segs {
		ts := dedupSortedT(breakpoints[i])
		prevIdx := reg.add(seg.a)
		for _, t := range ts {
			p := lerp(seg.a, seg.b, t)
			idx := reg.add(p)
			if idx != prevIdx {
				addHalfEdgePair(&g, prevIdx, idx, seg.sourceEdge)
			}
			prevIdx = idx
		}
		endIdx := reg.add(seg.b)
		if endIdx != prevIdx {
			addHalfEdgePair(&g, prevIdx, endIdx, seg.sourceEdge)
		}
	}

	g.Vertices = make([]Vertex, len(reg.verts))
	for i, p := range reg.verts {
		g.Vertices[i] = Vertex{Pos: p}
	}
	return &g
}

func addHalfEdgePair(g *Graph, a, b int, src vnstore.EdgeID) {
	i1 := len(g.HalfEdges)
	i2 := i1 + 1
	g.HalfEdges = append(g.HalfEdges,
		HalfEdge{Origin: a, Dest: b, Twin: i2, SourceEdge: src},
		HalfEdge{Origin: b, Dest: a, Twin: i1, SourceEdge: src},
	)
}

func lerp(a, b vngeom.Vec2, t float64) vngeom.Vec2 {
	return vngeom.Vec2{
		X: a.X + (b.X-a.X)*float32(t),
		Y: a.Y + (b.Y-a.Y)*float32(t),
	}
}

// dedupSortedT sorts and collapses parameter values that fall within
// EPSPos-equivalent distance of one another (expressed in t-space via a
// fixed tolerance, since segment lengths vary).
func dedupSortedT(ts []float64) []float64 {
	if len(ts) == 0 {
		return nil
	}
	sort.Float64s(ts)
	out := ts[:0:0]
	const tTol = 1e-6
	for _, t := range ts {
		if t <= 0+tTol || t >= 1-tTol {
			continue
		}
		if len(out) > 0 && t-out[len(out)-1] < tTol {
			continue
		}
		out = append(out, t)
	}
	return out
}

// vertexRegistry deduplicates points into vertices by quantized cell,
// averaging the position of every contributor that lands in the same
// cell (spec.md §4.4).
type vertexRegistry struct {
	keyToIndex map[[2]int64]int
	verts      []vngeom.Vec2
	counts     []int
}

func quantKey(p vngeom.Vec2) [2]int64 {
	return [2]int64{
		int64(math.Round(float64(p.X) * vngeom.QuantScale)),
		int64(math.Round(float64(p.Y) * vngeom.QuantScale)),
	}
}

func (r *vertexRegistry) add(p vngeom.Vec2) int {
	key := quantKey(p)
	if idx, ok := r.keyToIndex[key]; ok {
		n := float32(r.counts[idx])
		r.verts[idx] = vngeom.Vec2{
			X: (r.verts[idx].X*n + p.X) / (n + 1),
			Y: (r.verts[idx].Y*n + p.Y) / (n + 1),
		}
		r.counts[idx]++
		return idx
	}
	idx := len(r.verts)
	r.keyToIndex[key] = idx
	r.verts = append(r.verts, p)
	r.counts = append(r.counts, 1)
	return idx
}

// Package vnregion walks a planarize.Graph into closed faces, keys each
// one so fill state survives incidental re-planarization, and persists
// fill/color across geometry edits by nearest-centroid remap when a key
// disappears (spec.md §4.5).
package vnregion

import (
	"math"
	"sort"

	"github.com/chazu/vecnet/pkg/planarize"
)

// rotation indexes, per vertex, the outgoing half-edges sorted by angle
// ascending (which is CCW, since atan2 increases counter-clockwise).
type rotation struct {
	outgoing map[int][]int // vertex -> half-edge indices, angle-sorted ascending
	posInRot map[int]int   // half-edge index -> its position within outgoing[origin]
}

func buildRotation(g *planarize.Graph) *rotation {
	byVertex := make(map[int][]int)
	for i, he := range g.HalfEdges {
		byVertex[he.Origin] = append(byVertex[he.Origin], i)
	}
	pos := make(map[int]int)
	for v, edges := range byVertex {
		sort.Slice(edges, func(a, b int) bool {
			return angleOf(g, edges[a]) < angleOf(g, edges[b])
		})
		for i, heIdx := range edges {
			pos[heIdx] = i
		}
		byVertex[v] = edges
	}
	return &rotation{outgoing: byVertex, posInRot: pos}
}

func angleOf(g *planarize.Graph, heIdx int) float64 {
	he := g.HalfEdges[heIdx]
	o := g.Vertices[he.Origin].Pos
	d := g.Vertices[he.Dest].Pos
	return math.Atan2(float64(d.Y-o.Y), float64(d.X-o.X))
}

// next returns the following half-edge in the same CCW face boundary as
// he: the neighbor immediately clockwise of he's twin in the twin's
// origin vertex's angle-sorted rotation. This is the standard planar
// half-edge face-tracing rule (Left-hand rule per spec.md §4.5).
func (r *rotation) next(g *planarize.Graph, he int) int {
	twin := g.HalfEdges[he].Twin
	v := g.HalfEdges[twin].Origin
	list := r.outgoing[v]
	if len(list) == 0 {
		return twin
	}
	p := r.posInRot[twin]
	prev := (p - 1 + len(list)) % len(list)
	return list[prev]
}

// Package planarize turns a vnstore.Store's raw node/edge graph into a
// planar arrangement: every pairwise edge crossing becomes a new vertex,
// and the result is expressed as a half-edge graph ready for face
// walking by pkg/vnregion.
package planarize

import (
	"math"

	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// segment is one straight piece contributed by a source edge: either the
// whole of a Line edge, or one chord of a flattened Cubic/Polyline edge.
type segment struct {
	a, b       vngeom.Vec2
	sourceEdge vnstore.EdgeID
	chainIndex int // position of this chord within its source edge's flattened chain
}

func bbox(s segment) (minX, minY, maxX, maxY float64) {
	minX = math.Min(float64(s.a.X), float64(s.b.X))
	maxX = math.Max(float64(s.a.X), float64(s.b.X))
	minY = math.Min(float64(s.a.Y), float64(s.b.Y))
	maxY = math.Max(float64(s.a.Y), float64(s.b.Y))
	return
}

// extractSegments walks every live edge and produces its constituent
// straight chords: Line contributes one, Polyline contributes one per
// consecutive point pair (including its two node endpoints), and Cubic is
// flattened first via vngeom.FlattenCubic at the store's current
// tolerance.
func extractSegments(s *vnstore.Store) []segment {
	var out []segment
	for _, id := range s.EdgeIDs() {
		e := s.GetEdge(id)
		if e == nil {
			continue
		}
		a := s.NodePos(e.A)
		b := s.NodePos(e.B)
		switch k := e.Kind.(type) {
		case vnstore.LineKind:
			out = append(out, segment{a: a, b: b, sourceEdge: id})
		case vnstore.CubicKind:
			cubic := vngeom.Cubic{P0: a, P1: a.Add(k.HA), P2: b.Add(k.HB), P3: b}
			pts := vngeom.FlattenCubic(cubic, float64(s.FlattenTolerance()), nil)
			prev := a
			for i, p := range pts {
				out = append(out, segment{a: prev, b: p, sourceEdge: id, chainIndex: i})
				prev = p
			}
		case vnstore.PolylineKind:
			prev := a
			for i, p := range k.Points {
				out = append(out, segment{a: prev, b: p, sourceEdge: id, chainIndex: i})
				prev = p
			}
			out = append(out, segment{a: prev, b: b, sourceEdge: id, chainIndex: len(k.Points)})
		}
	}
	return out
}

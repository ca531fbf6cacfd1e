package vnapi

import (
	"strconv"

	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// AddEdge is the strict counterpart of (*vnstore.Store).AddEdge.
func AddEdge(s *vnstore.Store, a, b vnstore.NodeID) Result {
	if _, exists := s.GetNode(a); !exists {
		return fail(invalidID("node", uint64(a)))
	}
	if _, exists := s.GetNode(b); !exists {
		return fail(invalidID("node", uint64(b)))
	}
	if a == b {
		return fail(invalidEdge("an edge's two endpoints must be distinct nodes"))
	}
	id, added := s.AddEdge(a, b)
	if !added {
		return fail(internalError("failed to add edge"))
	}
	return ok(id)
}

// RemoveEdge is the strict counterpart of (*vnstore.Store).RemoveEdge.
func RemoveEdge(s *vnstore.Store, id vnstore.EdgeID) Result {
	if s.GetEdge(id) == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	s.RemoveEdge(id)
	return okVoid()
}

// SetEdgeLine is the strict counterpart of (*vnstore.Store).SetEdgeLine.
func SetEdgeLine(s *vnstore.Store, id vnstore.EdgeID) Result {
	if s.GetEdge(id) == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	s.SetEdgeLine(id)
	return okVoid()
}

// SetEdgeCubic is the strict counterpart of
// (*vnstore.Store).SetEdgeCubic.
func SetEdgeCubic(s *vnstore.Store, id vnstore.EdgeID, p1x, p1y, p2x, p2y float32) Result {
	if s.GetEdge(id) == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	for field, v := range map[string]float32{"p1x": p1x, "p1y": p1y, "p2x": p2x, "p2y": p2y} {
		if !vngeom.IsFinite32(v) {
			return fail(nonFinite(field))
		}
	}
	s.SetEdgeCubic(id, p1x, p1y, p2x, p2y)
	return okVoid()
}

// AddPolylineEdge is the strict counterpart of
// (*vnstore.Store).AddPolylineEdge.
func AddPolylineEdge(s *vnstore.Store, a, b vnstore.NodeID, points []vngeom.Vec2, cap int) Result {
	if _, exists := s.GetNode(a); !exists {
		return fail(invalidID("node", uint64(a)))
	}
	if _, exists := s.GetNode(b); !exists {
		return fail(invalidID("node", uint64(b)))
	}
	if a == b {
		return fail(invalidEdge("an edge's two endpoints must be distinct nodes"))
	}
	if len(points) > cap {
		return fail(capsExceeded("polyline points per edge", cap))
	}
	for i, p := range points {
		if !vngeom.IsFinite32(p.X) || !vngeom.IsFinite32(p.Y) {
			return fail(nonFinite("points[" + strconv.Itoa(i) + "]"))
		}
	}
	id, added := s.AddPolylineEdge(a, b, points)
	if !added {
		return fail(internalError("failed to add polyline edge"))
	}
	return ok(id)
}

// SetEdgeStyle is the strict counterpart of
// (*vnstore.Store).SetEdgeStyle.
func SetEdgeStyle(s *vnstore.Store, id vnstore.EdgeID, r, g, b, a uint8, width float32) Result {
	if s.GetEdge(id) == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	if !vngeom.IsFinite32(width) || width <= 0 {
		return fail(outOfRange("width", float64(width), 0, 1e9))
	}
	s.SetEdgeStyle(id, r, g, b, a, width)
	return okVoid()
}

package vnstore

import "github.com/chazu/vecnet/pkg/vngeom"

// AddPolylineEdge creates a Polyline edge between two live, distinct
// nodes with the given interior points.
func (s *Store) AddPolylineEdge(a, b NodeID, points []vngeom.Vec2) (EdgeID, bool) {
	if a == b || s.nodeAt(a) == nil || s.nodeAt(b) == nil {
		return 0, false
	}
	for _, p := range points {
		if !vngeom.IsFinite32(p.X) || !vngeom.IsFinite32(p.Y) {
			return 0, false
		}
	}
	e := &Edge{A: a, B: b, Kind: PolylineKind{Points: append([]vngeom.Vec2(nil), points...)}}
	id := s.allocEdge(e)
	s.bumpGeom()
	return id, true
}

// SetEdgePolyline converts a live edge to Polyline with the given points.
func (s *Store) SetEdgePolyline(id EdgeID, points []vngeom.Vec2) bool {
	e := s.edgeAt(id)
	if e == nil {
		return false
	}
	for _, p := range points {
		if !vngeom.IsFinite32(p.X) || !vngeom.IsFinite32(p.Y) {
			return false
		}
	}
	e.Kind = PolylineKind{Points: append([]vngeom.Vec2(nil), points...)}
	s.bumpGeom()
	return true
}

// GetPolylinePoints returns the interior points of a polyline edge.
func (s *Store) GetPolylinePoints(id EdgeID) ([]vngeom.Vec2, bool) {
	e := s.edgeAt(id)
	if e == nil {
		return nil, false
	}
	pk, ok := e.Kind.(PolylineKind)
	if !ok {
		return nil, false
	}
	return pk.Points, true
}

// SetEdgeStyle sets optional cosmetic stroke color/width (SPEC_FULL.md §3
// supplement). Pure metadata: does not affect geometry or region keys.
func (s *Store) SetEdgeStyle(id EdgeID, r, g, b, a uint8, width float32) bool {
	e := s.edgeAt(id)
	if e == nil || !vngeom.IsFinite32(width) || width <= 0 {
		return false
	}
	e.Stroke = &Color{R: r, G: g, B: b, A: a}
	e.StrokeWidth = width
	return true
}

// GetEdgeStyle returns the edge's stroke color and width, if set.
func (s *Store) GetEdgeStyle(id EdgeID) (Color, float32, bool) {
	e := s.edgeAt(id)
	if e == nil || e.Stroke == nil {
		return Color{}, 0, false
	}
	return *e.Stroke, e.StrokeWidth, true
}

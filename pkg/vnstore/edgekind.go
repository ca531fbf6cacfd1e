package vnstore

import "github.com/chazu/vecnet/pkg/vngeom"

// SetEdgeLine converts a live edge to Line, discarding any handle/point
// data.
func (s *Store) SetEdgeLine(id EdgeID) bool {
	e := s.edgeAt(id)
	if e == nil {
		return false
	}
	e.Kind = LineKind{}
	s.bumpGeom()
	return true
}

// SetEdgeCubic sets absolute handle positions p1, p2 (control points, not
// offsets); if both resulting offsets have length < EPSLen the edge
// collapses back to a Line, matching spec.md §4.1's
// "set_edge_cubic(id,p1,p2): bool; if both offsets have length < EPS_LEN
// keep as Line".
func (s *Store) SetEdgeCubic(id EdgeID, p1x, p1y, p2x, p2y float32) bool {
	e := s.edgeAt(id)
	if e == nil {
		return false
	}
	if !vngeom.IsFinite32(p1x) || !vngeom.IsFinite32(p1y) || !vngeom.IsFinite32(p2x) || !vngeom.IsFinite32(p2y) {
		return false
	}
	a := s.nodes[e.A].Pos
	b := s.nodes[e.B].Pos
	ha := vngeom.Vec2{X: p1x - a.X, Y: p1y - a.Y}
	hb := vngeom.Vec2{X: p2x - b.X, Y: p2y - b.Y}
	if ha.Len() < vngeom.EPSLen && hb.Len() < vngeom.EPSLen {
		e.Kind = LineKind{}
	} else {
		e.Kind = CubicKind{HA: ha, HB: hb, Mode: Free}
	}
	s.bumpGeom()
	return true
}

// GetHandles returns absolute handle positions (P1, P2) for a cubic edge.
func (s *Store) GetHandles(id EdgeID) (p1, p2 vngeom.Vec2, ok bool) {
	e := s.edgeAt(id)
	if e == nil {
		return vngeom.Vec2{}, vngeom.Vec2{}, false
	}
	ck, isCubic := e.Kind.(CubicKind)
	if !isCubic {
		return vngeom.Vec2{}, vngeom.Vec2{}, false
	}
	a := s.nodes[e.A].Pos
	b := s.nodes[e.B].Pos
	return a.Add(ck.HA), b.Add(ck.HB), true
}

// GetHandleMode returns the constraint mode of a cubic edge.
func (s *Store) GetHandleMode(id EdgeID) (HandleMode, bool) {
	e := s.edgeAt(id)
	if e == nil {
		return Free, false
	}
	ck, isCubic := e.Kind.(CubicKind)
	if !isCubic {
		return Free, false
	}
	return ck.Mode, true
}

// SetHandlePos moves handle `end` (0=HA, 1=HB) to the absolute position
// (x,y), then re-enforces the edge's constraint mode with the touched end
// as the edited end (spec.md §4.2).
func (s *Store) SetHandlePos(id EdgeID, end uint8, x, y float32) bool {
	e := s.edgeAt(id)
	if e == nil || end > 1 || !vngeom.IsFinite32(x) || !vngeom.IsFinite32(y) {
		return false
	}
	ck, isCubic := e.Kind.(CubicKind)
	if !isCubic {
		return false
	}
	a := s.nodes[e.A].Pos
	b := s.nodes[e.B].Pos
	if end == 0 {
		ck.HA = vngeom.Vec2{X: x - a.X, Y: y - a.Y}
	} else {
		ck.HB = vngeom.Vec2{X: x - b.X, Y: y - b.Y}
	}
	EnforceHandleConstraints(&ck, end)
	e.Kind = ck
	s.bumpGeom()
	return true
}

// SetHandleMode changes the constraint mode and immediately renormalizes
// the handles to satisfy it, using end 0 as the default driver when no
// end was just edited (spec.md §4.2's Mirrored "no edited end" clause).
func (s *Store) SetHandleMode(id EdgeID, mode HandleMode) bool {
	e := s.edgeAt(id)
	if e == nil || !mode.Valid() {
		return false
	}
	ck, isCubic := e.Kind.(CubicKind)
	if !isCubic {
		return false
	}
	ck.Mode = mode
	EnforceHandleConstraints(&ck, 0)
	e.Kind = ck
	s.bumpGeom()
	return true
}

// EnforceHandleConstraints applies the Free/Mirrored/Aligned rule to ck in
// place, given which end (0=HA, 1=HB) was just edited. Grounded on
// original_source/contour/src/lib.rs::enforce_handle_constraints.
func EnforceHandleConstraints(ck *CubicKind, editedEnd uint8) {
	switch ck.Mode {
	case Free:
		return
	case Mirrored:
		if editedEnd == 0 {
			ck.HB = ck.HA.Neg()
		} else {
			ck.HA = ck.HB.Neg()
		}
	case Aligned:
		var driver, other *vngeom.Vec2
		if editedEnd == 0 {
			driver, other = &ck.HA, &ck.HB
		} else {
			driver, other = &ck.HB, &ck.HA
		}
		unit, length := driver.Norm()
		if length < vngeom.EPSLen {
			return
		}
		otherLen := other.Len()
		*other = unit.Neg().Scale(float32(otherLen))
	}
}

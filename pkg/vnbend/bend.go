// Package vnbend implements the handle-bend solver: given a point on a
// cubic edge (or a line edge, auto-promoted to cubic) and a desired
// target position for that point, it computes the minimal-norm
// perturbation of the two handle offsets that satisfies the bend while
// leaving the endpoints untouched.
package vnbend

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// DefaultLineToCubicHandleFraction controls how far the auto-inserted
// handles sit from the endpoints when a Line edge is bent for the first
// time, expressed as a fraction of the chord length (spec.md §4.3).
const DefaultLineToCubicHandleFraction = 0.30

// BendEdgeTo perturbs edge id's cubic handles so that the point at
// parameter t moves onto (tx,ty); the edge's handle-mode constraint is
// re-applied afterwards. stiffness must be positive but does not scale
// the result. Line edges are auto-converted to Cubic with handles at 30%
// of the chord length before solving. Reports false on any non-finite
// input, an out-of-range t, non-positive stiffness, an unknown edge, or
// an edge whose endpoints are closer than vngeom.EPSLen.
func BendEdgeTo(s *vnstore.Store, id vnstore.EdgeID, t, tx, ty, stiffness float32) bool {
	if !vngeom.IsFinite32(t) || t < 0 || t > 1 {
		return false
	}
	if !vngeom.IsFinite32(tx) || !vngeom.IsFinite32(ty) {
		return false
	}
	if !vngeom.IsFinite32(stiffness) || stiffness <= 0 {
		return false
	}

	e := s.GetEdge(id)
	if e == nil {
		return false
	}
	if s.NodePos(e.B).Sub(s.NodePos(e.A)).Len() < vngeom.EPSLen {
		return false
	}

	if e.IsLine() {
		if !promoteLineToCubic(s, id) {
			return false
		}
		e = s.GetEdge(id)
	}
	if !e.IsCubic() {
		return false
	}

	ck, _ := e.Kind.(vnstore.CubicKind)
	a := s.NodePos(e.A)
	b := s.NodePos(e.B)
	cubic := vngeom.Cubic{
		P0: a,
		P1: a.Add(ck.HA),
		P2: b.Add(ck.HB),
		P3: b,
	}

	current := cubic.Point(float64(t))
	dx := float64(tx) - float64(current.X)
	dy := float64(ty) - float64(current.Y)
	if vngeom.NearZero(dx) && vngeom.NearZero(dy) {
		return true
	}

	c1, c2 := vngeom.BendCoeffs(float64(t))

	// Solve c1*d1 + c2*d2 = (dx,dy) for the minimal-norm (d1,d2) under the
	// symmetric weighting lambda1=lambda2=stiffness (DESIGN.md Open
	// Question (a)): d_i = lambda * c_i / (c1^2*lambda + c2^2*lambda) *
	// delta, and lambda cancels exactly, leaving d_i = c_i/(c1^2+c2^2) *
	// delta so B(t) lands exactly on the target regardless of stiffness's
	// magnitude; stiffness only gates whether the solve runs at all
	// (stiffness>0 is still enforced by the strict surface).
	denom := c1*c1 + c2*c2
	if denom < vngeom.EPSDenom {
		return true
	}
	k1 := c1 / denom
	k2 := c2 / denom

	d1x, d1y := k1*dx, k1*dy
	d2x, d2y := k2*dx, k2*dy

	ck.HA = ck.HA.Add(vngeom.Vec2{X: float32(d1x), Y: float32(d1y)})
	ck.HB = ck.HB.Add(vngeom.Vec2{X: float32(d2x), Y: float32(d2y)})

	editedEnd := uint8(0)
	if t > 0.5 {
		editedEnd = 1
	}
	vnstore.EnforceHandleConstraints(&ck, editedEnd)

	return setCubicKind(s, id, ck)
}

// setCubicKind writes back the solved handle offsets directly, bypassing
// SetHandlePos's absolute-position API (which would re-derive an offset
// from a point rather than accept one, and would re-run the constraint
// solve with the wrong edited end).
func setCubicKind(s *vnstore.Store, id vnstore.EdgeID, ck vnstore.CubicKind) bool {
	e := s.GetEdge(id)
	if e == nil {
		return false
	}
	a := s.NodePos(e.A)
	b := s.NodePos(e.B)
	p1 := a.Add(ck.HA)
	p2 := b.Add(ck.HB)
	if !s.SetEdgeCubic(id, p1.X, p1.Y, p2.X, p2.Y) {
		return false
	}
	// SetEdgeCubic recomputes Mode=Free; restore the caller's mode and
	// re-run its constraint so a Mirrored/Aligned edge stays consistent.
	e = s.GetEdge(id)
	ck2, _ := e.Kind.(vnstore.CubicKind)
	ck2.Mode = ck.Mode
	vnstore.EnforceHandleConstraints(&ck2, 0)
	e.Kind = ck2
	return true
}

func promoteLineToCubic(s *vnstore.Store, id vnstore.EdgeID) bool {
	e := s.GetEdge(id)
	if e == nil {
		return false
	}
	a := s.NodePos(e.A)
	b := s.NodePos(e.B)
	chord := b.Sub(a)
	p1 := vngeom.Vec2{
		X: a.X + chord.X*DefaultLineToCubicHandleFraction,
		Y: a.Y + chord.Y*DefaultLineToCubicHandleFraction,
	}
	p2 := vngeom.Vec2{
		X: b.X - chord.X*DefaultLineToCubicHandleFraction,
		Y: b.Y - chord.Y*DefaultLineToCubicHandleFraction,
	}
	return s.SetEdgeCubic(id, p1.X, p1.Y, p2.X, p2.Y)
}

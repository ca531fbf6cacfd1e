package vnapi

import (
	"github.com/chazu/vecnet/pkg/vnbend"
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// BendEdgeTo is the strict counterpart of vnbend.BendEdgeTo, validating
// every argument in the order the original wasm boundary does (edge
// existence, t finiteness, t range, tx/ty finiteness, then
// stiffness finiteness and positivity) before calling into the solver.
func BendEdgeTo(s *vnstore.Store, id vnstore.EdgeID, t, tx, ty, stiffness float32) Result {
	if s.GetEdge(id) == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	if !vngeom.IsFinite32(t) {
		return fail(nonFinite("t"))
	}
	if t < 0 || t > 1 {
		return fail(outOfRange("t", float64(t), 0, 1))
	}
	if !vngeom.IsFinite32(tx) {
		return fail(nonFinite("tx"))
	}
	if !vngeom.IsFinite32(ty) {
		return fail(nonFinite("ty"))
	}
	if !vngeom.IsFinite32(stiffness) {
		return fail(nonFinite("stiffness"))
	}
	if stiffness <= 0 {
		return fail(outOfRange("stiffness", float64(stiffness), 0, 1))
	}
	if !vnbend.BendEdgeTo(s, id, t, tx, ty, stiffness) {
		return fail(internalError("bend solver failed"))
	}
	return okVoid()
}

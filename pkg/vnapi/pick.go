package vnapi

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnpick"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// Pick is the strict counterpart of vnpick.Pick: picking never fails on
// bad geometry (there is nothing to validate about a click point beyond
// finiteness), so this mainly exists to fold "nothing was picked" into
// the same Result shape as every other operation, with Value nil.
func Pick(s *vnstore.Store, x, y, tol float32) Result {
	if !vngeom.IsFinite32(x) || !vngeom.IsFinite32(y) {
		return fail(nonFinite("x/y"))
	}
	if !vngeom.IsFinite32(tol) || tol < 0 {
		return fail(outOfRange("tol", float64(tol), 0, 1e9))
	}
	r, found := vnpick.Pick(s, x, y, tol)
	if !found {
		return ok(nil)
	}
	return ok(r)
}

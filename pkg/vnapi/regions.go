package vnapi

import (
	"github.com/chazu/vecnet/pkg/planarize"
	"github.com/chazu/vecnet/pkg/vnregion"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// RecomputeRegions is the strict entry point over vnregion.Recompute; it
// has no invalid-argument surface of its own (any store, however empty,
// is valid input) so it never fails, but is kept in the strict family
// for callers driving the whole session through Result-returning calls.
func RecomputeRegions(s *vnstore.Store, opts planarize.Options, prev []vnregion.Region) Result {
	return ok(vnregion.Recompute(s, opts, prev))
}

// ToggleRegionFill is the strict counterpart of
// (*vnstore.Store).ToggleRegionFill.
func ToggleRegionFill(s *vnstore.Store, key uint64) Result {
	filled, existed := s.ToggleRegionFill(key)
	if !existed {
		return fail(invalidID("region", key))
	}
	return ok(filled)
}

// SetRegionFill is the strict counterpart of
// (*vnstore.Store).SetRegionFill.
func SetRegionFill(s *vnstore.Store, key uint64, filled bool) Result {
	if !s.SetRegionFill(key, filled) {
		return fail(invalidID("region", key))
	}
	return okVoid()
}

// SetRegionColor is the strict counterpart of
// (*vnstore.Store).SetRegionColor.
func SetRegionColor(s *vnstore.Store, key uint64, c vnstore.Color) Result {
	if !s.SetRegionColor(key, c) {
		return fail(invalidID("region", key))
	}
	return okVoid()
}

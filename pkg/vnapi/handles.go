package vnapi

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// SetHandlePos is the strict counterpart of
// (*vnstore.Store).SetHandlePos.
func SetHandlePos(s *vnstore.Store, id vnstore.EdgeID, end uint8, x, y float32) Result {
	e := s.GetEdge(id)
	if e == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	if !e.IsCubic() {
		return fail(notCubic(uint64(id)))
	}
	if end > 1 {
		return fail(invalidEnd(end))
	}
	if !vngeom.IsFinite32(x) {
		return fail(nonFinite("x"))
	}
	if !vngeom.IsFinite32(y) {
		return fail(nonFinite("y"))
	}
	s.SetHandlePos(id, end, x, y)
	return okVoid()
}

// SetHandleMode is the strict counterpart of
// (*vnstore.Store).SetHandleMode.
func SetHandleMode(s *vnstore.Store, id vnstore.EdgeID, mode vnstore.HandleMode) Result {
	e := s.GetEdge(id)
	if e == nil {
		return fail(invalidID("edge", uint64(id)))
	}
	if !e.IsCubic() {
		return fail(notCubic(uint64(id)))
	}
	if !mode.Valid() {
		return fail(invalidMode(uint8(mode)))
	}
	s.SetHandleMode(id, mode)
	return okVoid()
}

// Package vnapi is the dual strict/lenient edit surface over a
// vnstore.Store: every mutating vnstore method already is the lenient
// variant (clamps, no-ops, or returns false/zero on bad input, never
// panics); this package adds a strict variant beside each one that
// validates fully up front and returns a tagged Result instead.
package vnapi

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// AddNode is the strict counterpart of (*vnstore.Store).AddNode.
func AddNode(s *vnstore.Store, x, y float32) Result {
	if !vngeom.IsFinite32(x) {
		return fail(nonFinite("x"))
	}
	if !vngeom.IsFinite32(y) {
		return fail(nonFinite("y"))
	}
	id, added := s.AddNode(x, y)
	if !added {
		return fail(internalError("failed to add node"))
	}
	return ok(id)
}

// MoveNode is the strict counterpart of (*vnstore.Store).MoveNode.
func MoveNode(s *vnstore.Store, id vnstore.NodeID, x, y float32) Result {
	if _, exists := s.GetNode(id); !exists {
		return fail(invalidID("node", uint64(id)))
	}
	if !vngeom.IsFinite32(x) {
		return fail(nonFinite("x"))
	}
	if !vngeom.IsFinite32(y) {
		return fail(nonFinite("y"))
	}
	s.MoveNode(id, x, y)
	return okVoid()
}

// RemoveNode is the strict counterpart of (*vnstore.Store).RemoveNode.
func RemoveNode(s *vnstore.Store, id vnstore.NodeID) Result {
	if _, exists := s.GetNode(id); !exists {
		return fail(invalidID("node", uint64(id)))
	}
	s.RemoveNode(id)
	return okVoid()
}

// Package vnstore owns the node/edge arenas, the tagged edge-kind sum
// type, and the geom_ver/fill_ver bookkeeping described in spec.md §3.
// Everything else (planarization, region walking, picking) reads a
// *Store but never owns node/edge storage itself.
package vnstore

import "github.com/chazu/vecnet/pkg/vngeom"

// NodeID and EdgeID are arena indices, never reassigned to a different
// live entity within a Store's lifetime (spec.md §9 "Stable ids").
type NodeID uint32
type EdgeID uint32

// HandleMode constrains the relationship between a cubic edge's two
// handles. The numeric values match the wire encoding used by
// SetHandleMode/GetHandleMode (0/1/2), mirroring
// original_source/contour/src/model.rs::HandleMode.
type HandleMode uint8

const (
	Free HandleMode = iota
	Mirrored
	Aligned
)

func (m HandleMode) Valid() bool { return m <= Aligned }

// Node is a live vertex: a stable id and a 2D position.
type Node struct {
	ID  NodeID
	Pos vngeom.Vec2
}

// EdgeKind is a tagged sum (Line | Cubic | Polyline), expressed as an
// interface with an unexported marker method so only this package's three
// types can implement it — matching the teacher's NodeData marker-
// interface convention (pkg/graph/node.go::nodeData) rather than
// polymorphic dispatch (spec.md §9).
type EdgeKind interface {
	edgeKind()
}

type LineKind struct{}

func (LineKind) edgeKind() {}

// CubicKind carries per-end handle offsets (relative to the edge's node
// positions) and the constraint mode between them.
type CubicKind struct {
	HA, HB vngeom.Vec2
	Mode   HandleMode
}

func (CubicKind) edgeKind() {}

// PolylineKind is an ordered list of interior points; the edge's node
// positions remain the true endpoints.
type PolylineKind struct {
	Points []vngeom.Vec2
}

func (PolylineKind) edgeKind() {}

// Color is an RGBA color, used for edge stroke style and region fill.
type Color struct {
	R, G, B, A uint8
}

// Edge is a live edge: stable id, endpoints, kind, and optional cosmetic
// stroke style (supplemented from original_source — see SPEC_FULL.md §3).
type Edge struct {
	ID           EdgeID
	A, B         NodeID
	Kind         EdgeKind
	Stroke       *Color
	StrokeWidth  float32
}

func (e *Edge) IsCubic() bool {
	_, ok := e.Kind.(CubicKind)
	return ok
}

func (e *Edge) IsPolyline() bool {
	_, ok := e.Kind.(PolylineKind)
	return ok
}

func (e *Edge) IsLine() bool {
	_, ok := e.Kind.(LineKind)
	return ok
}

// FillState is the only region state that survives a recomputation.
type FillState struct {
	Filled bool
	Color  *Color
}

package vnstore

import (
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/google/uuid"
)

// Warning is the payload of the optional telemetry hook installed with
// SetWarningHook. No operation in this module delivers a Warning: cap
// violations during ingest are returned as errors, and the face walk
// does not report hitting its step cap.
type Warning struct {
	SessionID uuid.UUID
	Code      string
	Message   string
}

// Store owns the node and edge arenas for one independent vector network.
// A process may hold many Store instances (spec.md §9 "Global state:
// None"); nothing here is package-level state.
type Store struct {
	nodes []*Node
	edges []*Edge

	freeNodes []NodeID
	freeEdges []EdgeID

	fills map[uint64]FillState

	geomVer uint64
	fillVer uint64

	flattenTolerance float32

	sessionID uuid.UUID
	onWarning func(Warning)
}

// New creates an empty Store with the default flatten tolerance.
func New() *Store {
	return &Store{
		fills:            make(map[uint64]FillState),
		flattenTolerance: vngeom.FlattenToleranceDefault,
		sessionID:        uuid.New(),
	}
}

// SessionID identifies this Store instance for telemetry correlation; it
// never participates in node/edge identity (spec.md §3/§9 keep those as
// integer arena indices).
func (s *Store) SessionID() uuid.UUID { return s.sessionID }

// SetWarningHook installs (or clears, with nil) the telemetry callback.
func (s *Store) SetWarningHook(fn func(Warning)) { s.onWarning = fn }

func (s *Store) warn(code, message string) {
	if s.onWarning != nil {
		s.onWarning(Warning{SessionID: s.sessionID, Code: code, Message: message})
	}
}

func (s *Store) GeomVersion() uint64 { return s.geomVer }
func (s *Store) FillVersion() uint64 { return s.fillVer }

func (s *Store) bumpGeom() { s.geomVer++ }
func (s *Store) bumpFill() { s.fillVer++ }

// Clear empties the store and resets both version counters. This is the
// only point at which a freed id may be handed back out to a new entity
// (spec.md §9).
func (s *Store) Clear() {
	s.nodes = nil
	s.edges = nil
	s.freeNodes = nil
	s.freeEdges = nil
	s.fills = make(map[uint64]FillState)
	s.geomVer = 0
	s.fillVer = 0
}

// FlattenTolerance returns the current flatten tolerance.
func (s *Store) FlattenTolerance() float32 { return s.flattenTolerance }

// SetFlattenTolerance clamps tol into [0.01, 10.0] and bumps geom_ver.
func (s *Store) SetFlattenTolerance(tol float32) bool {
	if !vngeom.IsFinite32(tol) {
		return false
	}
	clamped := float32(vngeom.Clamp(float64(tol), vngeom.FlattenToleranceMin, vngeom.FlattenToleranceMax))
	s.flattenTolerance = clamped
	s.bumpGeom()
	return true
}

// ---------------------------------------------------------------------------
// Nodes
// ---------------------------------------------------------------------------

// AddNode appends a node, or none (represented as returning false) and a
// stable id. Lenient variant treats non-finite coordinates as a no-op.
func (s *Store) AddNode(x, y float32) (NodeID, bool) {
	if !vngeom.IsFinite32(x) || !vngeom.IsFinite32(y) {
		return 0, false
	}
	n := &Node{Pos: vngeom.Vec2{X: x, Y: y}}
	id := s.allocNode(n)
	s.bumpGeom()
	return id, true
}

func (s *Store) allocNode(n *Node) NodeID {
	id := NodeID(len(s.nodes))
	n.ID = id
	s.nodes = append(s.nodes, n)
	return id
}

// GetNode returns the node's position, or false if it is not live.
func (s *Store) GetNode(id NodeID) (vngeom.Vec2, bool) {
	n := s.nodeAt(id)
	if n == nil {
		return vngeom.Vec2{}, false
	}
	return n.Pos, true
}

func (s *Store) nodeAt(id NodeID) *Node {
	if int(id) < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

// MoveNode updates a live node's position. Offsets on incident cubic
// edges are relative, so no further adjustment is needed (spec.md §4.2).
func (s *Store) MoveNode(id NodeID, x, y float32) bool {
	n := s.nodeAt(id)
	if n == nil || !vngeom.IsFinite32(x) || !vngeom.IsFinite32(y) {
		return false
	}
	n.Pos = vngeom.Vec2{X: x, Y: y}
	s.bumpGeom()
	return true
}

// RemoveNode deletes a node and cascades to every incident edge.
func (s *Store) RemoveNode(id NodeID) bool {
	n := s.nodeAt(id)
	if n == nil {
		return false
	}
	for _, e := range s.edges {
		if e != nil && (e.A == id || e.B == id) {
			s.removeEdgeInternal(e.ID)
		}
	}
	s.nodes[id] = nil
	s.freeNodes = append(s.freeNodes, id)
	s.bumpGeom()
	return true
}

func (s *Store) NodeCount() int {
	n := 0
	for _, v := range s.nodes {
		if v != nil {
			n++
		}
	}
	return n
}

// NodeIDs returns all live node ids in arena order.
func (s *Store) NodeIDs() []NodeID {
	var out []NodeID
	for _, v := range s.nodes {
		if v != nil {
			out = append(out, v.ID)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Edges
// ---------------------------------------------------------------------------

// AddEdge creates a Line edge between two live, distinct nodes.
func (s *Store) AddEdge(a, b NodeID) (EdgeID, bool) {
	if a == b {
		return 0, false
	}
	if s.nodeAt(a) == nil || s.nodeAt(b) == nil {
		return 0, false
	}
	e := &Edge{A: a, B: b, Kind: LineKind{}}
	id := s.allocEdge(e)
	s.bumpGeom()
	return id, true
}

func (s *Store) allocEdge(e *Edge) EdgeID {
	id := EdgeID(len(s.edges))
	e.ID = id
	s.edges = append(s.edges, e)
	return id
}

func (s *Store) edgeAt(id EdgeID) *Edge {
	if int(id) < 0 || int(id) >= len(s.edges) {
		return nil
	}
	return s.edges[id]
}

// GetEdge returns the live edge, or nil. The returned pointer is borrowed
// and only valid until the next mutating call (spec.md §5).
func (s *Store) GetEdge(id EdgeID) *Edge { return s.edgeAt(id) }

func (s *Store) removeEdgeInternal(id EdgeID) {
	if s.edgeAt(id) == nil {
		return
	}
	s.edges[id] = nil
	s.freeEdges = append(s.freeEdges, id)
}

// RemoveEdge deletes a live edge. Does not bump geom_ver if the edge did
// not exist.
func (s *Store) RemoveEdge(id EdgeID) bool {
	if s.edgeAt(id) == nil {
		return false
	}
	s.removeEdgeInternal(id)
	s.bumpGeom()
	return true
}

func (s *Store) EdgeCount() int {
	n := 0
	for _, v := range s.edges {
		if v != nil {
			n++
		}
	}
	return n
}

// EdgeIDs returns all live edge ids in arena order.
func (s *Store) EdgeIDs() []EdgeID {
	var out []EdgeID
	for _, v := range s.edges {
		if v != nil {
			out = append(out, v.ID)
		}
	}
	return out
}

// NodePos looks up an endpoint's position; panics only if called with a
// dangling id, which callers must not do — every live edge's endpoints
// are guaranteed live by the invariants in spec.md §3.
func (s *Store) NodePos(id NodeID) vngeom.Vec2 {
	return s.nodes[id].Pos
}

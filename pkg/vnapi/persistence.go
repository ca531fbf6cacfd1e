package vnapi

import (
	"encoding/json"
	"fmt"

	"github.com/chazu/vecnet/internal/config"
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// wireVersion is the persistent JSON schema version this package reads
// and writes. spec.md §6 fixes the shape at {version, nodes, edges,
// fills}; the much later {version:4, layers, groups, ...} format seen in
// original_source/contour/src/json.rs belongs to functionality this
// engine does not implement (SPEC_FULL.md §3 "Excluded from the
// supplement") and is deliberately not followed here.
const wireVersion = 1

type wireNode struct {
	ID uint32  `json:"id"`
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
}

type wireEdge struct {
	ID          uint32       `json:"id"`
	A           uint32       `json:"a"`
	B           uint32       `json:"b"`
	Kind        string       `json:"kind"`
	HA          *[2]float32  `json:"ha,omitempty"`
	HB          *[2]float32  `json:"hb,omitempty"`
	Mode        *uint8       `json:"mode,omitempty"`
	Points      [][2]float32 `json:"points,omitempty"`
	Stroke      *[4]uint8    `json:"stroke,omitempty"`
	StrokeWidth float32      `json:"stroke_width,omitempty"`
}

type wireFill struct {
	Key    uint64    `json:"key"`
	Filled bool      `json:"filled"`
	Color  *[4]uint8 `json:"color,omitempty"`
}

type wireDoc struct {
	Version int        `json:"version"`
	Nodes   []wireNode `json:"nodes"`
	Edges   []wireEdge `json:"edges"`
	Fills   []wireFill `json:"fills"`
}

// ToJSON serializes the store's full state (nodes, edges, region fills)
// to the persistent wire format.
func ToJSON(s *vnstore.Store) ([]byte, error) {
	doc := wireDoc{Version: wireVersion}
	for _, id := range s.NodeIDs() {
		pos, _ := s.GetNode(id)
		doc.Nodes = append(doc.Nodes, wireNode{ID: uint32(id), X: pos.X, Y: pos.Y})
	}
	for _, id := range s.EdgeIDs() {
		e := s.GetEdge(id)
		we := wireEdge{ID: uint32(id), A: uint32(e.A), B: uint32(e.B)}
		switch k := e.Kind.(type) {
		case vnstore.LineKind:
			we.Kind = "line"
		case vnstore.CubicKind:
			we.Kind = "cubic"
			ha := [2]float32{k.HA.X, k.HA.Y}
			hb := [2]float32{k.HB.X, k.HB.Y}
			mode := uint8(k.Mode)
			we.HA, we.HB, we.Mode = &ha, &hb, &mode
		case vnstore.PolylineKind:
			we.Kind = "polyline"
			for _, p := range k.Points {
				we.Points = append(we.Points, [2]float32{p.X, p.Y})
			}
		}
		if e.Stroke != nil {
			c := [4]uint8{e.Stroke.R, e.Stroke.G, e.Stroke.B, e.Stroke.A}
			we.Stroke = &c
			we.StrokeWidth = e.StrokeWidth
		}
		doc.Edges = append(doc.Edges, we)
	}
	for key, fs := range s.AllFills() {
		wf := wireFill{Key: key, Filled: fs.Filled}
		if fs.Color != nil {
			c := [4]uint8{fs.Color.R, fs.Color.G, fs.Color.B, fs.Color.A}
			wf.Color = &c
		}
		doc.Fills = append(doc.Fills, wf)
	}
	return json.Marshal(doc)
}

// FromJSON is the lenient loader: it silently drops edges whose
// endpoints are missing or identical, and on any other structural or
// semantic problem it leaves the store untouched and returns false,
// recovering from a panic in the decode path the same way AddSVGPath's
// boundary does (SPEC_FULL.md §7).
func FromJSON(s *vnstore.Store, data []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	nodes, edges, fills, apiErr := decodeWireDoc(data, config.Standard(), true)
	if apiErr != nil {
		return false
	}
	s.LoadRaw(nodes, edges, fills)
	return true
}

// FromJSONStrict is the strict counterpart: it reports the first
// validation failure instead of silently declining to load.
func FromJSONStrict(s *vnstore.Store, data []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail(internalError(fmt.Sprintf("panic while decoding: %v", r)))
		}
	}()
	nodes, edges, fills, apiErr := decodeWireDoc(data, config.Standard(), false)
	if apiErr != nil {
		return fail(apiErr)
	}
	s.LoadRaw(nodes, edges, fills)
	return okVoid()
}

// decodeWireDoc validates and decodes the wire format, returning an
// APIError already tagged with the spec.md §4.1 code its failure mode
// corresponds to: `json_parse` for a malformed document, `caps_exceeded`
// for a count over one of config.Defaults' limits, `out_of_bounds`/
// `non_finite` for a bad coordinate, and `invalid_structure` for
// anything else that violates the wire schema (unknown edge kind,
// missing cubic handle data, an invalid handle mode, an unsupported
// version, an edge whose endpoints are missing or identical). With
// dropDangling set, such an edge is skipped instead of rejected.
func decodeWireDoc(data []byte, cfg config.Defaults, dropDangling bool) ([]vnstore.Node, []vnstore.Edge, map[uint64]vnstore.FillState, *APIError) {
	var doc wireDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, nil, jsonParse(fmt.Sprintf("malformed JSON: %v", err))
	}
	if doc.Version != wireVersion {
		return nil, nil, nil, invalidStructure(fmt.Sprintf("unsupported version %d", doc.Version))
	}
	if len(doc.Nodes) > cfg.MaxNodes {
		return nil, nil, nil, capsExceeded("node count", cfg.MaxNodes)
	}
	if len(doc.Edges) > cfg.MaxEdges {
		return nil, nil, nil, capsExceeded("edge count", cfg.MaxEdges)
	}

	nodes := make([]vnstore.Node, 0, len(doc.Nodes))
	live := make(map[uint32]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		live[n.ID] = true
		if !vngeom.IsFinite32(n.X) || !vngeom.IsFinite32(n.Y) {
			return nil, nil, nil, nonFinite(fmt.Sprintf("node %d position", n.ID))
		}
		if !cfg.InCoordBounds(float64(n.X)) {
			return nil, nil, nil, outOfBounds(fmt.Sprintf("node %d position", n.ID), float64(n.X), cfg.CoordMin, cfg.CoordMax)
		}
		if !cfg.InCoordBounds(float64(n.Y)) {
			return nil, nil, nil, outOfBounds(fmt.Sprintf("node %d position", n.ID), float64(n.Y), cfg.CoordMin, cfg.CoordMax)
		}
		nodes = append(nodes, vnstore.Node{ID: vnstore.NodeID(n.ID), Pos: vngeom.Vec2{X: n.X, Y: n.Y}})
	}

	totalPolyPoints := 0
	edgesOut := make([]vnstore.Edge, 0, len(doc.Edges))
	for _, we := range doc.Edges {
		if we.A == we.B || !live[we.A] || !live[we.B] {
			if dropDangling {
				continue
			}
			return nil, nil, nil, invalidStructure(fmt.Sprintf("edge %d: endpoints must be two distinct live nodes", we.ID))
		}
		e := vnstore.Edge{ID: vnstore.EdgeID(we.ID), A: vnstore.NodeID(we.A), B: vnstore.NodeID(we.B)}
		switch we.Kind {
		case "line":
			e.Kind = vnstore.LineKind{}
		case "cubic":
			if we.HA == nil || we.HB == nil || we.Mode == nil {
				return nil, nil, nil, invalidStructure(fmt.Sprintf("edge %d: cubic missing handle data", we.ID))
			}
			mode := vnstore.HandleMode(*we.Mode)
			if !mode.Valid() {
				return nil, nil, nil, invalidStructure(fmt.Sprintf("edge %d: invalid handle mode %d", we.ID, *we.Mode))
			}
			e.Kind = vnstore.CubicKind{
				HA:   vngeom.Vec2{X: we.HA[0], Y: we.HA[1]},
				HB:   vngeom.Vec2{X: we.HB[0], Y: we.HB[1]},
				Mode: mode,
			}
		case "polyline":
			if len(we.Points) > cfg.MaxPolylinePointsPerEdge {
				return nil, nil, nil, capsExceeded(fmt.Sprintf("edge %d polyline points", we.ID), cfg.MaxPolylinePointsPerEdge)
			}
			totalPolyPoints += len(we.Points)
			if totalPolyPoints > cfg.MaxPolylinePointsTotal {
				return nil, nil, nil, capsExceeded("total polyline points", cfg.MaxPolylinePointsTotal)
			}
			pts := make([]vngeom.Vec2, len(we.Points))
			for i, p := range we.Points {
				pts[i] = vngeom.Vec2{X: p[0], Y: p[1]}
			}
			e.Kind = vnstore.PolylineKind{Points: pts}
		default:
			return nil, nil, nil, invalidStructure(fmt.Sprintf("edge %d: unknown kind %q", we.ID, we.Kind))
		}
		if we.Stroke != nil {
			c := vnstore.Color{R: we.Stroke[0], G: we.Stroke[1], B: we.Stroke[2], A: we.Stroke[3]}
			e.Stroke = &c
			e.StrokeWidth = we.StrokeWidth
		}
		edgesOut = append(edgesOut, e)
	}

	fills := make(map[uint64]vnstore.FillState, len(doc.Fills))
	for _, wf := range doc.Fills {
		fs := vnstore.FillState{Filled: wf.Filled}
		if wf.Color != nil {
			c := vnstore.Color{R: wf.Color[0], G: wf.Color[1], B: wf.Color[2], A: wf.Color[3]}
			fs.Color = &c
		}
		fills[wf.Key] = fs
	}

	return nodes, edgesOut, fills, nil
}

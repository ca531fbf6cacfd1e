// Package svgio ingests SVG path data into a vnstore.Store and emits a
// store's contents back out as SVG, either as bare <path> fragments or as
// a full document via github.com/ajstarks/svgo.
package svgio

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chazu/vecnet/internal/config"
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// CapError reports that ingestion hit one of config.Defaults' configured
// caps (token/command/subpath/segment counts). Distinguished from a
// plain parse failure so callers can surface spec.md's `caps_exceeded`
// code rather than `svg_parse`.
type CapError struct {
	What  string
	Limit int
}

func (e *CapError) Error() string {
	return fmt.Sprintf("svgio: %s exceeds the configured limit (%d)", e.What, e.Limit)
}

// BoundsError reports a coordinate outside config.Defaults' coordinate
// bounds, distinguished from a plain parse failure so callers can
// surface spec.md's `out_of_bounds` code rather than `svg_parse`.
type BoundsError struct {
	Value float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("svgio: coordinate %v out of bounds", e.Value)
}

// AddSVGPath parses the `d` attribute of a single SVG <path> and adds
// its nodes/edges to s. Only M/m, L/l, C/c, and Z/z commands are
// supported (spec.md's ingest scope); anything else aborts the parse
// with an error and adds nothing. Grounded on
// original_source/contour/src/svg.rs::add_svg_path_impl, including its
// node_cache position-quantization merge and inline cap enforcement.
func AddSVGPath(s *vnstore.Store, d string, cfg config.Defaults) ([]vnstore.EdgeID, error) {
	return AddSVGPathWithStyle(s, d, nil, 0, cfg)
}

// AddSVGPathWithStyle is AddSVGPath plus an optional stroke color/width
// applied to every edge the path produces (SPEC_FULL.md §4.7 supplement).
// The path is parsed into a scratch store first, so a path that fails
// leaves s unchanged.
func AddSVGPathWithStyle(s *vnstore.Store, d string, stroke *vnstore.Color, strokeWidth float32, cfg config.Defaults) ([]vnstore.EdgeID, error) {
	if _, err := addSVGPath(vnstore.New(), d, nil, 0, cfg); err != nil {
		return nil, err
	}
	return addSVGPath(s, d, stroke, strokeWidth, cfg)
}

func addSVGPath(s *vnstore.Store, d string, stroke *vnstore.Color, strokeWidth float32, cfg config.Defaults) ([]vnstore.EdgeID, error) {
	if len(d) > cfg.MaxSVGTokens {
		return nil, &CapError{What: "SVG path data size", Limit: cfg.MaxSVGTokens}
	}

	p := &parser{src: d, cfg: cfg, nodeCache: make(map[[2]int64]vnstore.NodeID)}
	var edgeIDs []vnstore.EdgeID

	for {
		p.skipWS()
		if p.eof() {
			break
		}
		cmd := p.src[p.pos]
		p.pos++
		p.cmdCount++
		if p.cmdCount > cfg.MaxSVGCommands {
			return nil, &CapError{What: "SVG command count", Limit: cfg.MaxSVGCommands}
		}

		switch cmd {
		case 'M', 'm':
			x, y, err := p.parsePoint(cmd == 'm')
			if err != nil {
				return nil, err
			}
			p.subpaths++
			if p.subpaths > cfg.MaxSVGSubpaths {
				return nil, &CapError{What: "SVG subpath count", Limit: cfg.MaxSVGSubpaths}
			}
			p.cx, p.cy = x, y
			p.startX, p.startY = x, y
			p.curNode = p.internNode(s, x, y)
			p.haveCurrent = true

		case 'L', 'l':
			if !p.haveCurrent {
				return nil, fmt.Errorf("svgio: L/l with no current point")
			}
			x, y, err := p.parsePoint(cmd == 'l')
			if err != nil {
				return nil, err
			}
			next := p.internNode(s, x, y)
			id, ok := s.AddEdge(p.curNode, next)
			if !ok {
				return nil, fmt.Errorf("svgio: failed to add line edge")
			}
			edgeIDs = append(edgeIDs, id)
			p.curNode, p.cx, p.cy = next, x, y
			p.segs++
			if p.segs > cfg.MaxSVGSegments {
				return nil, &CapError{What: "SVG segment count", Limit: cfg.MaxSVGSegments}
			}

		case 'C', 'c':
			if !p.haveCurrent {
				return nil, fmt.Errorf("svgio: C/c with no current point")
			}
			rel := cmd == 'c'
			p1x, p1y, err := p.parsePoint(rel)
			if err != nil {
				return nil, err
			}
			p2x, p2y, err := p.parsePoint(rel)
			if err != nil {
				return nil, err
			}
			ex, ey, err := p.parsePoint(rel)
			if err != nil {
				return nil, err
			}
			next := p.internNode(s, ex, ey)
			id, ok := s.AddEdge(p.curNode, next)
			if !ok {
				return nil, fmt.Errorf("svgio: failed to add cubic edge")
			}
			s.SetEdgeCubic(id, p1x, p1y, p2x, p2y)
			edgeIDs = append(edgeIDs, id)
			p.curNode, p.cx, p.cy = next, ex, ey
			p.segs++
			if p.segs > cfg.MaxSVGSegments {
				return nil, &CapError{What: "SVG segment count", Limit: cfg.MaxSVGSegments}
			}

		case 'Z', 'z':
			if !p.haveCurrent {
				return nil, fmt.Errorf("svgio: Z/z with no current point")
			}
			startNode := p.internNode(s, p.startX, p.startY)
			if startNode != p.curNode {
				id, ok := s.AddEdge(p.curNode, startNode)
				if ok {
					edgeIDs = append(edgeIDs, id)
				}
			}
			p.curNode, p.cx, p.cy = startNode, p.startX, p.startY

		default:
			return nil, fmt.Errorf("svgio: unsupported command %q", cmd)
		}
	}

	if stroke != nil {
		for _, id := range edgeIDs {
			s.SetEdgeStyle(id, stroke.R, stroke.G, stroke.B, stroke.A, strokeWidth)
		}
	}
	return edgeIDs, nil
}

type parser struct {
	src string
	pos int
	cfg config.Defaults

	cx, cy         float32
	startX, startY float32
	curNode        vnstore.NodeID
	haveCurrent    bool

	cmdCount, subpaths, segs int

	nodeCache map[[2]int64]vnstore.NodeID
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipWS() {
	for !p.eof() {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) parseNum() (float32, error) {
	p.skipWS()
	start := p.pos
	if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
		p.pos++
	}
	sawDigit := false
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
		sawDigit = true
	}
	if !p.eof() && p.src[p.pos] == '.' {
		p.pos++
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, fmt.Errorf("svgio: expected number at offset %d", start)
	}
	if !p.eof() && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("svgio: malformed number %q: %w", p.src[start:p.pos], err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("svgio: non-finite number %q", p.src[start:p.pos])
	}
	if !p.cfg.InCoordBounds(v) {
		return 0, &BoundsError{Value: v}
	}
	return float32(v), nil
}

func (p *parser) parsePoint(relative bool) (float32, float32, error) {
	x, err := p.parseNum()
	if err != nil {
		return 0, 0, err
	}
	y, err := p.parseNum()
	if err != nil {
		return 0, 0, err
	}
	if relative {
		x += p.cx
		y += p.cy
	}
	if !p.cfg.InCoordBounds(float64(x)) {
		return 0, 0, &BoundsError{Value: float64(x)}
	}
	if !p.cfg.InCoordBounds(float64(y)) {
		return 0, 0, &BoundsError{Value: float64(y)}
	}
	return x, y, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// internNode returns the existing node at this quantized position, or
// creates a new one. Like svg.rs's node_cache, positions are rounded to
// a grid, here of vngeom.EPSPos units.
func (p *parser) internNode(s *vnstore.Store, x, y float32) vnstore.NodeID {
	key := [2]int64{
		int64(math.Round(float64(x) / vngeom.EPSPos)),
		int64(math.Round(float64(y) / vngeom.EPSPos)),
	}
	if id, ok := p.nodeCache[key]; ok {
		return id
	}
	id, _ := s.AddNode(x, y)
	p.nodeCache[key] = id
	return id
}

package svgio

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnregion"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// ToSVGPaths renders every edge in the store as a standalone SVG <path>
// fragment (no surrounding <svg> element), one per edge, in edge-id
// order. Region fills are not represented at the fragment level; use
// WriteSVGDocument for a full document with filled regions.
func ToSVGPaths(s *vnstore.Store) []string {
	var out []string
	for _, id := range s.EdgeIDs() {
		out = append(out, edgePathD(s, id))
	}
	return out
}

func edgePathD(s *vnstore.Store, id vnstore.EdgeID) string {
	e := s.GetEdge(id)
	if e == nil {
		return ""
	}
	a := s.NodePos(e.A)
	b := s.NodePos(e.B)
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %g %g ", a.X, a.Y)
	switch k := e.Kind.(type) {
	case vnstore.LineKind:
		fmt.Fprintf(&sb, "L %g %g", b.X, b.Y)
	case vnstore.CubicKind:
		p1 := a.Add(k.HA)
		p2 := b.Add(k.HB)
		fmt.Fprintf(&sb, "C %g %g %g %g %g %g", p1.X, p1.Y, p2.X, p2.Y, b.X, b.Y)
	case vnstore.PolylineKind:
		for _, p := range k.Points {
			fmt.Fprintf(&sb, "L %g %g ", p.X, p.Y)
		}
		fmt.Fprintf(&sb, "L %g %g", b.X, b.Y)
	}
	d := fmt.Sprintf(`<path d="%s" fill="none"/>`, sb.String())
	style := strokeAttr(e)
	if style != "" {
		d = fmt.Sprintf(`<path d="%s" fill="none" %s/>`, sb.String(), style)
	}
	return d
}

func strokeAttr(e *vnstore.Edge) string {
	if e.Stroke == nil {
		return ""
	}
	return fmt.Sprintf(`stroke="%s" stroke-opacity="%g" stroke-width="%g"`,
		vnregion.HexColor(e.Stroke), float64(e.Stroke.A)/255, e.StrokeWidth)
}

// WriteSVGDocument writes a complete SVG document to w: filled regions
// as <polygon>s first (so edges draw on top), then every edge's path.
// Built on github.com/ajstarks/svgo rather than hand-rolled document
// boilerplate.
func WriteSVGDocument(w io.Writer, s *vnstore.Store, width, height int, regions []RegionFill) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for _, r := range regions {
		if !r.Filled || len(r.Points) < 3 {
			continue
		}
		xs := make([]int, len(r.Points))
		ys := make([]int, len(r.Points))
		for i, p := range r.Points {
			xs[i] = int(p.X)
			ys[i] = int(p.Y)
		}
		fill := "#000000"
		if r.Color != nil {
			fill = vnregion.HexColor(r.Color)
		}
		canvas.Polygon(xs, ys, "fill:"+fill)
	}

	for _, id := range s.EdgeIDs() {
		e := s.GetEdge(id)
		if e == nil {
			continue
		}
		a := s.NodePos(e.A)
		b := s.NodePos(e.B)
		stroke := "#000000"
		strokeWidth := 1.0
		if e.Stroke != nil {
			stroke = vnregion.HexColor(e.Stroke)
			strokeWidth = float64(e.StrokeWidth)
		}
		style := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", stroke, strokeWidth)
		switch k := e.Kind.(type) {
		case vnstore.LineKind:
			canvas.Line(int(a.X), int(a.Y), int(b.X), int(b.Y), style)
		case vnstore.CubicKind:
			p1 := a.Add(k.HA)
			p2 := b.Add(k.HB)
			d := fmt.Sprintf("M%g,%g C%g,%g %g,%g %g,%g", a.X, a.Y, p1.X, p1.Y, p2.X, p2.Y, b.X, b.Y)
			canvas.Path(d, style)
		case vnstore.PolylineKind:
			var sb strings.Builder
			fmt.Fprintf(&sb, "M%g,%g ", a.X, a.Y)
			for _, p := range k.Points {
				fmt.Fprintf(&sb, "L%g,%g ", p.X, p.Y)
			}
			fmt.Fprintf(&sb, "L%g,%g", b.X, b.Y)
			canvas.Path(sb.String(), style)
		}
	}
}

// RegionFill is the minimal shape WriteSVGDocument needs to draw a
// region's fill beneath the edges: its boundary loop and persisted
// color/filled state. Callers typically build this from
// pkg/vnregion.Region by walking Face.Vertices into positions.
type RegionFill struct {
	Points []vngeom.Vec2
	Filled bool
	Color  *vnstore.Color
}

package vnregion

import (
	"math"

	"github.com/chazu/vecnet/pkg/planarize"
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// Face is one accepted closed region: its boundary half-edges (in
// traversal order) and the vertex loop they trace.
type Face struct {
	HalfEdges []int
	Vertices  []int
	Area      float64
	Centroid  vngeom.Vec2
	EdgeSeq   []vnstore.EdgeID // compressed source-edge ids around the boundary
}

// maxFaceSteps bounds findSimpleCycles' walk around one node cycle.
// WalkFaces caps each face walk at 8 steps per half-edge instead, so a
// malformed half-edge graph (e.g. a rotation table corrupted by a caller
// building planarize.Graph by hand) cannot spin the walker forever.
const maxFaceSteps = 1_000_000

// WalkFaces traces every closed face in g and returns the ones that meet
// the acceptance criteria: at least 3 distinct vertices and an absolute
// signed area of at least vngeom.EPSFaceArea. Degenerate two-half-edge
// back-and-forth cycles (a dangling edge with nothing else attached) walk
// fine under the same rule but are naturally rejected here since their
// area is zero.
func WalkFaces(g *planarize.Graph) []Face {
	if len(g.HalfEdges) == 0 {
		return nil
	}
	rot := buildRotation(g)
	visited := make([]bool, len(g.HalfEdges))

	var faces []Face
	for start := range g.HalfEdges {
		if visited[start] {
			continue
		}
		var loop []int
		cur := start
		steps := 0
		for {
			if visited[cur] {
				break
			}
			visited[cur] = true
			loop = append(loop, cur)
			cur = rot.next(g, cur)
			steps++
			if cur == start || steps > 8*len(g.HalfEdges) {
				break
			}
		}
		if len(loop) < 3 {
			continue
		}
		face := buildFace(g, loop)
		distinctVerts := len(uniqueInts(face.Vertices))
		if distinctVerts < 3 {
			continue
		}
		if math.Abs(face.Area) < vngeom.EPSFaceArea {
			continue
		}
		if face.Area <= 0 {
			// CW-wound trace of the boundary; that's the exterior side of
			// this cycle, not an interior region (spec.md §4.5).
			continue
		}
		faces = append(faces, face)
	}
	return faces
}

func buildFace(g *planarize.Graph, loop []int) Face {
	f := Face{HalfEdges: loop}
	f.Vertices = make([]int, len(loop))
	f.EdgeSeq = make([]vnstore.EdgeID, 0, len(loop))
	for i, heIdx := range loop {
		he := g.HalfEdges[heIdx]
		f.Vertices[i] = he.Origin
		if len(f.EdgeSeq) == 0 || f.EdgeSeq[len(f.EdgeSeq)-1] != he.SourceEdge {
			f.EdgeSeq = append(f.EdgeSeq, he.SourceEdge)
		}
	}
	if len(f.EdgeSeq) > 1 && f.EdgeSeq[0] == f.EdgeSeq[len(f.EdgeSeq)-1] {
		f.EdgeSeq = f.EdgeSeq[:len(f.EdgeSeq)-1]
	}
	f.Area, f.Centroid = shoelace(g, f.Vertices)
	return f
}

// shoelace computes the signed area and centroid of a vertex loop.
func shoelace(g *planarize.Graph, verts []int) (float64, vngeom.Vec2) {
	var area, cx, cy float64
	n := len(verts)
	for i := 0; i < n; i++ {
		p0 := g.Vertices[verts[i]].Pos
		p1 := g.Vertices[verts[(i+1)%n]].Pos
		cross := float64(p0.X)*float64(p1.Y) - float64(p1.X)*float64(p0.Y)
		area += cross
		cx += (float64(p0.X) + float64(p1.X)) * cross
		cy += (float64(p0.Y) + float64(p1.Y)) * cross
	}
	area *= 0.5
	if math.Abs(area) < vngeom.EPSDenom {
		return area, avgPoint(g, verts)
	}
	cx /= 6 * area
	cy /= 6 * area
	return area, vngeom.Vec2{X: float32(cx), Y: float32(cy)}
}

func avgPoint(g *planarize.Graph, verts []int) vngeom.Vec2 {
	var sx, sy float64
	for _, v := range verts {
		sx += float64(g.Vertices[v].Pos.X)
		sy += float64(g.Vertices[v].Pos.Y)
	}
	n := float64(len(verts))
	return vngeom.Vec2{X: float32(sx / n), Y: float32(sy / n)}
}

func uniqueInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}


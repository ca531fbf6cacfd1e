package vnregion

import (
	"math"
	"testing"

	"github.com/chazu/vecnet/pkg/planarize"
	"github.com/chazu/vecnet/pkg/vnstore"
)

func buildSquare(t *testing.T) *vnstore.Store {
	t.Helper()
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(10, 10)
	d, _ := s.AddNode(0, 10)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, d)
	s.AddEdge(d, a)
	return s
}

func TestRecomputeFindsOneSquareFace(t *testing.T) {
	s := buildSquare(t)
	regions := Recompute(s, planarize.Options{}, nil)
	if len(regions) != 1 {
		t.Fatalf("expected 1 face for a closed square, got %d", len(regions))
	}
	if regions[0].Filled {
		t.Fatalf("new region should default to unfilled")
	}
}

func TestRecomputePreservesFillAcrossStableKey(t *testing.T) {
	s := buildSquare(t)
	regions := Recompute(s, planarize.Options{}, nil)
	key := regions[0].Key
	if !s.SetRegionFill(key, true) {
		t.Fatalf("SetRegionFill failed for freshly discovered key")
	}

	regions2 := Recompute(s, planarize.Options{}, regions)
	if len(regions2) != 1 || regions2[0].Key != key {
		t.Fatalf("expected the same region key on stable geometry")
	}
	if !regions2[0].Filled {
		t.Fatalf("fill state should have persisted across recompute")
	}
}

func TestRegionKeyStableUnderStartAndDirection(t *testing.T) {
	f1 := Face{EdgeSeq: []vnstore.EdgeID{1, 2, 3, 4}}
	f2 := Face{EdgeSeq: []vnstore.EdgeID{3, 4, 1, 2}}
	f3 := Face{EdgeSeq: []vnstore.EdgeID{4, 3, 2, 1}}
	k1, k2, k3 := RegionKey(f1), RegionKey(f2), RegionKey(f3)
	if k1 != k2 || k1 != k3 {
		t.Fatalf("expected region key invariant under rotation/reversal, got %d %d %d", k1, k2, k3)
	}
}

// TestFindSimpleCyclesReconstructsRealGeometryNotChord pins down the
// §4.5 fallback requirement that a degree-2 cycle's boundary comes from
// each edge's actual geometry, not the straight chord between its
// endpoints: bowing one edge of a triangle must change the measured
// area relative to the all-straight chord triangle.
func TestFindSimpleCyclesReconstructsRealGeometryNotChord(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(10, 10)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	id, _ := s.AddEdge(c, a)
	s.SetEdgeCubic(id, 15, 15, 10, -5)

	faces := findSimpleCycles(s)
	if len(faces) != 1 {
		t.Fatalf("expected 1 cycle face, got %d", len(faces))
	}
	const chordArea = 50.0 // shoelace area of the all-straight (0,0)-(10,0)-(10,10) triangle
	if math.Abs(math.Abs(faces[0].Area)-chordArea) < 1e-6 {
		t.Fatalf("expected bowed-edge area to differ from the straight-chord triangle area, got %v", faces[0].Area)
	}
	if len(faces[0].EdgeSeq) != 3 {
		t.Fatalf("expected 3 distinct boundary edges, got %d", len(faces[0].EdgeSeq))
	}
}

// TestRecomputeUsesFallbackWhenPlanarizationCollapsesToNoHalfEdges
// drives WalkFaces to its genuinely empty case (zero half-edges,
// because every segment in this triangle quantizes its two endpoints
// into the same grid cell) and confirms Recompute falls through to
// findSimpleCycles rather than erroring or panicking; this particular
// triangle is small enough that its real area is still below
// EPSFaceArea, so the fallback correctly reports no regions too.
func TestRecomputeUsesFallbackWhenPlanarizationCollapsesToNoHalfEdges(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(0.01, 0)
	c, _ := s.AddNode(0.01, 0.01)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, a)

	g := planarize.Planarize(s, planarize.Options{})
	if len(g.HalfEdges) != 0 {
		t.Fatalf("expected planarization to collapse this triangle to zero half-edges, got %d", len(g.HalfEdges))
	}

	regions := Recompute(s, planarize.Options{}, nil)
	if len(regions) != 0 {
		t.Fatalf("expected the fallback to also reject this sub-EPSFaceArea triangle, got %d regions", len(regions))
	}
}

func TestRegionKeyDiffersForDifferentBoundary(t *testing.T) {
	f1 := Face{EdgeSeq: []vnstore.EdgeID{1, 2, 3}}
	f2 := Face{EdgeSeq: []vnstore.EdgeID{1, 2, 4}}
	if RegionKey(f1) == RegionKey(f2) {
		t.Fatalf("expected different keys for different boundaries")
	}
}

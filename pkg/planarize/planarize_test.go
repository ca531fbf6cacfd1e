package planarize

import (
	"testing"

	"github.com/chazu/vecnet/pkg/vnstore"
)

func buildCross(t *testing.T) *vnstore.Store {
	t.Helper()
	s := vnstore.New()
	a, _ := s.AddNode(0, 5)
	b, _ := s.AddNode(10, 5)
	c, _ := s.AddNode(5, 0)
	d, _ := s.AddNode(5, 10)
	if _, ok := s.AddEdge(a, b); !ok {
		t.Fatalf("AddEdge a-b failed")
	}
	if _, ok := s.AddEdge(c, d); !ok {
		t.Fatalf("AddEdge c-d failed")
	}
	return s
}

func TestPlanarizeSplitsCrossingLines(t *testing.T) {
	s := buildCross(t)
	g := Planarize(s, Options{})
	if len(g.Vertices) != 5 {
		t.Fatalf("expected 5 vertices (4 endpoints + 1 crossing), got %d", len(g.Vertices))
	}
	if len(g.HalfEdges) != 8 {
		t.Fatalf("expected 8 half-edges (4 sub-segments x 2 directions), got %d", len(g.HalfEdges))
	}
	for i, he := range g.HalfEdges {
		twin := g.HalfEdges[he.Twin]
		if twin.Origin != he.Dest || twin.Dest != he.Origin {
			t.Errorf("half-edge %d's twin does not reverse it", i)
		}
	}
}

func TestPlanarizeRTreeMatchesGridVertexCount(t *testing.T) {
	s := buildCross(t)
	grid := Planarize(s, Options{UseRTree: false})
	rtree := Planarize(s, Options{UseRTree: true})
	if len(grid.Vertices) != len(rtree.Vertices) {
		t.Fatalf("grid found %d vertices, rtree found %d", len(grid.Vertices), len(rtree.Vertices))
	}
}

func TestPlanarizeEmptyStore(t *testing.T) {
	s := vnstore.New()
	g := Planarize(s, Options{})
	if len(g.Vertices) != 0 || len(g.HalfEdges) != 0 {
		t.Fatalf("expected empty graph for empty store")
	}
}

func TestPlanarizeNonCrossingSegmentsProduceNoExtraVertices(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(1, 0)
	c, _ := s.AddNode(0, 5)
	d, _ := s.AddNode(1, 5)
	s.AddEdge(a, b)
	s.AddEdge(c, d)
	g := Planarize(s, Options{})
	if len(g.Vertices) != 4 {
		t.Fatalf("expected 4 vertices for disjoint segments, got %d", len(g.Vertices))
	}
}

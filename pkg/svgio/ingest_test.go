package svgio

import (
	"strings"
	"testing"

	"github.com/chazu/vecnet/internal/config"
	"github.com/chazu/vecnet/pkg/vnstore"
)

func TestAddSVGPathLineTriangle(t *testing.T) {
	s := vnstore.New()
	ids, err := AddSVGPath(s, "M 0 0 L 10 0 L 5 10 Z", config.Standard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 edges for a closed triangle, got %d", len(ids))
	}
	if s.NodeCount() != 3 {
		t.Fatalf("expected 3 nodes, got %d", s.NodeCount())
	}
}

func TestAddSVGPathCubic(t *testing.T) {
	s := vnstore.New()
	ids, err := AddSVGPath(s, "M 0 0 C 1 1 2 1 3 0", config.Standard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(ids))
	}
	e := s.GetEdge(ids[0])
	if !e.IsCubic() {
		t.Fatalf("expected cubic edge")
	}
}

func TestAddSVGPathRelativeCommands(t *testing.T) {
	s := vnstore.New()
	ids, err := AddSVGPath(s, "m 0 0 l 10 0 l 0 10 z", config.Standard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(ids))
	}
}

func TestAddSVGPathRejectsOutOfBoundsCoordinate(t *testing.T) {
	s := vnstore.New()
	_, err := AddSVGPath(s, "M 0 0 L 99999999999 0", config.Standard())
	if err == nil {
		t.Fatalf("expected error for out-of-bounds coordinate")
	}
}

func TestAddSVGPathRejectsUnsupportedCommand(t *testing.T) {
	s := vnstore.New()
	_, err := AddSVGPath(s, "M 0 0 Q 1 1 2 2", config.Standard())
	if err == nil {
		t.Fatalf("expected error for unsupported command")
	}
}

func TestToSVGPathsRoundTripsLineEdge(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 10)
	s.AddEdge(a, b)
	paths := ToSVGPaths(s)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path fragment, got %d", len(paths))
	}
	if !strings.Contains(paths[0], "L 10 10") {
		t.Fatalf("expected path to contain line segment, got %q", paths[0])
	}
}

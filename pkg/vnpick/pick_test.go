package vnpick

import (
	"testing"

	"github.com/chazu/vecnet/pkg/vnstore"
)

func TestPickPrefersNodeOverEdge(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(100, 0)
	s.AddEdge(a, b)

	r, ok := Pick(s, 0, 0, 5)
	if !ok || r.Kind != KindNode || r.NodeID != a {
		t.Fatalf("expected node pick at node a, got %+v ok=%v", r, ok)
	}
}

func TestPickPrefersHandleOverNode(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(100, 0)
	id, _ := s.AddEdge(a, b)
	s.SetEdgeCubic(id, 2, 2, 98, 2)

	r, ok := Pick(s, 2, 2, 5)
	if !ok || r.Kind != KindHandle || r.EdgeID != id || r.HandleEnd != 0 {
		t.Fatalf("expected handle pick, got %+v ok=%v", r, ok)
	}
}

func TestPickFallsBackToEdgeMidpoint(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(100, 0)
	id, _ := s.AddEdge(a, b)

	r, ok := Pick(s, 50, 1, 5)
	if !ok || r.Kind != KindEdge || r.EdgeID != id {
		t.Fatalf("expected edge pick, got %+v ok=%v", r, ok)
	}
	if r.T < 0.4 || r.T > 0.6 {
		t.Fatalf("expected t near 0.5, got %f", r.T)
	}
}

func TestPickReturnsFalseWhenNothingWithinTolerance(t *testing.T) {
	s := vnstore.New()
	s.AddNode(0, 0)
	if _, ok := Pick(s, 1000, 1000, 5); ok {
		t.Fatalf("expected no pick far from any entity")
	}
}

package vnapi

import (
	"math"
	"testing"

	"github.com/chazu/vecnet/pkg/vnstore"
)

func TestAddNodeStrictRejectsNonFinite(t *testing.T) {
	s := vnstore.New()
	res := AddNode(s, float32(math.NaN()), 0)
	if res.OK {
		t.Fatalf("expected failure for NaN coordinate")
	}
	if res.Err.Code != "non_finite" {
		t.Fatalf("expected non_finite error, got %q", res.Err.Code)
	}
}

func TestAddNodeStrictSucceeds(t *testing.T) {
	s := vnstore.New()
	res := AddNode(s, 1, 2)
	if !res.OK {
		t.Fatalf("expected success, got %+v", res.Err)
	}
	if _, ok := res.Value.(vnstore.NodeID); !ok {
		t.Fatalf("expected NodeID value, got %T", res.Value)
	}
}

func TestAddEdgeStrictRejectsUnknownNode(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	res := AddEdge(s, a, 99)
	if res.OK || res.Err.Code != "invalid_id" {
		t.Fatalf("expected invalid_id error, got %+v", res)
	}
}

func TestAddEdgeStrictAbortsBeforeAnyMutation(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	before := s.GeomVersion()
	res := AddEdge(s, a, a)
	if res.OK {
		t.Fatalf("expected failure for self-loop edge")
	}
	if s.GeomVersion() != before {
		t.Fatalf("strict validation failure must not mutate the store")
	}
}

func TestSetHandlePosStrictRejectsNonCubicEdge(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	id, _ := s.AddEdge(a, b)
	res := SetHandlePos(s, id, 0, 1, 1)
	if res.OK || res.Err.Code != "not_cubic" {
		t.Fatalf("expected not_cubic error, got %+v", res)
	}
}

func TestBendEdgeToStrictRejectsBadStiffness(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	id, _ := s.AddEdge(a, b)
	res := BendEdgeTo(s, id, 0.5, 5, 5, 0)
	if res.OK || res.Err.Code != "out_of_range" {
		t.Fatalf("expected out_of_range error, got %+v", res)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := vnstore.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	id, _ := s.AddEdge(a, b)
	s.SetEdgeCubic(id, 2, 2, 8, 2)

	data, err := ToJSON(s)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	loaded := vnstore.New()
	if !FromJSON(loaded, data) {
		t.Fatalf("FromJSON failed to load valid document")
	}
	if loaded.NodeCount() != 2 || loaded.EdgeCount() != 1 {
		t.Fatalf("expected 2 nodes and 1 edge after round trip, got %d/%d", loaded.NodeCount(), loaded.EdgeCount())
	}
}

func TestFromJSONRejectsMalformedDocument(t *testing.T) {
	s := vnstore.New()
	if FromJSON(s, []byte("not json")) {
		t.Fatalf("expected FromJSON to reject malformed input")
	}
}

func TestFromJSONStrictReportsVersionMismatch(t *testing.T) {
	s := vnstore.New()
	res := FromJSONStrict(s, []byte(`{"version":99,"nodes":[],"edges":[],"fills":[]}`))
	if res.OK {
		t.Fatalf("expected failure for unsupported version")
	}
}

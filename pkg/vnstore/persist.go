package vnstore

// LoadRaw replaces the store's contents wholesale with the given nodes,
// edges, and fill map, preserving their ids exactly (any id not present
// becomes a hole on the free list, just as if it had been removed).
// Used only by pkg/vnapi's JSON loader, which is the one caller
// permitted to reconstruct a store's arena directly rather than through
// AddNode/AddEdge — the wire format is id-addressed (spec.md §6).
func (s *Store) LoadRaw(nodes []Node, edges []Edge, fills map[uint64]FillState) {
	s.Clear()

	var maxNode NodeID
	for _, n := range nodes {
		if n.ID+1 > maxNode {
			maxNode = n.ID + 1
		}
	}
	s.nodes = make([]*Node, maxNode)
	for _, n := range nodes {
		nn := n
		s.nodes[n.ID] = &nn
	}
	for i, ptr := range s.nodes {
		if ptr == nil {
			s.freeNodes = append(s.freeNodes, NodeID(i))
		}
	}

	var maxEdge EdgeID
	for _, e := range edges {
		if e.ID+1 > maxEdge {
			maxEdge = e.ID + 1
		}
	}
	s.edges = make([]*Edge, maxEdge)
	for _, e := range edges {
		ee := e
		s.edges[e.ID] = &ee
	}
	for i, ptr := range s.edges {
		if ptr == nil {
			s.freeEdges = append(s.freeEdges, EdgeID(i))
		}
	}

	if fills == nil {
		fills = make(map[uint64]FillState)
	}
	s.fills = fills

	s.bumpGeom()
	s.bumpFill()
}

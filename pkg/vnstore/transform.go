package vnstore

// TransformAll applies a uniform scale + translate to every node position
// and polyline point, and the scale alone to every cubic handle offset
// (offsets are relative to their node, so they are not translated).
// Grounded on
// original_source/contour/src/lib.rs::transform_all.
func (s *Store) TransformAll(scale, tx, ty float32, scaleStroke bool) {
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		n.Pos.X = n.Pos.X*scale + tx
		n.Pos.Y = n.Pos.Y*scale + ty
	}
	for _, e := range s.edges {
		if e == nil {
			continue
		}
		switch k := e.Kind.(type) {
		case LineKind:
		case CubicKind:
			k.HA.X *= scale
			k.HA.Y *= scale
			k.HB.X *= scale
			k.HB.Y *= scale
			e.Kind = k
		case PolylineKind:
			for i := range k.Points {
				k.Points[i].X = k.Points[i].X*scale + tx
				k.Points[i].Y = k.Points[i].Y*scale + ty
			}
		}
		if scaleStroke {
			e.StrokeWidth *= scale
		}
	}
	s.bumpGeom()
}

// TranslateNodes shifts the listed nodes by (dx,dy), skipping unknown
// ids, and returns the number actually moved.
func (s *Store) TranslateNodes(ids []NodeID, dx, dy float32) int {
	moved := 0
	for _, id := range ids {
		n := s.nodeAt(id)
		if n == nil {
			continue
		}
		n.Pos.X += dx
		n.Pos.Y += dy
		moved++
	}
	if moved > 0 {
		s.bumpGeom()
	}
	return moved
}

// TranslateEdges shifts every node touched by the listed edges by
// (dx,dy). When splitShared is true, nodes also touched by edges NOT in
// the list are first duplicated (a fresh node at the same position is
// created and the selected edges repointed to it) so that translating the
// selection detaches it from the rest of the graph, matching
// original_source/contour/src/lib.rs::translate_edges.
func (s *Store) TranslateEdges(edgeIDs []EdgeID, dx, dy float32, splitShared bool) int {
	selected := make(map[EdgeID]bool, len(edgeIDs))
	for _, id := range edgeIDs {
		selected[id] = true
	}

	touched := make(map[NodeID]bool)
	for _, id := range edgeIDs {
		e := s.edgeAt(id)
		if e == nil {
			continue
		}
		touched[e.A] = true
		touched[e.B] = true
	}

	if splitShared {
		remap := make(map[NodeID]NodeID)
		for nid := range touched {
			usedElsewhere := false
			for _, e := range s.edges {
				if e == nil || selected[e.ID] {
					continue
				}
				if e.A == nid || e.B == nid {
					usedElsewhere = true
					break
				}
			}
			if usedElsewhere {
				pos := s.nodes[nid].Pos
				newID, _ := s.AddNode(pos.X, pos.Y)
				remap[nid] = newID
			}
		}
		if len(remap) > 0 {
			for _, id := range edgeIDs {
				e := s.edgeAt(id)
				if e == nil {
					continue
				}
				if n, ok := remap[e.A]; ok {
					e.A = n
				}
				if n, ok := remap[e.B]; ok {
					e.B = n
				}
			}
			for oldID, newID := range remap {
				delete(touched, oldID)
				touched[newID] = true
			}
		}
	}

	moved := 0
	for nid := range touched {
		if s.MoveNode(nid, s.nodes[nid].Pos.X+dx, s.nodes[nid].Pos.Y+dy) {
			moved++
		}
	}
	return moved
}

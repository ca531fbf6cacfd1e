package vnregion

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/chazu/vecnet/pkg/planarize"
	"github.com/chazu/vecnet/pkg/vngeom"
	"github.com/chazu/vecnet/pkg/vnstore"
)

// Region pairs a walked Face with its persisted fill state.
type Region struct {
	Key      uint64
	Face     Face
	Filled   bool
	Color    *vnstore.Color
	Centroid vngeom.Vec2
}

// Recompute planarizes the store, walks its faces, and reconciles fill
// state against the store's own fill map and prev (the region list
// returned by the previous Recompute call, or nil on first use): a key
// already in the store's fill map (set through SetRegionFill,
// ToggleRegionFill or SetRegionColor, or loaded from persisted JSON)
// keeps that state, a key found only in prev keeps prev's fill/color,
// and anything left over is matched to the nearest-centroid region among
// those that disappeared this round, breaking ties by the smaller region
// key. A brand-new region with no match at all defaults to
// filled=false, color=unset (DESIGN.md Open Question (b)).
//
// If the half-edge walk produces no bounded faces at all, Recompute
// falls back to findSimpleCycles, which detects degree-2 cycles
// directly on the store's node/edge graph and reconstructs their
// boundaries from real edge geometry rather than planarized chords
// (spec.md §4.5).
func Recompute(s *vnstore.Store, opts planarize.Options, prev []Region) []Region {
	g := planarize.Planarize(s, opts)
	faces := WalkFaces(g)
	if len(faces) == 0 {
		faces = findSimpleCycles(s)
	}

	newKeys := make(map[uint64]bool, len(faces))
	regions := make([]Region, len(faces))
	for i, f := range faces {
		k := RegionKey(f)
		newKeys[k] = true
		regions[i] = Region{Key: k, Face: f, Centroid: f.Centroid}
	}

	prevByKey := make(map[uint64]Region, len(prev))
	for _, r := range prev {
		prevByKey[r.Key] = r
	}

	var unmatched []int
	for i := range regions {
		k := regions[i].Key
		if s.KnownRegionKey(k) {
			fs := s.FillFor(k)
			regions[i].Filled = fs.Filled
			regions[i].Color = fs.Color
			continue
		}
		if pr, ok := prevByKey[k]; ok {
			regions[i].Filled = pr.Filled
			regions[i].Color = pr.Color
			continue
		}
		unmatched = append(unmatched, i)
	}

	disappeared := lo.Filter(prev, func(r Region, _ int) bool { return !newKeys[r.Key] })
	sort.Slice(disappeared, func(a, b int) bool { return disappeared[a].Key < disappeared[b].Key })

	claimed := make([]bool, len(disappeared))
	for _, idx := range unmatched {
		best := -1
		bestDist := 0.0
		for j, d := range disappeared {
			if claimed[j] {
				continue
			}
			dist := distSq(regions[idx].Centroid, d.Centroid)
			if best == -1 || dist < bestDist || (dist == bestDist && d.Key < disappeared[best].Key) {
				best = j
				bestDist = dist
			}
		}
		if best >= 0 {
			claimed[best] = true
			regions[idx].Filled = disappeared[best].Filled
			regions[idx].Color = disappeared[best].Color
		}
	}

	fillMap := make(map[uint64]vnstore.FillState, len(regions))
	for _, r := range regions {
		fillMap[r.Key] = vnstore.FillState{Filled: r.Filled, Color: r.Color}
	}
	s.SetFills(fillMap)

	return regions
}

func distSq(a, b vngeom.Vec2) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}

// HexColor renders a region's color as a "#rrggbb" string using
// go-colorful, or "" if the region has no color set.
func HexColor(c *vnstore.Color) string {
	if c == nil {
		return ""
	}
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cc.Hex()
}

package planarize

import "math"

// broadphase narrows the O(n^2) segment-pair intersection test down to
// pairs whose bounding boxes plausibly overlap.
type broadphase interface {
	candidatePairs(segs []segment) [][2]int
}

// gridBroadphase buckets segments into uniform cells sized off the
// average segment length (at least 1 unit), registering each segment in
// every cell its bounding box covers, then only tests pairs that share
// at least one cell.
type gridBroadphase struct{}

func (gridBroadphase) candidatePairs(segs []segment) [][2]int {
	if len(segs) == 0 {
		return nil
	}
	total := 0.0
	for _, s := range segs {
		total += float64(s.a.Sub(s.b).Len())
	}
	cell := total / float64(len(segs))
	if cell < 1.0 {
		cell = 1.0
	}

	type cellKey struct{ x, y int }
	buckets := make(map[cellKey][]int)
	cellOf := func(v float64) int { return int(math.Floor(v / cell)) }

	for i, s := range segs {
		minX, minY, maxX, maxY := bbox(s)
		x0, y0 := cellOf(minX), cellOf(minY)
		x1, y1 := cellOf(maxX), cellOf(maxY)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				k := cellKey{x, y}
				buckets[k] = append(buckets[k], i)
			}
		}
	}

	seen := make(map[[2]int]bool)
	var out [][2]int
	for _, members := range buckets {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}

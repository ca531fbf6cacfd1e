package planarize

import "github.com/dhconnelly/rtreego"

// rtreeBroadphase is the alternate broadphase strategy backed by
// github.com/dhconnelly/rtreego: each segment's bounding box is inserted
// into an R-tree and candidate pairs come from intersecting every
// segment's box against the tree. Selected via Options.UseRTree when a
// caller wants sub-linear query behavior on very large, spatially
// clustered inputs rather than the grid's fixed cell size.
type rtreeBroadphase struct{}

type segSpatial struct {
	index int
	rect  rtreego.Rect
}

func (s *segSpatial) Bounds() rtreego.Rect { return s.rect }

const rtreeBoxPad = 1e-6

func segRect(s segment) rtreego.Rect {
	minX, minY, maxX, maxY := bbox(s)
	w := maxX - minX + rtreeBoxPad
	h := maxY - minY + rtreeBoxPad
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	if err != nil {
		rect, _ = rtreego.NewRect(rtreego.Point{minX, minY}, []float64{rtreeBoxPad, rtreeBoxPad})
	}
	return rect
}

func (rtreeBroadphase) candidatePairs(segs []segment) [][2]int {
	if len(segs) == 0 {
		return nil
	}
	tree := rtreego.NewTree(2, 4, 16)
	objs := make([]*segSpatial, len(segs))
	for i, s := range segs {
		obj := &segSpatial{index: i, rect: segRect(s)}
		objs[i] = obj
		tree.Insert(obj)
	}

	seen := make(map[[2]int]bool)
	var out [][2]int
	for i, obj := range objs {
		hits := tree.SearchIntersect(obj.rect)
		for _, h := range hits {
			other, ok := h.(*segSpatial)
			if !ok || other.index == i {
				continue
			}
			a, b := i, other.index
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
	return out
}

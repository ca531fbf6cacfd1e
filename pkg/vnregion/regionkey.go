package vnregion

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/chazu/vecnet/pkg/vnstore"
)

// RegionKey computes a stable identity for a face from the compressed
// sequence of source-edge ids around its boundary: the sequence and its
// reverse are each rotated to their lexicographically-minimal form, the
// smaller of the two is kept, and that canonical sequence is hashed with
// 64-bit FNV-1a over little-endian u64 id words (DESIGN.md Open Question
// (c); spec.md §9). Two faces bounded by the same cyclic run of edges,
// walked from any starting edge or in either direction, produce the same
// key.
func RegionKey(f Face) uint64 {
	canon := canonicalSequence(f.EdgeSeq)
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, id := range canon {
		binary.LittleEndian.PutUint64(buf, uint64(id))
		h.Write(buf)
	}
	return h.Sum64()
}

func canonicalSequence(seq []vnstore.EdgeID) []vnstore.EdgeID {
	if len(seq) == 0 {
		return seq
	}
	reversed := make([]vnstore.EdgeID, len(seq))
	for i, id := range seq {
		reversed[len(seq)-1-i] = id
	}
	fwd := minimalRotation(seq)
	rev := minimalRotation(reversed)
	if lessSeq(rev, fwd) {
		return rev
	}
	return fwd
}

// minimalRotation returns the lexicographically-smallest rotation of seq,
// comparing by underlying edge id at each position. O(n^2) is fine here:
// face boundaries are small.
func minimalRotation(seq []vnstore.EdgeID) []vnstore.EdgeID {
	n := len(seq)
	if n <= 1 {
		return seq
	}
	bestStart := 0
	for start := 1; start < n; start++ {
		if rotationLess(seq, start, bestStart) {
			bestStart = start
		}
	}
	out := make([]vnstore.EdgeID, n)
	for i := 0; i < n; i++ {
		out[i] = seq[(bestStart+i)%n]
	}
	return out
}

func rotationLess(seq []vnstore.EdgeID, a, b int) bool {
	n := len(seq)
	for i := 0; i < n; i++ {
		va := seq[(a+i)%n]
		vb := seq[(b+i)%n]
		if va != vb {
			return va < vb
		}
	}
	return false
}

func lessSeq(a, b []vnstore.EdgeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

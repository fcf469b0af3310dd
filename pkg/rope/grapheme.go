package rope

import "github.com/clipperhouse/uax29/graphemes"

// isGraphemeBoundary reports whether pos lies on a grapheme-cluster
// boundary within data. It segments only the single leaf-sized buffer
// under consideration, since it runs on every candidate split point during
// an edit and must stay cheap.
func isGraphemeBoundary(data []byte, pos int) bool {
	if pos <= 0 || pos >= len(data) {
		return true
	}
	offset := 0
	seg := graphemes.NewSegmenter(data)
	for seg.Next() {
		offset += len(seg.Bytes())
		if offset == pos {
			return true
		}
		if offset > pos {
			return false
		}
	}
	return false
}

// graphemeBoundaries returns every grapheme-cluster boundary offset within
// data, including 0 and len(data). Used by isIndivisibleGrapheme and by
// buildLeaves when nearestSafeSplit finds no legal interior split point
// before the target cut.
func graphemeBoundaries(data []byte) []int {
	bounds := []int{0}
	offset := 0
	seg := graphemes.NewSegmenter(data)
	for seg.Next() {
		offset += len(seg.Bytes())
		bounds = append(bounds, offset)
	}
	return bounds
}

// isIndivisibleGrapheme reports whether data is exactly one grapheme
// cluster taking up the whole buffer -- the only situation in which a
// leaf is allowed to exceed maxBytes.
func isIndivisibleGrapheme(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	bounds := graphemeBoundaries(data)
	return len(bounds) == 2 && bounds[1] == len(data)
}

package rope

import "github.com/rivo/uniseg"

// width.go adds the display-width query a terminal or fixed-width text
// view needs on top of byte/char/line counts: how many terminal cells a
// span of text occupies.

// DisplayWidth returns the monospace terminal cell width of the slice's
// content, accounting for wide (CJK), zero-width (combining), and
// ambiguous-width runes the same way uniseg's state machine does for any
// other text-grid layout.
func (s *RopeSlice) DisplayWidth() int {
	str := s.String()
	width := 0
	state := -1
	for len(str) > 0 {
		var w int
		_, str, w, state = uniseg.FirstGraphemeClusterInString(str, state)
		width += w
	}
	return width
}

// DisplayWidth returns the display width of the whole rope's content.
func (r *Rope) DisplayWidth() int {
	return r.Slice(0, r.LenBytes()).DisplayWidth()
}

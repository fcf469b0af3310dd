package rope

import "unicode/utf8"

// RopeSlice is a read-only view over a byte range of a Rope, with two
// representations sharing one API: a "light" slice over a
// small contiguous buffer (returned for any range of at most
// lightSliceThreshold bytes, whose bytes are copied out of the Rope even
// when they sit in one leaf, or built directly from raw bytes) needs no
// parent Rope at all; a "heavy" slice over a wider range keeps a reference to its
// source Rope and re-walks it on demand instead of copying. Both compute
// their own TextInfo once at construction so Len* calls are O(1).
type RopeSlice struct {
	info TextInfo

	// heavy representation
	src        *Rope
	start, end int

	// light representation (src == nil)
	buf []byte
}

func newHeavySlice(src *Rope, start, end int) *RopeSlice {
	s := &RopeSlice{src: src, start: start, end: end}
	s.info = s.info.Add(treeInfoOfRange(src.root, start, end))
	return s
}

// newLightSlice wraps a standalone buffer too small to be worth tracking
// against its source Rope (e.g. a single chunk). data is not copied;
// callers must treat it as immutable for the slice's lifetime.
func newLightSlice(data []byte) *RopeSlice {
	return &RopeSlice{buf: data, info: computeTextInfo(data)}
}

// lightSliceThreshold bounds how large a requested range can be and
// still be worth materializing into a standalone light slice rather than
// keeping a heavy reference back into the source Rope: one leaf's worth
// of bytes. The range may still span two leaves.
const lightSliceThreshold = maxBytes

// sliceRope builds the RopeSlice for [start, end) of src, choosing light
// or heavy representation by range size.
func sliceRope(src *Rope, start, end int) *RopeSlice {
	if end-start <= lightSliceThreshold {
		out := make([]byte, 0, end-start)
		collectRange(src.root, start, end, 0, &out)
		return newLightSlice(out)
	}
	return newHeavySlice(src, start, end)
}

// NewRopeSliceFromBytes wraps an already-owned, contiguous buffer of
// valid UTF-8 as a standalone RopeSlice with no backing Rope -- the entry
// point for working with a foreign buffer (e.g. one read whole from
// disk, or produced by another library) through the same API as a view
// into a Rope. data is not copied; callers must not mutate it afterward.
func NewRopeSliceFromBytes(data []byte) (*RopeSlice, error) {
	if !utf8.Valid(data) {
		return nil, errNonUTF8()
	}
	return newLightSlice(data), nil
}

// treeInfoOfRange computes the TextInfo covering [start, end) by
// subtracting two byte-prefix scans, reusing the same cached per-child
// TextInfo an edit does: info(end-prefix) - info(start-prefix). Computing
// both prefixes walks the tree twice, each O(log n + fan-out); still far
// cheaper than rescanning the bytes in between for a wide range.
func treeInfoOfRange(h *nodeHandle, start, end int) TextInfo {
	if h == nil {
		return TextInfo{}
	}
	return prefixInfo(h, end).Sub(prefixInfo(h, start))
}

func prefixInfo(h *nodeHandle, byteIdx int) TextInfo {
	if h.isLeaf() {
		data := h.leaf.bytes()
		if byteIdx >= len(data) {
			return computeTextInfo(data)
		}
		return computeTextInfo(data[:byteIdx])
	}
	ch := h.internal
	idx, local := ch.searchByMetric(byteIdx, func(ti TextInfo) int { return int(ti.Bytes) })
	var acc TextInfo
	for i := 0; i < idx; i++ {
		acc = acc.Add(ch.info[i])
	}
	return acc.Add(prefixInfo(ch.handles[idx], local))
}

func (s *RopeSlice) LenBytes() int { return int(s.info.Bytes) }
func (s *RopeSlice) LenChars() int { return int(s.info.Chars) }
func (s *RopeSlice) LenUTF16() int { return int(s.info.Chars + s.info.UTF16Surrogates) }
func (s *RopeSlice) LenLines(flavor LineType) int {
	return int(s.info.lineBreaks(flavor))
}

// Bytes materializes the slice's content. For a heavy slice this copies
// out of its source Rope; for a light slice it returns the backing buffer
// directly.
func (s *RopeSlice) Bytes() []byte {
	if s.src == nil {
		return s.buf
	}
	out := make([]byte, 0, s.LenBytes())
	collectRange(s.src.root, s.start, s.end, 0, &out)
	return out
}

func (s *RopeSlice) String() string { return string(s.Bytes()) }

// collectRange appends the bytes of [start, end) (absolute offsets into
// the whole tree) found under h, whose own content begins at baseOffset.
func collectRange(h *nodeHandle, start, end, baseOffset int, out *[]byte) {
	if h == nil {
		return
	}
	nodeEnd := baseOffset + int(h.infoOf().Bytes)
	if nodeEnd <= start || baseOffset >= end {
		return
	}
	if h.isLeaf() {
		data := h.leaf.bytes()
		lo, hi := 0, len(data)
		if start > baseOffset {
			lo = start - baseOffset
		}
		if end < nodeEnd {
			hi = end - baseOffset
		}
		*out = append(*out, data[lo:hi]...)
		return
	}
	ch := h.internal
	offset := baseOffset
	for i := 0; i < ch.n; i++ {
		collectRange(ch.handles[i], start, end, offset, out)
		offset += int(ch.info[i].Bytes)
	}
}

// Slice narrows this slice to a sub-range, given in byte offsets local to
// s (0 is this slice's own start).
func (s *RopeSlice) TrySlice(start, end int) (*RopeSlice, error) {
	if start > end {
		return nil, errInvalidRange(start, end)
	}
	if end > s.LenBytes() {
		return nil, errOutOfBounds("bytes", end, s.LenBytes())
	}
	if s.src == nil {
		return newLightSlice(s.buf[start:end]), nil
	}
	return sliceRope(s.src, s.start+start, s.start+end), nil
}

func (s *RopeSlice) Slice(start, end int) *RopeSlice {
	out, err := s.TrySlice(start, end)
	if err != nil {
		panic(err)
	}
	return out
}

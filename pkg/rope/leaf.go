package rope

// leafText is the small-string container a leaf node holds. Up to maxBytes
// of UTF-8 live inline in the array field, so every leafText has the same
// size (see consts.go); it is not sized to match an internal node's
// children array.
//
// The one documented escape hatch: a leaf whose entire content is a single
// indivisible grapheme cluster larger than maxBytes spills to heap, since
// such a leaf must never be split at all.
type leafText struct {
	inline [maxBytes]byte
	n      int    // bytes used; valid when heap == nil
	heap   []byte // non-nil only for the oversized-indivisible-grapheme escape hatch
}

// newLeafText builds a leafText from data, which must be <= maxBytes unless
// forceOversize is set (the caller has already established data is one
// indivisible grapheme).
func newLeafText(data []byte, forceOversize bool) *leafText {
	lt := acquireLeafText()
	if len(data) > maxBytes {
		if !forceOversize {
			panic("rope: leaf content exceeds maxBytes without forceOversize")
		}
		lt.heap = append([]byte(nil), data...)
		return lt
	}
	lt.n = copy(lt.inline[:], data)
	return lt
}

func (lt *leafText) bytes() []byte {
	if lt.heap != nil {
		return lt.heap
	}
	return lt.inline[:lt.n]
}

func (lt *leafText) len() int {
	if lt.heap != nil {
		return len(lt.heap)
	}
	return lt.n
}

func (lt *leafText) clone() *leafText {
	out := acquireLeafText()
	out.n = lt.n
	if lt.heap != nil {
		out.heap = append([]byte(nil), lt.heap...)
	} else {
		copy(out.inline[:lt.n], lt.inline[:lt.n])
	}
	return out
}

// set overwrites the leaf's content with data, moving to the heap escape
// hatch if data exceeds maxBytes (only legal when oversize is true, i.e.
// the caller has verified data is one indivisible grapheme) and moving back
// off the heap if data now fits inline again.
func (lt *leafText) set(data []byte, oversize bool) {
	if len(data) > maxBytes {
		if !oversize {
			panic("rope: leaf content exceeds maxBytes without oversize")
		}
		lt.heap = append(lt.heap[:0], data...)
		lt.n = 0
		return
	}
	lt.heap = nil
	lt.n = copy(lt.inline[:], data)
}

// insert splices text into the leaf at byteIdx. It returns ok=false (and
// leaves the leaf unchanged) whenever the result would exceed maxBytes,
// even for one indivisible grapheme; the caller must then handle the
// oversize case or fall back to a split path.
func (lt *leafText) insert(byteIdx int, text []byte) (ok bool) {
	cur := lt.bytes()
	newLen := len(cur) + len(text)
	if newLen > maxBytes {
		return false
	}
	buf := make([]byte, 0, newLen)
	buf = append(buf, cur[:byteIdx]...)
	buf = append(buf, text...)
	buf = append(buf, cur[byteIdx:]...)
	lt.set(buf, false)
	return true
}

// remove deletes [start, end) in place. Must not be called with a range
// that would cut a scalar value or split a CRLF pair at the new boundary;
// callers enforce that before calling remove.
func (lt *leafText) remove(start, end int) {
	cur := lt.bytes()
	buf := make([]byte, 0, len(cur)-(end-start))
	buf = append(buf, cur[:start]...)
	buf = append(buf, cur[end:]...)
	lt.set(buf, false)
}

// append concatenates other onto the end of lt if the combined content
// fits within maxBytes. Returns false (no change) otherwise.
func (lt *leafText) append(other *leafText) bool {
	cur := lt.bytes()
	o := other.bytes()
	if len(cur)+len(o) > maxBytes {
		return false
	}
	buf := make([]byte, 0, len(cur)+len(o))
	buf = append(buf, cur...)
	buf = append(buf, o...)
	lt.set(buf, false)
	return true
}

// prepend concatenates other onto the front of lt if the combined content
// fits within maxBytes. Returns false (no change) otherwise.
func (lt *leafText) prepend(other *leafText) bool {
	cur := lt.bytes()
	o := other.bytes()
	if len(cur)+len(o) > maxBytes {
		return false
	}
	buf := make([]byte, 0, len(cur)+len(o))
	buf = append(buf, o...)
	buf = append(buf, cur...)
	lt.set(buf, false)
	return true
}

// split cuts the leaf at byteIdx, which the caller must have already
// verified is a scalar-value boundary that does not fall between \r and
// \n. lt retains the prefix; the returned leafText holds the suffix.
func (lt *leafText) split(byteIdx int) *leafText {
	cur := lt.bytes()
	suffix := append([]byte(nil), cur[byteIdx:]...)
	prefix := append([]byte(nil), cur[:byteIdx]...)
	lt.set(prefix, false)
	return newLeafText(suffix, len(suffix) > maxBytes)
}

// distribute rebalances bytes between two adjacent leaves so that neither
// is under minBytes when that is achievable without violating a
// boundary-safety rule. If no legal redistribution point exists (e.g. the
// combined content is one indivisible grapheme), both leaves are left
// unchanged.
func (lt *leafText) distribute(other *leafText, safeSplit func(data []byte, pos int) (int, bool)) {
	total := lt.len() + other.len()
	if total <= maxBytes {
		// Small enough to merge into lt entirely; caller is expected to
		// then drop other from its parent's children.
		if lt.append(other) {
			other.set(nil, false)
		}
		return
	}

	if lt.len() >= minBytes && other.len() >= minBytes {
		return
	}

	combined := make([]byte, 0, total)
	combined = append(combined, lt.bytes()...)
	combined = append(combined, other.bytes()...)

	target := total / 2
	pos, ok := safeSplit(combined, target)
	if !ok || pos == 0 || pos == total {
		return
	}

	lt.set(combined[:pos], false)
	other.set(combined[pos:], false)
}

package rope

// node_insert.go implements a single-chunk splice that never processes
// more than maxBytes of new text per recursive call. rope.go's public
// Insert/TryInsert breaks a large paste into a sequence of such calls, so
// each call overflows a leaf by at most one extra leaf, which keeps the
// upward signal a single sibling handle instead of an arbitrarily sized
// list -- the same shape tooLarge carries for every other overflow (an
// internal node splitting in two also ever produces exactly one new
// sibling).

// insertChunk splices data (len(data) <= maxBytes) into the subtree rooted
// at h, at byteIdx. It returns the (possibly new, possibly unique-ified)
// handle replacing h, and a non-nil *tooLarge if the caller must splice an
// additional same-depth sibling in just to the right of the returned
// handle.
func insertChunk(h *nodeHandle, byteIdx int, data []byte, cfg *Config) (*nodeHandle, *tooLarge) {
	h = h.makeUnique()

	if h.isLeaf() {
		return insertIntoLeaf(h, byteIdx, data, cfg)
	}

	ch := h.internal
	idx, local := ch.searchByMetric(byteIdx, func(ti TextInfo) int { return int(ti.Bytes) })

	childH, sig := insertChunk(ch.handles[idx], local, data, cfg)
	ch.handles[idx] = childH
	ch.info[idx] = childH.infoOf()

	if sig == nil {
		return h, nil
	}

	// The child overflowed; its sibling becomes a new entry immediately to
	// the right of idx, at this same level.
	ch.insert(idx+1, sig.sibling, sig.sibling.infoOf())

	if ch.n <= maxChildren {
		return h, nil
	}

	return splitInternalOverflow(h)
}

func insertIntoLeaf(h *nodeHandle, byteIdx int, data []byte, cfg *Config) (*nodeHandle, *tooLarge) {
	lt := h.leaf
	if lt.insert(byteIdx, data) {
		return h, nil
	}

	cur := lt.bytes()
	combined := make([]byte, 0, len(cur)+len(data))
	combined = append(combined, cur[:byteIdx]...)
	combined = append(combined, data...)
	combined = append(combined, cur[byteIdx:]...)

	if isIndivisibleGrapheme(combined) {
		lt.set(combined, true)
		return h, nil
	}

	pos, ok := nearestSafeSplit(combined, len(combined)/2, cfg)
	if !ok {
		// No legal split point anywhere in this buffer: treat it as one
		// indivisible unit, same as the single-grapheme escape hatch.
		lt.set(combined, true)
		return h, nil
	}

	lt.set(combined[:pos], isIndivisibleGrapheme(combined[:pos]))
	sibling := newLeafHandle(newLeafText(combined[pos:], isIndivisibleGrapheme(combined[pos:])))
	return h, &tooLarge{sibling: sibling}
}

// splitInternalOverflow splits an internal node whose children array has
// grown past maxChildren into two: h keeps the left half, and the
// returned tooLarge's sibling is a new internal node holding the right
// half.
func splitInternalOverflow(h *nodeHandle) (*nodeHandle, *tooLarge) {
	ch := h.internal
	mid := ch.n / 2
	right := ch.splitOff(mid)
	sibling := newInternalHandle(right)
	return h, &tooLarge{sibling: sibling}
}

package rope

// node_remove.go deletes [start, end) from the subtree rooted at h. The
// recursion can genuinely span many children in one call (a deletion is
// not chunked the way a large insertion is, since deleting never needs
// new storage), so this descent splits the edit into three sub-edits: a
// suffix removal from the leftmost affected child, whole removal of
// every child strictly between, and a prefix removal from the rightmost
// affected child.

// removeSignal reports what the caller must do about the child that just
// had a range removed from it.
type removeSignal int

const (
	removeNone removeSignal = iota
	removeEmpty
	removeSmall
)

func removeRange(h *nodeHandle, start, end int, cfg *Config) (*nodeHandle, removeSignal) {
	h = h.makeUnique()

	if h.isLeaf() {
		lt := h.leaf
		lt.remove(start, end)
		switch {
		case lt.len() == 0:
			return h, removeEmpty
		case lt.len() < minBytes:
			return h, removeSmall
		default:
			return h, removeNone
		}
	}

	ch := h.internal
	byteWidth := func(ti TextInfo) int { return int(ti.Bytes) }
	startIdx, startLocal := ch.searchByMetric(start, byteWidth)
	endIdx, endLocal := ch.searchByMetric(end, byteWidth)

	if startIdx == endIdx {
		childH, sig := removeRange(ch.handles[startIdx], startLocal, endLocal, cfg)
		applyChildResult(ch, startIdx, childH, sig)
	} else {
		rightH, rightSig := removeRange(ch.handles[endIdx], 0, endLocal, cfg)
		applyChildResult(ch, endIdx, rightH, rightSig)

		for i := endIdx - 1; i > startIdx; i-- {
			ch.remove(i)
		}

		leftH, leftSig := removeRange(ch.handles[startIdx], startLocal, int(ch.info[startIdx].Bytes), cfg)
		applyChildResult(ch, startIdx, leftH, leftSig)
	}

	fixupChildren(ch, cfg)

	switch {
	case ch.n == 0:
		return h, removeEmpty
	case ch.n < minChildren:
		return h, removeSmall
	default:
		return h, removeNone
	}
}

// applyChildResult writes a recursed child's result back into its parent's
// slot, dropping the slot entirely if the child emptied out. (Underflow
// below minBytes/minChildren that didn't empty the child is left for
// fixupChildren, which runs once after all slots at this level have been
// updated so it can see the whole, final picture.)
func applyChildResult(ch *children, idx int, childH *nodeHandle, sig removeSignal) {
	if sig == removeEmpty {
		ch.remove(idx)
		return
	}
	ch.handles[idx] = childH
	ch.info[idx] = childH.infoOf()
}

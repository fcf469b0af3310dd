package rope

// node_graft.go attaches a precomputed subtree of a known height to the
// right (append) or left (prepend) fringe of a tree that has exactly
// that height at the fringe, without rebuilding every ancestor.
// Rope.Append uses these to join two already-built Ropes in O(difference
// in height) instead of O(total size); Rope.FromChunks uses the
// bottom-up grouping in builder.go instead, since building from scratch
// never needs to graft onto an existing fringe.

// appendAtDepth attaches subtree as the new rightmost content at the level
// `depth` edges above a leaf. The caller must have already checked depth
// against h's actual height.
func appendAtDepth(h *nodeHandle, depth int, subtree *nodeHandle) (*nodeHandle, *tooLarge) {
	h = h.makeUnique()
	if depth == 0 {
		return mergeSameDepth(h, subtree)
	}
	ch := h.internal
	last := ch.n - 1
	childH, sig := appendAtDepth(ch.handles[last], depth-1, subtree)
	ch.handles[last] = childH
	ch.info[last] = childH.infoOf()
	if sig == nil {
		return h, nil
	}
	ch.insert(last+1, sig.sibling, sig.sibling.infoOf())
	if ch.n <= maxChildren {
		return h, nil
	}
	return splitInternalOverflow(h)
}

// prependAtDepth is appendAtDepth's mirror image: subtree is attached as
// new leftmost content, depth edges above a leaf.
func prependAtDepth(h *nodeHandle, depth int, subtree *nodeHandle) (*nodeHandle, *tooLarge) {
	h = h.makeUnique()
	if depth == 0 {
		return mergeSameDepthLeft(h, subtree)
	}
	ch := h.internal
	childH, sig := prependAtDepth(ch.handles[0], depth-1, subtree)
	ch.handles[0] = childH
	ch.info[0] = childH.infoOf()
	if sig == nil {
		return h, nil
	}
	ch.insert(0, sig.sibling, sig.sibling.infoOf())
	if ch.n <= maxChildren {
		return h, nil
	}
	return splitInternalOverflow(h)
}

// mergeSameDepth tries to fold subtree's content directly into h (both at
// the same height, hence the same kind); if it doesn't fit, subtree itself
// becomes the new sibling the caller must splice in.
func mergeSameDepth(h, subtree *nodeHandle) (*nodeHandle, *tooLarge) {
	if h.isLeaf() {
		if h.leaf.append(subtree.leaf) {
			return h, nil
		}
		return h, &tooLarge{sibling: subtree}
	}
	if h.internal.merge(subtree.internal) {
		return h, nil
	}
	return h, &tooLarge{sibling: subtree}
}

func mergeSameDepthLeft(h, subtree *nodeHandle) (*nodeHandle, *tooLarge) {
	if h.isLeaf() {
		if h.leaf.prepend(subtree.leaf) {
			return h, nil
		}
		return h, &tooLarge{sibling: subtree}
	}
	if subtree.internal.merge(h.internal) {
		return subtree, nil
	}
	return h, &tooLarge{sibling: subtree}
}

// fixSeam repairs a CRLF pair that joining two trees may have split across
// the new leaf boundary at their seam: the rightmost leaf of left ending in
// "\r" immediately followed by the leftmost leaf of right starting with
// "\n". This is the one place a graft can introduce such a split, since
// merging two leaves that *do* fit together happens inside a single
// leafText (no boundary at all) while a graft that doesn't fit leaves two
// adjacent leaves with a brand new boundary between them.
func fixSeam(left, right *nodeHandle) {
	if left == nil || right == nil {
		return
	}
	l := left.rightmostLeaf()
	r := right.leftmostLeaf()
	lb, rb := l.leaf.bytes(), r.leaf.bytes()
	if len(lb) == 0 || len(rb) == 0 {
		return
	}
	if lb[len(lb)-1] != '\r' || rb[0] != '\n' {
		return
	}
	l.leaf.set(append(append([]byte(nil), lb...), '\n'), false)
	r.leaf.set(rb[1:], false)
}

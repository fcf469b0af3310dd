package rope

// node_split.go cuts the tree at a scalar-value boundary into two
// independent trees. The only nodes at risk of ending up with fewer than
// minChildren entries are the ones directly on the path from the root
// down to the leaf being cut -- every sibling subtree copied in wholesale
// from the original tree keeps its original, already-valid child count.
//
// The recursion never collapses a single-child node on the way back up:
// doing so would shrink that node's height by one, and whenever the
// level above still has untouched full-height siblings to combine it
// with (idx > 0 on the left, or a non-last idx on the right), pushing a
// shorter node in among them would produce a children array whose
// entries sit at mixed depths. fixupChildren only checks byte/child-count
// thresholds, never height, and redistributeOrMerge assumes same-array-
// position entries are always the same kind, so neither would catch it.
// Instead, wrap always keeps the height consistent (wrapping even a
// singleton), and only the very top of the two returned subtrees -- which
// has no siblings left to mismatch with, exactly like collapseRoot's
// root-only discipline for removal -- gets its pointless single-child
// chain collapsed, by the caller.
func splitTree(h *nodeHandle, byteIdx int, cfg *Config) (left, right *nodeHandle) {
	if h.isLeaf() {
		cur := h.leaf.bytes()
		if byteIdx <= 0 {
			return nil, h
		}
		if byteIdx >= len(cur) {
			return h, nil
		}
		pos, ok := nearestSafeSplit(cur, byteIdx, cfg)
		if !ok {
			// Indivisible content (e.g. one oversize grapheme): keep it
			// whole on whichever side the cut point is closer to.
			if byteIdx*2 < len(cur) {
				return nil, h
			}
			return h, nil
		}
		leftData := append([]byte(nil), cur[:pos]...)
		rightData := append([]byte(nil), cur[pos:]...)
		var l, r *nodeHandle
		if len(leftData) > 0 {
			l = newLeafHandle(newLeafText(leftData, isIndivisibleGrapheme(leftData)))
		}
		if len(rightData) > 0 {
			r = newLeafHandle(newLeafText(rightData, isIndivisibleGrapheme(rightData)))
		}
		return l, r
	}

	ch := h.internal
	byteWidth := func(ti TextInfo) int { return int(ti.Bytes) }
	idx, local := ch.searchByMetric(byteIdx, byteWidth)

	childLeft, childRight := splitTree(ch.handles[idx], local, cfg)

	leftCh := acquireChildren()
	for i := 0; i < idx; i++ {
		leftCh.push(ch.handles[i].retain(), ch.info[i])
	}
	if childLeft != nil {
		leftCh.push(childLeft, childLeft.infoOf())
	}

	rightCh := acquireChildren()
	if childRight != nil {
		rightCh.push(childRight, childRight.infoOf())
	}
	for i := idx + 1; i < ch.n; i++ {
		rightCh.push(ch.handles[i].retain(), ch.info[i])
	}

	fixupChildren(leftCh, cfg)
	fixupChildren(rightCh, cfg)

	return wrap(leftCh), wrap(rightCh)
}

// wrap returns nil for an empty children set and an internal node
// otherwise, including for a singleton: it never unwraps a sole child,
// since that would change this node's height while siblings above may
// still be full-height. See collapseSingletonChain for where unwrapping
// a singleton is actually safe.
func wrap(ch *children) *nodeHandle {
	if ch.n == 0 {
		childrenPool.Put(ch)
		return nil
	}
	return newInternalHandle(ch)
}

// collapseSingletonChain strips single-child wrapper levels from the top
// of h downward, stopping at the first node with more than one child (or
// at a leaf). Safe to call only on a node with no siblings of its own --
// the root of a just-built tree, or one side of a fresh split -- since it
// changes h's height.
func collapseSingletonChain(h *nodeHandle) *nodeHandle {
	for h != nil && !h.isLeaf() && h.internal.n == 1 {
		child := h.internal.handles[0]
		h.internal.handles[0] = nil
		h.internal.n = 0
		childrenPool.Put(h.internal)
		handlePool.Put(h)
		h = child
	}
	return h
}

package rope

// node_rebalance.go is the rebalance helper used after a removal: walk
// the affected children and bring any entry back within [minBytes,
// maxBytes] (leaves) or [minChildren, maxChildren] (internal nodes) by
// merging with or redistributing from a sibling, preferring the left
// sibling when both are candidates (a deterministic tie-break).

func entryUnderfull(h *nodeHandle) bool {
	if h.isLeaf() {
		return h.leaf.len() < minBytes
	}
	return h.internal.n < minChildren
}

// fixupChildren repeatedly merges or redistributes underfull entries in ch
// with a sibling until no more progress can be made. It terminates because
// every merge/redistribute attempt either shrinks ch.n (merge) or brings
// both sides into bounds (redistribute) -- both are given our constants
// (maxChildren == 2*minChildren, maxBytes == 2*minBytes) -- except the one
// case allowed to remain unfixed: two leaves whose combined content has
// no legal split point (one indivisible grapheme), which distribute
// reports back as no progress so the loop can stop.
func fixupChildren(ch *children, cfg *Config) {
	for {
		progressed := false
		for i := 0; i < ch.n; i++ {
			if !entryUnderfull(ch.handles[i]) {
				continue
			}
			if i > 0 && redistributeOrMerge(ch, i-1, cfg) {
				progressed = true
				break
			}
			if i+1 < ch.n && redistributeOrMerge(ch, i, cfg) {
				progressed = true
				break
			}
		}
		if !progressed {
			return
		}
	}
}

// redistributeOrMerge fixes up the adjacent pair (i, i+1), which must be
// the same kind (both leaves or both internal nodes, since all children of
// ch sit at the same depth). It returns whether it made any change.
func redistributeOrMerge(ch *children, i int, cfg *Config) bool {
	left := ch.handles[i].makeUnique()
	right := ch.handles[i+1].makeUnique()
	ch.handles[i] = left
	ch.handles[i+1] = right

	if left.isLeaf() {
		ll, rl := left.leaf, right.leaf
		before := ll.len()
		beforeR := rl.len()
		ll.distribute(rl, func(data []byte, pos int) (int, bool) {
			return nearestSafeSplit(data, pos, cfg)
		})
		if rl.len() == 0 {
			ch.remove(i + 1)
			ch.info[i] = computeTextInfo(ll.bytes())
			return true
		}
		if ll.len() == before && rl.len() == beforeR {
			return false
		}
		ch.info[i] = computeTextInfo(ll.bytes())
		ch.info[i+1] = computeTextInfo(rl.bytes())
		return true
	}

	lc, rc := left.internal, right.internal
	if lc.merge(rc) {
		ch.remove(i + 1)
		ch.info[i] = lc.totalInfo()
		return true
	}

	total := lc.n + rc.n
	target := total / 2
	for lc.n < target {
		h, ti := rc.remove(0)
		lc.push(h, ti)
	}
	for lc.n > target {
		h, ti := lc.pop()
		rc.insert(0, h, ti)
	}
	ch.info[i] = lc.totalInfo()
	ch.info[i+1] = rc.totalInfo()
	return true
}

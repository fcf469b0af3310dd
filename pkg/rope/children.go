package rope

// children is the fixed-capacity payload of an internal node: up to
// maxChildren child handles and a parallel array of their precomputed
// TextInfo, kept as two dense arrays (not one array-of-structs) so a
// linear scan over info during a search touches only TextInfo-sized cache
// lines, never the handle pointers: a linear scan is preferred over a
// binary search here because maxChildren is small and the array is dense
// in cache lines.
type children struct {
	handles [maxChildren]*nodeHandle
	info    [maxChildren]TextInfo
	n       int
}

func (c *children) len() int { return c.n }

func (c *children) clone() *children {
	out := acquireChildren()
	out.n = c.n
	copy(out.handles[:c.n], c.handles[:c.n])
	copy(out.info[:c.n], c.info[:c.n])
	for i := 0; i < c.n; i++ {
		out.handles[i].retain()
	}
	return out
}

// totalInfo sums the TextInfo of every child.
func (c *children) totalInfo() TextInfo {
	var ti TextInfo
	for i := 0; i < c.n; i++ {
		ti = ti.Add(c.info[i])
	}
	return ti
}

// insert places (h, ti) at index i, shifting subsequent entries right. The
// caller is responsible for checking len() < maxChildren first, or for
// splitting afterward if it overflows.
func (c *children) insert(i int, h *nodeHandle, ti TextInfo) {
	copy(c.handles[i+1:c.n+1], c.handles[i:c.n])
	copy(c.info[i+1:c.n+1], c.info[i:c.n])
	c.handles[i] = h
	c.info[i] = ti
	c.n++
}

// remove deletes the entry at index i and returns it.
func (c *children) remove(i int) (*nodeHandle, TextInfo) {
	h, ti := c.handles[i], c.info[i]
	copy(c.handles[i:c.n-1], c.handles[i+1:c.n])
	copy(c.info[i:c.n-1], c.info[i+1:c.n])
	c.n--
	c.handles[c.n] = nil
	return h, ti
}

func (c *children) push(h *nodeHandle, ti TextInfo) {
	c.handles[c.n] = h
	c.info[c.n] = ti
	c.n++
}

func (c *children) pop() (*nodeHandle, TextInfo) {
	return c.remove(c.n - 1)
}

func (c *children) set(i int, h *nodeHandle, ti TextInfo) {
	c.handles[i] = h
	c.info[i] = ti
}

// splitOff removes and returns the entries from index i to the end as a
// new children container, shrinking c to just [0, i).
func (c *children) splitOff(i int) *children {
	out := acquireChildren()
	out.n = c.n - i
	copy(out.handles[:out.n], c.handles[i:c.n])
	copy(out.info[:out.n], c.info[i:c.n])
	for j := i; j < c.n; j++ {
		c.handles[j] = nil
	}
	c.n = i
	return out
}

// merge appends other's entries onto c. Returns false (no change) if the
// combined length would exceed maxChildren; the caller must then keep the
// two siblings separate instead.
func (c *children) merge(other *children) bool {
	if c.n+other.n > maxChildren {
		return false
	}
	copy(c.handles[c.n:c.n+other.n], other.handles[:other.n])
	copy(c.info[c.n:c.n+other.n], other.info[:other.n])
	c.n += other.n
	return true
}

// searchByMetric locates the child containing the given offset of the
// metric selected by get, and returns the child's index and the offset
// local to that child. The search clamps to the last child when offset
// lands exactly at the end of the whole subtree, so callers can always
// descend (e.g. inserting at the very end of the rope).
func (c *children) searchByMetric(offset int, get func(TextInfo) int) (idx, localOffset int) {
	acc := 0
	for i := 0; i < c.n; i++ {
		if i == c.n-1 {
			return i, offset - acc
		}
		w := get(c.info[i])
		if offset < acc+w {
			return i, offset - acc
		}
		acc += w
	}
	return 0, offset
}

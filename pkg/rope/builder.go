package rope

import "unicode/utf8"

// builder.go implements the bulk constructor: build a balanced tree
// bottom-up from a full buffer in O(n) instead of repeatedly inserting
// maxBytes chunks one at a time (each of which would otherwise ripple a
// rebalance up from the root). Leaves are cut first, respecting the same
// boundary-safety rules as an edit; then siblings are grouped maxChildren
// at a time into each level until a single root remains.

// buildLeaves cuts data into a sequence of leaf handles, each holding at
// most maxBytes and never splitting a scalar value, a CRLF pair, or (when
// cfg requires it) a grapheme cluster.
func buildLeaves(data []byte, cfg *Config) []*nodeHandle {
	if len(data) == 0 {
		return nil
	}
	var leaves []*nodeHandle
	for len(data) > 0 {
		if len(data) <= maxBytes {
			leaves = append(leaves, newLeafHandle(newLeafText(data, isIndivisibleGrapheme(data))))
			break
		}
		pos, ok := nearestSafeSplit(data, maxBytes, cfg)
		if !ok || pos == 0 {
			// No legal split within range of the target cut: the prefix up
			// to the first safe boundary past maxBytes is one indivisible
			// unit (e.g. a long combining-character run); take it whole.
			bounds := graphemeBoundaries(data[:min(len(data), maxBytes*2)])
			pos = len(data)
			for _, b := range bounds {
				if b > 0 {
					pos = b
					break
				}
			}
		}
		chunk := data[:pos]
		leaves = append(leaves, newLeafHandle(newLeafText(chunk, isIndivisibleGrapheme(chunk))))
		data = data[pos:]
	}
	return leaves
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// buildLevels groups handles maxChildren at a time into parent nodes,
// repeating until exactly one handle remains, which becomes the root.
// When a level's last group would have fewer than minChildren members and
// a group precedes it, the two are merged and re-split evenly, so only a
// level's sole group (which becomes the root) can fall below minChildren.
// A group of one handle is passed up unwrapped.
func buildLevels(handles []*nodeHandle) *nodeHandle {
	if len(handles) == 0 {
		return nil
	}
	for len(handles) > 1 {
		var next []*nodeHandle
		i := 0
		for i < len(handles) {
			end := i + maxChildren
			if end > len(handles) {
				end = len(handles)
			}
			// Avoid stranding a last group below minChildren when another
			// full group precedes it: fold the remainder back in and split
			// evenly instead.
			if end-i < minChildren && len(next) > 0 {
				prev := next[len(next)-1]
				next = next[:len(next)-1]
				merged := append(append([]*nodeHandle{}, prevGroupMembers(prev)...), handles[i:end]...)
				groups := splitEvenly(merged, maxChildren, minChildren)
				for _, g := range groups {
					next = append(next, wrapGroup(g))
				}
				i = end
				continue
			}
			next = append(next, wrapGroup(handles[i:end]))
			i = end
		}
		handles = next
	}
	return handles[0]
}

// prevGroupMembers unwraps a single internal node's direct children back
// into a slice, used only by buildLevels' trailing-remainder fixup.
func prevGroupMembers(h *nodeHandle) []*nodeHandle {
	if h.isLeaf() {
		return []*nodeHandle{h}
	}
	out := make([]*nodeHandle, h.internal.n)
	copy(out, h.internal.handles[:h.internal.n])
	return out
}

// splitEvenly divides members into groups of size in [min, max], as even
// as possible, used to re-flatten a previous-group-plus-remainder merge.
func splitEvenly(members []*nodeHandle, max, min int) [][]*nodeHandle {
	n := len(members)
	if n <= max {
		return [][]*nodeHandle{members}
	}
	groups := (n + max - 1) / max
	base := n / groups
	extra := n % groups
	var out [][]*nodeHandle
	pos := 0
	for g := 0; g < groups; g++ {
		size := base
		if g < extra {
			size++
		}
		out = append(out, members[pos:pos+size])
		pos += size
	}
	return out
}

func wrapGroup(g []*nodeHandle) *nodeHandle {
	if len(g) == 1 {
		return g[0]
	}
	ch := acquireChildren()
	for _, h := range g {
		ch.push(h, h.infoOf())
	}
	return newInternalHandle(ch)
}

// buildFromBytes constructs a balanced tree holding data in one O(n) pass.
func buildFromBytes(data []byte, cfg *Config) *nodeHandle {
	return buildLevels(buildLeaves(data, cfg))
}

// FromChunks builds a new Rope from a sequence of UTF-8 chunks in one
// bottom-up pass, rather than repeated Insert calls. The chunk boundaries
// passed in are not preserved -- the content is re-cut into leaf-sized
// pieces the same way any other construction path is. Each chunk is
// validated as UTF-8 on its own, so a multi-byte character split across
// two chunks is rejected; the returned error does not say which chunk
// failed.
func FromChunks(chunks []string, cfg *Config) (*Rope, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	total := 0
	for _, c := range chunks {
		if !utf8.ValidString(c) {
			return nil, errNonUTF8()
		}
		total += len(c)
	}
	buf := make([]byte, 0, total)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	root := buildFromBytes(buf, cfg)
	return newRope(root, cfg), nil
}

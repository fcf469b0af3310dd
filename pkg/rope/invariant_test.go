package rope

import "fmt"

// invariant_test.go's checker takes no *testing.T and returns an error
// instead, so property_test.go's randomized runs can call it after every
// single operation without threading a T through every helper.

// checkInvariants walks the whole tree and returns the first violation of
// its structural invariants it finds, or nil if none. The checks:
//  1. every leaf is at the same depth
//  2. every non-root internal node has [minChildren, maxChildren] children
//  3. every non-root, non-oversized leaf has [minBytes, maxBytes] bytes
//  4. every leaf's content is either within maxBytes or one indivisible grapheme
//  5. every TextInfo an internal node caches for a child equals that child's actual TextInfo
//  6. no internal node has exactly one child (the single-child-chain cleanup)
func checkInvariants(root *nodeHandle) error {
	if root == nil {
		return nil
	}
	depth, err := leafDepth(root, 0)
	if err != nil {
		return err
	}
	return checkSubtree(root, 0, depth, true)
}

func leafDepth(h *nodeHandle, d int) (int, error) {
	if h.isLeaf() {
		return d, nil
	}
	if h.internal.n == 0 {
		return 0, fmt.Errorf("internal node with zero children at depth %d", d)
	}
	return leafDepth(h.internal.handles[0], d+1)
}

func checkSubtree(h *nodeHandle, depth, wantLeafDepth int, isRoot bool) error {
	if h.isLeaf() {
		if depth != wantLeafDepth {
			return fmt.Errorf("leaf at depth %d, want %d (uneven tree)", depth, wantLeafDepth)
		}
		n := h.leaf.len()
		oversized := n > maxBytes
		if oversized && !isIndivisibleGrapheme(h.leaf.bytes()) {
			return fmt.Errorf("leaf exceeds maxBytes (%d) without being one indivisible grapheme", n)
		}
		if !isRoot && !oversized && n < minBytes {
			return fmt.Errorf("non-root leaf underfull: %d bytes, want >= %d", n, minBytes)
		}
		return nil
	}

	ch := h.internal
	if ch.n == 1 {
		return fmt.Errorf("internal node has exactly one child (should have been collapsed)")
	}
	if !isRoot && (ch.n < minChildren || ch.n > maxChildren) {
		return fmt.Errorf("internal node has %d children, want [%d, %d]", ch.n, minChildren, maxChildren)
	}
	var sum TextInfo
	for i := 0; i < ch.n; i++ {
		if err := checkSubtree(ch.handles[i], depth+1, wantLeafDepth, false); err != nil {
			return err
		}
		sum = sum.Add(ch.handles[i].infoOf())
		if ch.info[i] != ch.handles[i].infoOf() {
			return fmt.Errorf("cached child TextInfo out of date at index %d", i)
		}
	}
	return nil
}

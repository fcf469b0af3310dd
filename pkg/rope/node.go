package rope

import "sync/atomic"

type nodeKind int

const (
	nodeLeaf nodeKind = iota
	nodeInternal
)

// nodeHandle is an atomically reference-counted handle with a "make
// unique or clone" operation. Every edit that needs to mutate a node
// first calls makeUnique, which clones the node -- but not its children
// -- only when the refcount proves another owner exists. There is no
// epoch-based reclamation scheme here: Go's own GC already reclaims a
// node once every handle referencing it is dropped.
type nodeHandle struct {
	rc       int32 // atomic; number of live references to this node
	kind     nodeKind
	leaf     *leafText
	internal *children
}

func newLeafHandle(lt *leafText) *nodeHandle {
	h := handlePool.Get().(*nodeHandle)
	h.rc = 1
	h.kind = nodeLeaf
	h.leaf = lt
	h.internal = nil
	return h
}

func newInternalHandle(ch *children) *nodeHandle {
	h := handlePool.Get().(*nodeHandle)
	h.rc = 1
	h.kind = nodeInternal
	h.internal = ch
	h.leaf = nil
	return h
}

func (h *nodeHandle) retain() *nodeHandle {
	if h != nil {
		atomic.AddInt32(&h.rc, 1)
	}
	return h
}

// release drops one reference. It never needs to free anything explicitly:
// once the last handle is dropped, Go's garbage collector reclaims the
// node and (transitively, once their own refcounts are decremented by this
// same call) its children. release exists so makeUnique's caller can
// discard the handle it replaced and releaseNode its fields, see pool.go.
func (h *nodeHandle) release() {
	if h == nil {
		return
	}
	if atomic.AddInt32(&h.rc, -1) == 0 {
		releaseNode(h)
	}
}

func (h *nodeHandle) isShared() bool {
	return h != nil && atomic.LoadInt32(&h.rc) > 1
}

// makeUnique returns a handle this call can mutate freely: h itself if it
// is not shared, or a private clone otherwise. Cloning an internal node
// only copies its children array, retaining (not deep-copying) every
// child handle -- the copy-on-write discipline the whole tree follows.
func (h *nodeHandle) makeUnique() *nodeHandle {
	if !h.isShared() {
		return h
	}
	var clone *nodeHandle
	if h.kind == nodeLeaf {
		clone = newLeafHandle(h.leaf.clone())
	} else {
		clone = newInternalHandle(h.internal.clone())
	}
	h.release()
	return clone
}

// infoOf returns this subtree's TextInfo. For a leaf this rescans the leaf's
// (small, bounded) bytes; for an internal node this sums its children's
// precomputed TextInfo, an O(fan-out) operation. Callers that need this
// repeatedly for the same node (e.g. the Rope root) should cache it
// themselves rather than calling infoOf() in a loop.
func (h *nodeHandle) infoOf() TextInfo {
	if h.kind == nodeLeaf {
		return computeTextInfo(h.leaf.bytes())
	}
	return h.internal.totalInfo()
}

// isLeaf reports whether h is a leaf node.
func (h *nodeHandle) isLeaf() bool { return h.kind == nodeLeaf }

// leftmostLeaf and rightmostLeaf descend to the fringe leaf, used by
// append/prepend-at-depth to locate where a subtree of a known height
// should be grafted.
func (h *nodeHandle) leftmostLeaf() *nodeHandle {
	n := h
	for !n.isLeaf() {
		n = n.internal.handles[0]
	}
	return n
}

func (h *nodeHandle) rightmostLeaf() *nodeHandle {
	n := h
	for !n.isLeaf() {
		n = n.internal.handles[n.internal.n-1]
	}
	return n
}

// height returns the number of edges from h down to a leaf (0 for a leaf
// itself). All leaves of a well-formed tree are at the same depth, so this
// need only ever descend the leftmost spine.
func (h *nodeHandle) height() int {
	n := h
	height := 0
	for !n.isLeaf() {
		n = n.internal.handles[0]
		height++
	}
	return height
}

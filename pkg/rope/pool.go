package rope

import "sync"

// Node allocation is pooled per node shape: a sync.Pool each for
// leafText, children, and nodeHandle, reset on acquire and returned on
// release.
var (
	leafTextPool = sync.Pool{New: func() any { return &leafText{} }}
	childrenPool = sync.Pool{New: func() any { return &children{} }}
	handlePool   = sync.Pool{New: func() any { return &nodeHandle{} }}
)

func acquireLeafText() *leafText {
	lt := leafTextPool.Get().(*leafText)
	lt.n = 0
	lt.heap = nil
	return lt
}

func acquireChildren() *children {
	ch := childrenPool.Get().(*children)
	for i := 0; i < ch.n; i++ {
		ch.handles[i] = nil
	}
	ch.n = 0
	return ch
}

// releaseNode returns a node's fields to their pools once its refcount
// reaches zero. Any child handles an internal node held are released too,
// so the pooling is transitive down an entirely-unshared subtree.
func releaseNode(h *nodeHandle) {
	if h.kind == nodeLeaf {
		leafTextPool.Put(h.leaf)
		h.leaf = nil
	} else {
		for i := 0; i < h.internal.n; i++ {
			h.internal.handles[i].release()
		}
		childrenPool.Put(h.internal)
		h.internal = nil
	}
	handlePool.Put(h)
}
